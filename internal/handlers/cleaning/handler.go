package cleaning

import (
	"hotel/infras/otel"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cleaning
	otel    otel.Otel
}

func New(service service.Cleaning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cleaning-logs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartCleaning)
		routerGroup.Get("/{id}", handler.GetCleaningLog)
		routerGroup.Put("/{id}/complete", handler.CompleteCleaning)
		routerGroup.Get("/room/{roomId}", handler.GetRoomCleaningLogs)
		routerGroup.Get("/room/{roomId}/active", handler.GetActiveCleaning)
	})
}

// StartCleaning opens a cleaning log and marks the room as being cleaned.
// @Summary Start cleaning a room
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param request body dto.StartCleaningRequest true "Start Cleaning Request"
// @Success 201 {object} response.Data[dto.CleaningLogResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Room already has a cleaning in progress"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-logs [post]
// @Security BearerAuth
func (handler *Handler) StartCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartCleaning")
	defer scope.End()

	req := dto.StartCleaningRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cleaningLog, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to start cleaning")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning started for room " + req.RoomID)

	response.WithJSON(w, http.StatusCreated, cleaningLog)
}

// CompleteCleaning closes a cleaning log and makes the room available.
// @Summary Complete a cleaning
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param id path string true "Cleaning log ID"
// @Param request body dto.CompleteCleaningRequest false "Complete Cleaning Request"
// @Success 200 {object} response.Data[dto.CleaningLogResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Cleaning already completed"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-logs/{id}/complete [put]
// @Security BearerAuth
func (handler *Handler) CompleteCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteCleaning")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "cleaning log"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.CompleteCleaningRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	cleaningLog, err := handler.service.Complete(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("cleaning_id", id).Msg("failed to complete cleaning")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cleaningLog)
}

// GetCleaningLog retrieves a cleaning log by its ID.
// @Summary Get a cleaning log by ID
// @Tags Cleaning
// @Produce json
// @Param id path string true "Cleaning log ID"
// @Success 200 {object} response.Data[dto.CleaningLogResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-logs/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCleaningLog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningLog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "cleaning log"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	cleaningLog, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning log")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cleaningLog)
}

// GetRoomCleaningLogs lists the cleaning history of a room, newest first.
// @Summary Get cleaning logs of a room
// @Tags Cleaning
// @Produce json
// @Param roomId path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCleaningLogsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-logs/room/{roomId} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomCleaningLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomCleaningLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	roomID := chi.URLParam(r, constant.RequestParamRoomID)
	if err := validator.ValidateID(roomID, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	logs, err := handler.service.GetByRoom(ctx, roomID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room cleaning logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// GetActiveCleaning returns the open cleaning of a room.
// @Summary Get the cleaning in progress for a room
// @Tags Cleaning
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[dto.CleaningLogResponse]
// @Failure 404 {object} response.Error "No cleaning in progress"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-logs/room/{roomId}/active [get]
// @Security BearerAuth
func (handler *Handler) GetActiveCleaning(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveCleaning")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)
	if err := validator.ValidateID(roomID, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	cleaningLog, err := handler.service.GetActive(ctx, roomID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cleaningLog)
}
