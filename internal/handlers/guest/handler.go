package guest

import (
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
	})
}

// CreateGuest handles the creation of a new guest.
// @Summary Create a new guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Create Guest Request"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	req := dto.CreateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, guest)
}

// GetGuests retrieves all guests.
// @Summary Get all guests
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param document query string false "Filter by document number"
// @Param email query string false "Filter by email"
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldDocument, query.Get(model.FieldDocument))
	filter.EqIfSet(model.TableName, model.FieldEmail, query.Get(model.FieldEmail))

	guests, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by its ID.
// @Summary Get a guest by ID
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "guest"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest updates a guest by its ID.
// @Summary Update a guest by ID
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "guest"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// DeleteGuest deletes a guest by its ID.
// @Summary Delete a guest by ID
// @Description Bookings that reference the guest are kept.
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "guest"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
