package room

import (
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Patch("/{id}/status", handler.UpdateRoomStatus)
		routerGroup.Put("/{id}/image", handler.UploadRoomImage)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, room)
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (available, occupied, maintenance, cleaning-in-progress)"
// @Param type query string false "Filter by type (single, double, suite, deluxe)"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	status := model.Status(query.Get(constant.RequestParamStatus))
	roomType := model.Type(query.Get(constant.RequestParamType))

	for _, value := range []validator.Enum{status, roomType} {
		if err := validator.ValidateVar(value, "omitempty,enum"); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldStatus, string(status))
	filter.EqIfSet(model.TableName, model.FieldType, string(roomType))

	rooms, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoomStatus sets the housekeeping status of a room.
// @Summary Update room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// UploadRoomImage stores a room photo in object storage.
// @Summary Upload room image
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param image formData file true "Room image (png, jpg, jpeg, webp; up to 2 MB)"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 501 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/image [put]
// @Security BearerAuth
func (handler *Handler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadImageRequest{}

	file, fileHeader, err := r.FormFile(constant.FormImage)
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate image")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room image uploaded")

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Bookings and cleaning logs that reference the room are kept.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
