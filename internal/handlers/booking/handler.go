package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.TransitionBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a confirmed booking. The total is the room nightly price times the number of nights.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve bookings ordered by check-in date, newest first.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (confirmed, checked-in, completed, cancelled, no-show)"
// @Param room_id query string false "Filter by room ID"
// @Param guest_id query string false "Filter by guest ID"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()

	if err := validator.ValidateVar(model.Status(query.Get(model.FieldStatus)), "omitempty,enum"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	for _, field := range []string{model.FieldRoomID, model.FieldGuestID} {
		if err := validator.ValidateVar(query.Get(field), "omitempty,uuid"); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldStatus, query.Get(model.FieldStatus))
	filter.EqIfSet(model.TableName, model.FieldRoomID, query.Get(model.FieldRoomID))
	filter.EqIfSet(model.TableName, model.FieldGuestID, query.Get(model.FieldGuestID))

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "booking"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates the non-status fields of a booking.
// @Summary Update a booking by ID
// @Description Edit dates, guest count, special requests or payment method. Status changes go through the status endpoint.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "booking"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, booking)
}

// TransitionBooking moves a booking through its lifecycle.
// @Summary Change booking status
// @Description Apply a lifecycle transition. Completing a booking may charge consumables, which are deducted from stock.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.TransitionRequest true "Transition Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) TransitionBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "booking"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.TransitionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Transition(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Str("status", string(req.Status)).Msg("failed to change booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking moved to " + string(booking.Status))

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking that is not completed. A checked-in booking releases its room.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "booking"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
