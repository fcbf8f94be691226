package consumable

import (
	"hotel/infras/otel"
	"hotel/internal/domains/consumable/model"
	"hotel/internal/domains/consumable/model/dto"
	"hotel/internal/domains/consumable/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Consumable
	otel    otel.Otel
}

func New(service service.Consumable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consumables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateConsumable)
		routerGroup.Get("/", handler.GetConsumables)
		routerGroup.Get("/low-stock", handler.GetLowStock)
		routerGroup.Get("/{id}", handler.GetConsumableByID)
		routerGroup.Patch("/{id}", handler.UpdateConsumable)
		routerGroup.Delete("/{id}", handler.DeleteConsumable)
	})
}

// CreateConsumable handles the creation of a new consumable.
// @Summary Create a new consumable
// @Tags Consumable
// @Accept json
// @Produce json
// @Param request body dto.CreateConsumableRequest true "Create Consumable Request"
// @Success 201 {object} response.Data[dto.ConsumableResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumables [post]
// @Security BearerAuth
func (handler *Handler) CreateConsumable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConsumable")
	defer scope.End()

	req := dto.CreateConsumableRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	consumable, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create consumable")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, consumable)
}

// GetConsumables retrieves all consumables.
// @Summary Get all consumables
// @Tags Consumable
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[dto.GetConsumablesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/consumables [get]
// @Security BearerAuth
func (handler *Handler) GetConsumables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsumables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldCategory, r.URL.Query().Get(model.FieldCategory))

	consumables, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consumables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, consumables)
}

// GetLowStock lists consumables whose stock reached the minimum.
// @Summary Get low-stock consumables
// @Tags Consumable
// @Produce json
// @Success 200 {object} response.Data[[]dto.ConsumableResponse]
// @Failure 500 {object} response.Error
// @Router /v1/consumables/low-stock [get]
// @Security BearerAuth
func (handler *Handler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLowStock")
	defer scope.End()

	consumables, err := handler.service.GetLowStock(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get low-stock consumables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, consumables)
}

// GetConsumableByID retrieves a consumable by its ID.
// @Summary Get a consumable by ID
// @Tags Consumable
// @Produce json
// @Param id path string true "Consumable ID"
// @Success 200 {object} response.Data[dto.ConsumableResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetConsumableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsumableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "consumable"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	consumable, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consumable by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, consumable)
}

// UpdateConsumable updates a consumable, including restocking.
// @Summary Update a consumable by ID
// @Tags Consumable
// @Accept json
// @Produce json
// @Param id path string true "Consumable ID"
// @Param request body dto.UpdateConsumableRequest true "Update Consumable Request"
// @Success 200 {object} response.Data[dto.ConsumableResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumables/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateConsumable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateConsumable")
	defer scope.End()

	req := dto.UpdateConsumableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "consumable"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	consumable, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update consumable")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, consumable)
}

// DeleteConsumable deletes a consumable by its ID.
// @Summary Delete a consumable by ID
// @Tags Consumable
// @Produce json
// @Param id path string true "Consumable ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumables/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteConsumable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConsumable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "consumable"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete consumable")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Consumable deleted successfully")
}
