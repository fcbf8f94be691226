package user

import (
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/{id}", handler.GetUserByID)
		routerGroup.Patch("/{id}", handler.UpdateUser)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})
}

// CreateUser handles the creation of a new user.
// @Summary Create a new user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Email already registered"
// @Failure 500 {object} response.Error
// @Router /v1/users [post]
// @Security BearerAuth
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, user)
}

// GetUsers retrieves all users.
// @Summary Get all users
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role (admin, colaborador)"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	role := model.Role(r.URL.Query().Get(model.FieldRole))
	if err := validator.ValidateVar(role, "omitempty,enum"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldRole, string(role))

	users, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// GetUserByID retrieves a user by its ID.
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "user"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser updates a user by its ID.
// @Summary Update a user by ID
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "user"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	user, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// DeleteUser deletes a user by its ID.
// @Summary Delete a user by ID
// @Description Staff cannot delete their own account.
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if err := validator.ValidateID(id, "user"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete user")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
