package auth

import (
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Put("/password", handler.ChangePassword)
	})
}

// Login handles staff sign-in
// @Summary Sign in
// @Description Exchange staff credentials for an access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error "Account disabled"
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login rejected")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in: " + res.User.ID)

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken issues a new token pair
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("token refresh rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword updates the password of the signed-in user
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" || userID == constant.System {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
