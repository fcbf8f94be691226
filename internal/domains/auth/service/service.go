package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const errInvalidCredentials = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.Get(ctx, userRepo.EmailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(errInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, user.ID)

	// A stale last_login must not block a valid sign-in.
	if err = s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("userId", user.ID).Msg("failed to update last login")
	}

	user.LastLogin = &now

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, shared.Actor(ctx))

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
