package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userMocks "hotel/internal/domains/user/mocks"
	userModel "hotel/internal/domains/user/model"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
)

func staffUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("password")
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-id-123",
		Email:    "recepcao@hotel.com",
		Password: hashed,
		Name:     "Recepção",
		Role:     userModel.RoleColaborador,
		Active:   true,
	}
}

func TestAuthService_Login(t *testing.T) {
	validUser := staffUser(t)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "Recepcao@Hotel.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "recepcao@hotel.com", args[userModel.FieldEmail])

						return validUser, nil
					})
				jwtService.EXPECT().GenerateTokenPair(validUser.ID, validUser.Email, string(userModel.RoleColaborador)).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, values map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, values, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "last login failure does not block sign-in",
			req:  dto.LoginRequest{Email: "recepcao@hotel.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("read only"))
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@hotel.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "recepcao@hotel.com", Password: "wrongpassword"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "recepcao@hotel.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := validUser
				inactive.Active = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "database failure",
			req:  dto.LoginRequest{Email: "recepcao@hotel.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

			tt.setupMock(mockUserRepo, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, validUser.ID, res.User.ID)
			assert.Equal(t, userModel.RoleColaborador, res.User.Role)
			assert.NotNil(t, res.User.LastLogin)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		pair     *jwt.TokenPair
		err      error
		wantCode int
	}{
		{name: "valid refresh token", token: "refresh", pair: &jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}},
		{name: "invalid refresh token", token: "bogus", err: jwt.ErrInvalidToken, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockJWT := jwtMocks.NewMockJWT(ctrl)

			svc := service.New(userMocks.NewMockUser(ctrl), &config.Config{}, mocks.NewOtel(), mockJWT)

			mockJWT.EXPECT().RefreshTokens(tt.token).Return(tt.pair, tt.err)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: tt.token})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-access", res.AccessToken)
			assert.Equal(t, "new-refresh", res.RefreshToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	validUser := staffUser(t)

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "changes password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, values map[string]any, _ gDto.FilterGroup) error {
						hashed, _ := values[userModel.FieldPassword].(string)
						assert.NoError(t, password.Verify("new-password", hashed))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserRepo := userMocks.NewMockUser(ctrl)

			svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

			tt.setupMock(mockUserRepo)

			err := svc.ChangePassword(context.Background(), tt.req, validUser.ID)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
