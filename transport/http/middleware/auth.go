package middleware

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// routePermission resolves the chi pattern of the request, e.g.
// /v1/bookings/{id}, and looks up its entry in the permission table.
func (m *authRoleImpl) routePermission(request *http.Request) (string, permissions.Permission) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || m.permission == nil {
		return request.URL.Path, permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return path, m.permission.FindPermissions(path, request.Method)
}

// Auth validates bearer access tokens and stores the staff identity in the
// request context. Public routes are marked with skip in permissions.json.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path, permission := m.routePermission(request)
		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		reject := func(message string) {
			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject("Missing authorization header")

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject("Invalid authorization header format")

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				reject("Token has expired")
			case errors.Is(err, jwt.ErrInvalidToken):
				reject("Invalid token")
			case errors.Is(err, jwt.ErrInvalidClaim):
				reject("Invalid token claims")
			default:
				reject("Token validation failed")
			}

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("user_id", claims.UserID).Msg("JWT claims are missing the staff identity")
			reject("Invalid token claims")

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the role stored by Auth against the roles allowed for the
// route. Routes without a role list are open to every authenticated user.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		_, permission := m.routePermission(request)
		if m.permission.Skip || permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers holding the configured key bypass staff auth.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), false)
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.System)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
