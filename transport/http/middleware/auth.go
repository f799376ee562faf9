package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"hostly/config"
	"hostly/infras/jwt"
	"hostly/infras/otel"
	"hostly/permissions"
	"hostly/shared/constant"
	"hostly/shared/failure"
	"hostly/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type internalCallerKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole guards host endpoints. Chain it as APIKey, Auth, RBAC.
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

var tokenErrorMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
	{jwt.ErrInvalidToken, "Invalid token"},
}

func isInternalCaller(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallerKey{}).(bool)

	return internal
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

// APIKey marks requests carrying the internal API key so Auth and RBAC let them through.
// Requests without the header continue as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.APIKey")
		defer scope.End()

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, internalCallerKey{}, true)))
	})
}

// Auth validates the host bearer token and stores its identity in the request context.
// Routes marked skip in permissions.json stay public.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.Auth")
		defer scope.End()

		pattern := routePattern(request)

		if isInternalCaller(ctx) || (m.permission != nil && m.permission.FindPermissions(pattern, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"http.route":  pattern,
			"http.method": request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			deny(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			deny(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			message := "Token validation failed"

			for _, known := range tokenErrorMessages {
				if errors.Is(err, known.err) {
					message = known.message

					break
				}
			}

			deny(writer, scope, failure.Unauthorized(message))

			return
		}

		role := claims.Role
		if role == constant.Empty {
			role = constant.RoleHost
		}

		if claims.Email == "" {
			log.Warn().Str("hostID", claims.HostID).Msg("access token without email claim")
		}

		ctx = context.WithValue(ctx, constant.ContextKeyHostID, claims.HostID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		scope.SetAttribute("host.id", claims.HostID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the role set by Auth against the roles listed for the route.
// A missing permission table denies everything.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "middleware.RBAC")
		defer scope.End()

		if isInternalCaller(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)

		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// routePattern resolves the chi pattern a request will be served by, such as /v1/bookings/{id}.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
