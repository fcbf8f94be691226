package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyUserAgent contextKey = "user_agent"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RoleAdmin       = "admin"
	RoleColaborador = "colaborador"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
	RequestParamStatus  = "status"
	RequestParamType    = "type"
	RequestParamPeriod  = "period"
	RequestParamMetric  = "metric"
	RequestParamSearch  = "search"
)

const (
	RequestParamID     = "id"
	RequestParamRoomID = "roomId"
	RequestMaxMemory   = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldID         = "id"
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	MinutesToSeconds = 60
	HoursInDay       = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
	FormImage                    = "image"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeyBookings    = "bookings"
	CacheKeyRooms       = "rooms"
	CacheKeyConsumables = "consumables"
	CacheKeyGuests      = "guests"
	CacheKeyEmployees   = "employees"
	CacheKeyCleaning    = "cleaning"
	CacheKeyDashboard   = "dashboard"
	CacheKeyUsers       = "users"
	CacheKeyRateLimit   = "rate_limit"
)

const (
	Asterix = "*"
	Empty   = ""
	System  = "system"
)
