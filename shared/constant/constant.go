package constant

import (
	"time"
)

type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
)

// Path and form parameters of the draft and upload routes.
const (
	RequestParamStep  = "step"
	RequestParamIndex = "index"
	RequestMaxMemory  = 10 << 20 // 10 MB
	FormFile          = "file"
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat     = time.RFC3339
	DayFormat      = "2006-01-02"
	ClockFormat    = "15:04"
	DayClockFormat = "2006-01-02 15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderWebhookSecret      = "X-Webhook-Secret"
	RequestHeaderUploadSecret       = "X-Upload-Secret"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderPragma             = "Pragma"
	RequestHeaderExpires            = "Expires"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "Interner Serverfehler"
)

const (
	ServerEnvDevelopment = "development"
)

// Values written to bookings.source and the created_by/modified_by columns.
const (
	SourceWebsite   = "website"
	ActorAutomation = "automation"
	ActorSystem     = "system"
)

const (
	Asterix = "*"
	Empty   = ""
)
