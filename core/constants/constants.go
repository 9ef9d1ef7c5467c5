package constants

import "time"

// Database pool settings.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // in minutes
	DatabaseSSLMode         = "disable"
)

// Timeouts.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultTimeout        = 5 * time.Second
)

// Echo context keys.
const (
	ContextTokenData    = "token_data"
	ContextCurrentEvent = "current_event"
	ContextRequestID    = "request_id"
)

// Redis keys.
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyCurrentEvent   = "events:current"
)

// CurrentEventCacheTTL bounds how stale the cached current-event lookup can
// get; settings writes invalidate it explicitly as well.
const CurrentEventCacheTTL = 30 * time.Second

// RoleEventAdmin is the token role required for the admin route group.
const RoleEventAdmin = "event_admin"
