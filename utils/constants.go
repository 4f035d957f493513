package utils

import (
	"time"
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Request handling constants
const (
	// DefaultRequestTimeout bounds every handler's business flow call
	DefaultRequestTimeout = 30 * time.Second

	// ExportRequestTimeout bounds workbook exports
	ExportRequestTimeout = 60 * time.Second
)

// Request-scoped context keys
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserAgentKey contextKey = "user_agent"
	IPAddressKey contextKey = "ip_address"
	EndpointKey  contextKey = "endpoint"
	TimeoutKey   contextKey = "timeout"
)
