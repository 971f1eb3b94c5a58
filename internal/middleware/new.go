package middleware

import (
	"calendarize/config"
	"calendarize/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l         log.Logger
	cors      config.CORSConfig
	rateLimit config.RateLimitConfig
}

func New(l log.Logger, cors config.CORSConfig, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		cors:      cors,
		rateLimit: rateLimit,
	}
}
