package middleware

import (
	"content-repository/config"
	"content-repository/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
