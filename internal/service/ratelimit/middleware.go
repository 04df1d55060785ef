package ratelimit

import (
	"github.com/labstack/echo/v4"

	"GoldPulse/internal/domain/repository"
	xhttp "GoldPulse/pkg/http"
)

// Middleware rejects requests from clients that exhausted their budget.
// Keys are client IPs as echo resolves them.
func Middleware(l *Limiter, metrics repository.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.Allow(c.RealIP()) {
				if metrics != nil {
					metrics.RecordRateLimited()
				}
				return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many requests, slow down"))
			}
			return next(c)
		}
	}
}
