package tracing

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Middleware opens one span per request, continuing any trace the caller sent, and echoes
// the trace context back in the response headers.
func Middleware(t *Tracer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			ctx, span := t.StartSpanFromHeader(req.Context(), req.Header, strings.ToUpper(req.Method)+" "+route)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))
			t.InjectHTTP(ctx, c.Response().Header())

			err := next(c)
			if err != nil {
				c.Error(err)
				span.RecordError(err)
			}

			status := c.Response().Status
			span.SetAttributes(
				attribute.String("http.method", strings.ToUpper(req.Method)),
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= 500 {
				span.SetStatus(codes.Error, "server error")
			}
			return nil
		}
	}
}
