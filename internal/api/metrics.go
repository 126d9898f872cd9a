package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ocrflow/pkg/metrics"
)

// metricsMiddleware records per-route request counts and latencies through
// the OpenTelemetry metric API. Attributes follow the HTTP semantic
// conventions so dashboards can group by route, method and status.
func metricsMiddleware(mp metric.MeterProvider) (gin.HandlerFunc, error) {
	meter := mp.Meter("ocrflow/api")

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DurationBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	bodySize, err := meter.Int64Histogram("http.server.request.body.size",
		metric.WithDescription("HTTP request body size"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(metrics.PayloadBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create body size histogram: %w", err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := metric.WithAttributes(
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.request.method", c.Request.Method),
			attribute.Int("http.response.status_code", c.Writer.Status()))
		ctx := c.Request.Context()
		requests.Add(ctx, 1, attrs)
		duration.Record(ctx, time.Since(start).Seconds(), attrs)

		if size := c.Request.ContentLength; size >= 0 {
			bodySize.Record(ctx, size, attrs)
		}
	}, nil
}
