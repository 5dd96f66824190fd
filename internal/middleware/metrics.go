package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsInterceptor returns a Connect interceptor that records a request counter and a
// latency histogram per procedure and result code. Collectors are registered on reg.
func MetricsInterceptor(reg prometheus.Registerer) connect.UnaryInterceptorFunc {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "plot",
		Name:      "rpc_requests_total",
		Help:      "Unary RPCs handled, by procedure and result code.",
	}, []string{"procedure", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "plot",
		Name:      "rpc_duration_seconds",
		Help:      "Unary RPC latency, by procedure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})
	reg.MustRegister(requests, duration)

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			requests.WithLabelValues(procedure, code).Inc()
			duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
