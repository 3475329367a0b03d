package api

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/cuemby/rlvm/pkg/log"
	"github.com/cuemby/rlvm/pkg/metrics"
)

// InjectFunc derives a request context before the handler runs. Returning an
// error rejects the request with that error.
type InjectFunc func(ctx context.Context) (context.Context, error)

// InjectInterceptor creates a gRPC unary interceptor that runs inject on every
// request. This is how the orchestrators hand their authority client to
// handlers and how volumed attaches its volume group.
func InjectInterceptor(inject InjectFunc) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		ctx, err := inject(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor records the outcome and duration of every request.
// Mutating methods are logged at info level, read-only ones at debug.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	logger := log.WithComponent("grpc")

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		timer := metrics.NewTimer()
		resp, err := handler(ctx, req)

		service, method := splitMethod(info.FullMethod)
		code := status.Code(err)
		metrics.RPCRequestsTotal.WithLabelValues(service, method, code.String()).Inc()
		timer.ObserveDurationVec(metrics.RPCRequestDuration, service, method)

		event := logger.Debug()
		if !isReadOnlyMethod(method) {
			event = logger.Info()
		}
		if err != nil {
			event = logger.Warn().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("duration", timer.Duration()).
			Msg("Handled request")

		return resp, err
	}
}

// splitMethod splits "/pkg.Service/Method" into its service and method.
func splitMethod(fullMethod string) (service, method string) {
	parts := strings.Split(strings.TrimPrefix(fullMethod, "/"), "/")
	if len(parts) != 2 {
		return "unknown", fullMethod
	}
	return parts[0], parts[1]
}

// isReadOnlyMethod checks if a gRPC method only reads state
func isReadOnlyMethod(method string) bool {
	readOnlyPrefixes := []string{
		"List",
		"Get",
		"Validate",
		"Probe",
	}

	for _, prefix := range readOnlyPrefixes {
		if strings.HasPrefix(method, prefix) {
			return true
		}
	}

	// CSI capability and info queries
	readOnlyMethods := []string{
		"ControllerGetCapabilities",
		"NodeGetCapabilities",
		"NodeGetInfo",
	}

	for _, allowedMethod := range readOnlyMethods {
		if method == allowedMethod {
			return true
		}
	}

	return false
}
