package predictions

import (
	"context"
	"crypto/tls"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// GetClientOptions builds Temporal client options from the environment.
// Local dev servers skip TLS and API keys; anything else is assumed to be
// Temporal Cloud and requires TEMPORAL_API_KEY.
func GetClientOptions() client.Options {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on environment variables")
	}

	address := requireEnv("TEMPORAL_HOST")
	namespace := requireEnv("TEMPORAL_NAMESPACE")

	clientOptions := client.Options{
		HostPort:  address,
		Namespace: namespace,
		Logger:    tlog.NewStructuredLogger(logger),
	}

	clientOptions.ConnectionOptions = client.ConnectionOptions{
		TLS: &tls.Config{},
		DialOptions: []grpc.DialOption{
			grpc.WithUnaryInterceptor(
				func(ctx context.Context, method string, req any, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
					return invoker(
						metadata.AppendToOutgoingContext(ctx, "temporal-namespace", namespace),
						method,
						req,
						reply,
						cc,
						opts...,
					)
				},
			),
		},
	}

	if address == "localhost:7233" || address == "host.docker.internal:7233" {
		clientOptions.ConnectionOptions.TLS = nil // local dev server, no TLS
	} else {
		clientOptions.Credentials = client.NewAPIKeyStaticCredentials(requireEnv("TEMPORAL_API_KEY"))
	}

	return clientOptions
}

func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		slog.Error(name + " environment variable is not set")
		os.Exit(1)
	}
	return value
}
