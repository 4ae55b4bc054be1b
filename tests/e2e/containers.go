//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ------------------------------------------------------------
// Redis and RabbitMQ containers, one per calling test
// ------------------------------------------------------------

// StartRedis starts a throwaway Redis and returns its host:port.
func StartRedis(t *testing.T) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
	info := startDisposable(t, req, "6379/tcp")
	return fmt.Sprintf("%s:%s", info.Host, info.Port.Port())
}

// StartRabbitMQ starts a throwaway broker and returns its amqp URL.
func StartRabbitMQ(t *testing.T) string {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "rabbitmq:3.13-alpine",
		ExposedPorts: []string{"5672/tcp"},
		Env: map[string]string{
			"RABBITMQ_DEFAULT_USER": testUser,
			"RABBITMQ_DEFAULT_PASS": testPassword,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("Server startup complete"),
			wait.ForListeningPort("5672/tcp"),
		).WithDeadline(120 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
	info := startDisposable(t, req, "5672/tcp")
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", testUser, testPassword, info.Host, info.Port.Port())
}

func startDisposable(t *testing.T, req testcontainers.ContainerRequest, port string) ContainerInfo {
	t.Helper()

	c, err := startGenericContainer(req, 180)
	require.NoError(t, err, "failed to start %s container", req.Image)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate container", "image", req.Image, "error", err.Error())
		}
	})

	info, err := getContainerHostPort(c, port)
	require.NoError(t, err, "failed to get %s container address", req.Image)
	return info
}
