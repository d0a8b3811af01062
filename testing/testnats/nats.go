package testnats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const image = "nats:2.10-alpine"

var (
	sharedContainer *Container
	sharedOnce      sync.Once
)

type Container struct {
	container testcontainers.Container
	URL       string
}

// Setup starts one NATS container for the whole test binary.
// Integration tests are skipped under -short since they need Docker.
//
// Usage:
//
//	func TestProducer(t *testing.T) {
//	    broker := testnats.Setup(t)
//	    defer broker.Cleanup(t)
//	    msgs := broker.Subscribe(t, "archool.events")
//	    ...
//	}
func Setup(t *testing.T) *Container {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping NATS integration test in short mode")
	}

	sharedOnce.Do(func() {
		ctx := context.Background()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        image,
				ExposedPorts: []string{"4222/tcp"},
				WaitingFor:   wait.ForListeningPort("4222/tcp"),
			},
			Started: true,
		})
		require.NoError(t, err)

		host, err := c.Host(ctx)
		require.NoError(t, err)

		port, err := c.MappedPort(ctx, "4222")
		require.NoError(t, err)

		sharedContainer = &Container{
			container: c,
			URL:       "nats://" + host + ":" + port.Port(),
		}
	})

	require.NotNil(t, sharedContainer, "NATS container failed to start")
	return sharedContainer
}

func (c *Container) Cleanup(t *testing.T) {
	t.Helper()

	if c.container != nil {
		if err := c.container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
}

// Subscribe returns a channel receiving every message published on subject.
// The subscription is flushed before returning so no message is missed.
func (c *Container) Subscribe(t *testing.T, subject string) <-chan *nats.Msg {
	t.Helper()

	conn, err := nats.Connect(c.URL)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	msgs := make(chan *nats.Msg, 16)
	_, err = conn.ChanSubscribe(subject, msgs)
	require.NoError(t, err)
	require.NoError(t, conn.FlushTimeout(5*time.Second))

	return msgs
}
