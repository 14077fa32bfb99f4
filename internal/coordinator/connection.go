package coordinator

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wellmindzone/telemed/internal/domain"
)

// Connection is the process-local handle for one live transport session.
// It is owned by the Registry; every other component refers to it only by ID.
// Outbound events go through a buffered queue drained by the transport
// writer, so a slow or dead client never blocks the coordinator.
type Connection struct {
	ID string

	events chan domain.Envelope
	done   chan struct{}
	closer io.Closer
	once   sync.Once

	mu       sync.Mutex
	lastSeen time.Time
}

func newConnection(closer io.Closer, buffer int) *Connection {
	return &Connection{
		ID:       uuid.New().String(),
		events:   make(chan domain.Envelope, buffer),
		done:     make(chan struct{}),
		closer:   closer,
		lastSeen: time.Now().UTC(),
	}
}

// Events is the outbound queue. It is never closed; the writer must select
// on Done as well.
func (c *Connection) Events() <-chan domain.Envelope {
	return c.events
}

// Done is closed exactly once, when the connection is retired.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Touch records inbound traffic (messages or pongs) as proof of liveness.
func (c *Connection) Touch() {
	c.mu.Lock()
	c.lastSeen = time.Now().UTC()
	c.mu.Unlock()
}

func (c *Connection) LastSeen() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// TrySend enqueues an event without blocking. Returns false when the
// connection is already closed or its buffer is full; the event is dropped.
func (c *Connection) TrySend(evt domain.Envelope) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- evt:
		return true
	default:
		return false
	}
}

// Close retires the connection: the done channel is closed and the
// underlying transport, if any, is shut down. Safe to call more than once.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
		if c.closer != nil {
			_ = c.closer.Close()
		}
	})
}
