package coordinator

import (
	"io"
	"sync"
)

// Registry tracks every live connection by its server-assigned id.
type Registry struct {
	mu     sync.RWMutex
	conns  map[string]*Connection
	buffer int
}

func NewRegistry(buffer int) *Registry {
	if buffer <= 0 {
		buffer = 16
	}
	return &Registry{
		conns:  make(map[string]*Connection),
		buffer: buffer,
	}
}

// Register allocates a fresh connection handle for a transport session.
// closer may be nil for transports that are closed elsewhere.
func (r *Registry) Register(closer io.Closer) *Connection {
	conn := newConnection(closer, r.buffer)

	r.mu.Lock()
	r.conns[conn.ID] = conn
	r.mu.Unlock()

	return conn
}

func (r *Registry) Get(id string) (*Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.conns[id]
	return conn, ok
}

// Live reports whether a connection id currently maps to a registered
// connection that has not been retired.
func (r *Registry) Live(id string) bool {
	conn, ok := r.Get(id)
	if !ok {
		return false
	}
	select {
	case <-conn.Done():
		return false
	default:
		return true
	}
}

// Remove unregisters a connection and returns its handle, if it was still
// registered. The second return value makes disconnect idempotent: the
// cleanup cascade runs only for the caller that actually removed it.
func (r *Registry) Remove(id string) (*Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[id]
	if !ok {
		return nil, false
	}
	delete(r.conns, id)
	return conn, true
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
