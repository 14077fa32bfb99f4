package coordinator

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/wellmindzone/telemed/internal/domain"
)

var errSendQueueFull = errors.New("send queue full")

// Options tunes the coordinator; zero values fall back to defaults.
type Options struct {
	SendBuffer          int
	StreamRequestLimit  int
	StreamRequestWindow time.Duration
}

// Coordinator is the session lifecycle controller. It owns the registry,
// the presence map and the room directory, and serializes every join,
// eviction and disconnect behind one mutex so that two racing joins for the
// same identity cannot both believe they won.
type Coordinator struct {
	log      *slog.Logger
	registry *Registry
	presence *Presence
	rooms    *Rooms
	limiter  *StreamLimiter
	router   *Router

	// mu serializes joins, evictions and disconnects end to end.
	mu sync.Mutex
}

func New(log *slog.Logger, opts Options) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = 16
	}
	if opts.StreamRequestLimit <= 0 {
		opts.StreamRequestLimit = 5
	}
	if opts.StreamRequestWindow <= 0 {
		opts.StreamRequestWindow = 10 * time.Second
	}

	registry := NewRegistry(opts.SendBuffer)
	limiter := NewStreamLimiter(opts.StreamRequestLimit, opts.StreamRequestWindow)

	c := &Coordinator{
		log:      log,
		registry: registry,
		presence: NewPresence(),
		rooms:    NewRooms(),
		limiter:  limiter,
		router:   NewRouter(registry, limiter, log),
	}
	return c
}

// Connect allocates a connection handle for a freshly accepted transport.
func (c *Coordinator) Connect(closer io.Closer) *Connection {
	conn := c.registry.Register(closer)
	c.log.Info("connection registered", slog.String("connection_id", conn.ID))
	return conn
}

// Registry exposes liveness lookups to the transport layer.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// HandleEvent dispatches one inbound event from the connection's read loop.
// A failure handling one connection's event never propagates to others.
func (c *Coordinator) HandleEvent(conn *Connection, evt domain.Envelope) {
	conn.Touch()

	switch evt.Type {
	case domain.EventRoomJoin:
		c.Join(conn, evt.Identity, evt.RoomID)
	case domain.EventRoomCheck:
		c.RoomStatus(conn, evt.RoomID)
	case domain.EventCallOffer, domain.EventCallAnswer,
		domain.EventNegoOffer, domain.EventNegoAnswer,
		domain.EventStreamRequest:
		c.router.Relay(conn.ID, evt)
	default:
		c.log.Warn("unknown event type",
			slog.String("type", evt.Type),
			slog.String("connection_id", conn.ID),
		)
	}
}

// Join moves the connection into roomID under the given identity.
//
// The whole sequence runs as one critical section: evict any older
// connection holding the identity, claim the identity, leave any previous
// room, join the new one, then broadcast before acking so no member list
// ever omits the joiner.
func (c *Coordinator) Join(conn *Connection, identity, roomID string) {
	const op = "coordinator.join"
	log := c.log.With(
		slog.String("op", op),
		slog.String("connection_id", conn.ID),
		slog.String("room_id", roomID),
	)

	if roomID == "" || identity == "" {
		conn.TrySend(domain.Envelope{
			Type:    domain.EventRoomJoinError,
			Message: "identity and room_id are required",
		})
		log.Info("join rejected, missing fields")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The read loop may deliver a join frame that was already on the wire
	// when this connection lost an eviction race. A retired connection must
	// not claim the identity back, evict the live winner or rejoin the room.
	if !c.registry.Live(conn.ID) {
		log.Info("join ignored, connection already retired")
		return
	}

	// Re-join of the same room by the same connection is an idempotent
	// re-ack; no duplicate broadcast.
	if cur, ok := c.presence.ConnectionOf(identity); ok && cur == conn.ID && c.rooms.Contains(roomID, identity) {
		conn.TrySend(domain.Envelope{
			Type:         domain.EventRoomJoinAck,
			RoomID:       roomID,
			Members:      c.rooms.Members(roomID),
			ConnectionID: conn.ID,
		})
		return
	}

	// (a) the identity may still be held by a stale connection; retire it
	// completely before announcing the new one.
	if old, ok := c.presence.ConnectionOf(identity); ok && old != conn.ID {
		log.Info("evicting stale connection", slog.String("evicted", old))
		c.retireLocked(old, "identity reclaimed")
	}

	// (b) claim the identity for this connection.
	c.presence.Claim(identity, conn.ID)

	// (c) one room per connection: leave whatever it was in before.
	for _, left := range c.rooms.LeaveAll(conn.ID) {
		c.notifyDepartureLocked(left, identity)
	}

	// (d) record membership.
	c.rooms.Join(roomID, identity, conn.ID)

	// (e) broadcast the new member list, and the joiner to everyone else.
	members := c.rooms.Members(roomID)
	c.broadcastLocked(roomID, domain.Envelope{
		Type:    domain.EventParticipantsUpdated,
		RoomID:  roomID,
		Members: members,
	}, "")
	c.broadcastLocked(roomID, domain.Envelope{
		Type:         domain.EventPeerJoined,
		Identity:     identity,
		ConnectionID: conn.ID,
	}, conn.ID)

	// (f) ack with the assigned connection id and the full member list.
	conn.TrySend(domain.Envelope{
		Type:         domain.EventRoomJoinAck,
		RoomID:       roomID,
		Members:      members,
		ConnectionID: conn.ID,
	})

	log.Info("joined room",
		slog.String("identity", identity),
		slog.Int("members", len(members)),
	)
}

// Disconnect runs the cleanup cascade for a connection whose transport went
// away. Idempotent: a connection that was already evicted is a no-op.
func (c *Coordinator) Disconnect(connID, reason string) {
	const op = "coordinator.disconnect"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.registry.Get(connID); !ok {
		return
	}

	c.log.Info("connection disconnected",
		slog.String("op", op),
		slog.String("connection_id", connID),
		slog.String("reason", reason),
	)
	c.retireLocked(connID, reason)
}

// RoomStatus answers a room:check with the room's current member list. Read
// only, addressed to the asking connection. An empty or unknown room id is
// not an error; it simply has no members.
func (c *Coordinator) RoomStatus(conn *Connection, roomID string) {
	conn.TrySend(domain.Envelope{
		Type:    domain.EventRoomStatus,
		RoomID:  roomID,
		Members: c.rooms.Members(roomID),
	})
}

// retireLocked is the single cleanup path shared by disconnects and forced
// evictions. Caller holds the coordinator lock.
func (c *Coordinator) retireLocked(connID, reason string) {
	conn, registered := c.registry.Remove(connID)
	identity, _ := c.presence.Release(connID)
	affected := c.rooms.LeaveAll(connID)
	c.limiter.Forget(connID)

	if registered {
		conn.Close()
	}

	for _, roomID := range affected {
		c.notifyDepartureLocked(roomID, identity)
	}

	c.log.Info("connection retired",
		slog.String("connection_id", connID),
		slog.String("identity", identity),
		slog.String("reason", reason),
	)
}

func (c *Coordinator) notifyDepartureLocked(roomID, identity string) {
	c.broadcastLocked(roomID, domain.Envelope{
		Type:     domain.EventPeerLeft,
		Identity: identity,
	}, "")
	c.broadcastLocked(roomID, domain.Envelope{
		Type:    domain.EventParticipantsUpdated,
		RoomID:  roomID,
		Members: c.rooms.Members(roomID),
	}, "")
}

// broadcastLocked fans an event out to every live member of the room except
// the excluded connection. Fire and forget per member.
func (c *Coordinator) broadcastLocked(roomID string, evt domain.Envelope, exclude string) {
	for _, connID := range c.rooms.MemberConns(roomID) {
		if connID == exclude {
			continue
		}
		member, ok := c.registry.Get(connID)
		if !ok {
			continue
		}
		if !member.TrySend(evt) {
			c.log.Debug("dropping broadcast event",
				slog.String("connection_id", connID),
				slog.String("type", evt.Type),
			)
		}
	}
}
