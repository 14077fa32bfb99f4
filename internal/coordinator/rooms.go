package coordinator

import (
	"sort"
	"sync"
)

// Rooms tracks room membership: room id -> identity -> connection id.
// Rooms come into being on first join and are discarded when the last
// member leaves.
type Rooms struct {
	mu    sync.RWMutex
	rooms map[string]map[string]string
}

func NewRooms() *Rooms {
	return &Rooms{rooms: make(map[string]map[string]string)}
}

// Join adds identity to the room. Idempotent: joining the same room again
// only refreshes the connection id.
func (r *Rooms) Join(roomID, identity, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	if !ok {
		members = make(map[string]string)
		r.rooms[roomID] = members
	}
	members[identity] = connID
}

func (r *Rooms) Leave(roomID, identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	if !ok {
		return
	}
	delete(members, identity)
	if len(members) == 0 {
		delete(r.rooms, roomID)
	}
}

// LeaveAll removes the connection's identity from every room it is a member
// of and returns the affected room ids, so the caller can notify the
// remaining members.
func (r *Rooms) LeaveAll(connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected []string
	for roomID, members := range r.rooms {
		for identity, member := range members {
			if member != connID {
				continue
			}
			delete(members, identity)
			affected = append(affected, roomID)
		}
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}
	return affected
}

// Members returns the room's identities in stable (sorted) order.
func (r *Rooms) Members(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.rooms[roomID]))
	for identity := range r.rooms[roomID] {
		members = append(members, identity)
	}
	sort.Strings(members)
	return members
}

// MemberConns returns the connection ids of the room's members.
func (r *Rooms) MemberConns(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := make([]string, 0, len(r.rooms[roomID]))
	for _, connID := range r.rooms[roomID] {
		conns = append(conns, connID)
	}
	return conns
}

func (r *Rooms) Contains(roomID, identity string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[roomID]
	if !ok {
		return false
	}
	_, ok = members[identity]
	return ok
}
