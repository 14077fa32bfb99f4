package coordinator

import "sync"

// Presence is the bidirectional identity <-> connection-id map. At most one
// connection per identity at any time; the Coordinator resolves conflicts
// by evicting the older connection before claiming.
type Presence struct {
	mu         sync.RWMutex
	byIdentity map[string]string
	byConn     map[string]string
}

func NewPresence() *Presence {
	return &Presence{
		byIdentity: make(map[string]string),
		byConn:     make(map[string]string),
	}
}

// Claim points identity at connID. If the identity was held by a different
// connection, that mapping is dropped and the displaced connection id is
// returned so the caller can retire it.
func (p *Presence) Claim(identity, connID string) (evicted string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.byIdentity[identity]; ok && old != connID {
		evicted = old
		delete(p.byConn, old)
	}

	p.byIdentity[identity] = connID
	p.byConn[connID] = identity
	return evicted
}

// Release drops the pair by connection id and returns the identity it held.
func (p *Presence) Release(connID string) (identity string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	identity, ok = p.byConn[connID]
	if !ok {
		return "", false
	}

	delete(p.byConn, connID)
	if p.byIdentity[identity] == connID {
		delete(p.byIdentity, identity)
	}
	return identity, true
}

func (p *Presence) IdentityOf(connID string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	identity, ok := p.byConn[connID]
	return identity, ok
}

func (p *Presence) ConnectionOf(identity string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	connID, ok := p.byIdentity[identity]
	return connID, ok
}
