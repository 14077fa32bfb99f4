package coordinator

import (
	"log/slog"

	"github.com/wellmindzone/telemed/internal/domain"
	"github.com/wellmindzone/telemed/lib/logger/sl"
)

// RelayResult is the outcome of one relay attempt. Nothing is surfaced to
// the sender either way; results exist for logging and tests.
type RelayResult int

const (
	RelayDelivered RelayResult = iota
	RelayDropped
	RelayTargetNotFound
	RelaySelfTarget
	RelayRateLimited
	RelayUnknownType
)

// Router relays addressed signaling events between two connections.
// Delivery is attempted once; a dead target or a full buffer means the
// event is gone and the peers renegotiate at the application layer.
type Router struct {
	registry *Registry
	limiter  *StreamLimiter
	log      *slog.Logger
}

func NewRouter(registry *Registry, limiter *StreamLimiter, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{registry: registry, limiter: limiter, log: log}
}

// Relay routes an inbound signaling event from the sender connection to the
// connection addressed in evt.To. The from field of the delivered event is
// always the sender's id, never client-supplied.
func (r *Router) Relay(from string, evt domain.Envelope) RelayResult {
	forward, ok := translate(from, evt)
	if !ok {
		r.log.Warn("unsupported signal type", slog.String("type", evt.Type), slog.String("from", from))
		return RelayUnknownType
	}

	if evt.Type == domain.EventStreamRequest {
		if evt.To == from {
			// can only arise from a client bug; must never loop
			return RelaySelfTarget
		}
		if r.limiter != nil && !r.limiter.Allow(from) {
			r.log.Debug("stream request rate limited", slog.String("from", from))
			return RelayRateLimited
		}
	}

	target, ok := r.registry.Get(evt.To)
	if !ok || !r.registry.Live(evt.To) {
		r.log.Debug("relay target not live",
			slog.String("type", evt.Type),
			slog.String("from", from),
			slog.String("to", evt.To),
		)
		return RelayTargetNotFound
	}

	if !target.TrySend(forward) {
		r.log.Debug("relay dropped", sl.Err(errSendQueueFull),
			slog.String("type", evt.Type),
			slog.String("to", evt.To),
		)
		return RelayDropped
	}

	return RelayDelivered
}

func translate(from string, evt domain.Envelope) (domain.Envelope, bool) {
	switch evt.Type {
	case domain.EventCallOffer:
		return domain.Envelope{Type: domain.EventIncomingCall, From: from, Offer: evt.Offer}, true
	case domain.EventCallAnswer:
		return domain.Envelope{Type: domain.EventCallAccepted, From: from, Answer: evt.Answer}, true
	case domain.EventNegoOffer:
		return domain.Envelope{Type: domain.EventRenegotiationNeeded, From: from, Offer: evt.Offer}, true
	case domain.EventNegoAnswer:
		return domain.Envelope{Type: domain.EventRenegotiationFinal, From: from, Answer: evt.Answer}, true
	case domain.EventStreamRequest:
		return domain.Envelope{Type: domain.EventStreamRequest, From: from}, true
	default:
		return domain.Envelope{}, false
	}
}
