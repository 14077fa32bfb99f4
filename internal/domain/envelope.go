package domain

import "github.com/pion/webrtc/v3"

// Inbound event types.
const (
	EventRoomJoin      = "room:join"
	EventRoomCheck     = "room:check"
	EventCallOffer     = "call:offer"
	EventCallAnswer    = "call:answer"
	EventNegoOffer     = "nego:offer"
	EventNegoAnswer    = "nego:answer"
	EventStreamRequest = "stream:request"
)

// Outbound event types.
const (
	EventRoomJoinAck         = "room:join:ack"
	EventRoomJoinError       = "room:join:error"
	EventRoomStatus          = "room:status"
	EventParticipantsUpdated = "participants:updated"
	EventPeerJoined          = "peer:joined"
	EventPeerLeft            = "peer:left"
	EventIncomingCall        = "incoming:call"
	EventCallAccepted        = "call:accepted"
	EventRenegotiationNeeded = "renegotiation:needed"
	EventRenegotiationFinal  = "renegotiation:final"
)

// Envelope is the single wire frame for every signaling event, in both
// directions. Offer and Answer are opaque to the server beyond routing.
type Envelope struct {
	Type         string                     `json:"type"`
	RoomID       string                     `json:"room_id,omitempty"`
	Identity     string                     `json:"identity,omitempty"`
	To           string                     `json:"to,omitempty"`
	From         string                     `json:"from,omitempty"`
	ConnectionID string                     `json:"connection_id,omitempty"`
	Members      []string                   `json:"members,omitempty"`
	Offer        *webrtc.SessionDescription `json:"offer,omitempty"`
	Answer       *webrtc.SessionDescription `json:"answer,omitempty"`
	Message      string                     `json:"message,omitempty"`
}
