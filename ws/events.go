package ws

import "encoding/json"

// Incoming actions accepted on the chat socket.
const (
	ActionJoinConversation  = "join_conversation"
	ActionLeaveConversation = "leave_conversation"
	ActionSendMessage       = "send_message"
	ActionMarkRead          = "mark_read"
	ActionToggleReaction    = "toggle_reaction"
	ActionTypingStart       = "typing_start"
	ActionTypingStop        = "typing_stop"
	ActionJoinGroup         = "join_group"
	ActionLeaveGroup        = "leave_group"
	ActionHeartbeat         = "heartbeat"
)

// EventError is the one caller-visible failure event; everything else
// fails silently.
const EventError = "error"

// IncomingMessage is the envelope every client frame uses.
type IncomingMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Event is the envelope every server frame uses.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type conversationPayload struct {
	ConversationID string `json:"conversation_id"`
}

type groupPayload struct {
	Group string `json:"group"`
}

type errorPayload struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}
