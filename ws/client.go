package ws

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/services/dto"
	chatservice "github.com/semihsari152/CoreGameApp-sub006/internal/services/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one websocket connection. ID is the connection ID; UserID
// is empty for unauthenticated sockets, which receive nothing.
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn
	Send   chan Event

	groups map[string]struct{} // guarded by the manager's lock

	manager            *Manager
	chatService        *chatservice.ChatService
	reactionService    *chatservice.ReactionService
	readReceiptService *chatservice.ReadReceiptService
}

func (c *Client) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Debug("websocket read error", "conn_id", c.ID)
			}
			return
		}

		var msg IncomingMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		c.handleAction(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(event); err != nil {
				logger.WithError(err).Debug("websocket write error", "conn_id", c.ID)
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleAction routes one client frame. Failures are silent no-ops
// except the not-friends rejection, which the sender gets back as an
// error event.
func (c *Client) handleAction(msg IncomingMessage) {
	// Unauthenticated sockets may only heartbeat.
	if c.UserID == "" && msg.Action != ActionHeartbeat {
		return
	}

	switch msg.Action {

	case ActionJoinConversation:
		var p conversationPayload
		if json.Unmarshal(msg.Data, &p) != nil || p.ConversationID == "" {
			return
		}
		ok, err := c.chatService.Participants.IsActiveParticipant(c.UserID, p.ConversationID)
		if err != nil || !ok {
			return
		}
		c.manager.JoinConversation(c, p.ConversationID)

	case ActionLeaveConversation:
		var p conversationPayload
		if json.Unmarshal(msg.Data, &p) != nil || p.ConversationID == "" {
			return
		}
		c.manager.LeaveConversation(c, p.ConversationID)

	case ActionSendMessage:
		var input dto.SendMessageInput
		if json.Unmarshal(msg.Data, &input) != nil {
			return
		}
		if _, err := c.chatService.SendMessage(c.UserID, input); err != nil {
			if errors.Is(err, chatservice.ErrNotFriends) {
				c.sendError(msg.Action, err.Error())
			} else {
				logger.WithError(err).Debug("send_message failed", "user_id", c.UserID)
			}
		}

	case ActionMarkRead:
		var input dto.MarkReadInput
		if json.Unmarshal(msg.Data, &input) != nil {
			return
		}
		if err := c.readReceiptService.MarkAsRead(c.UserID, input.MessageID); err != nil {
			logger.WithError(err).Debug("mark_read failed", "user_id", c.UserID)
		}

	case ActionToggleReaction:
		var input dto.ToggleReactionInput
		if json.Unmarshal(msg.Data, &input) != nil {
			return
		}
		if _, err := c.reactionService.Toggle(c.UserID, input.MessageID, input.Emoji); err != nil {
			logger.WithError(err).Debug("toggle_reaction failed", "user_id", c.UserID)
		}

	case ActionJoinGroup:
		var p groupPayload
		if json.Unmarshal(msg.Data, &p) != nil || p.Group == "" {
			return
		}
		c.manager.JoinGroup(c, p.Group)

	case ActionLeaveGroup:
		var p groupPayload
		if json.Unmarshal(msg.Data, &p) != nil || p.Group == "" {
			return
		}
		c.manager.LeaveGroup(c, p.Group)

	case ActionTypingStart, ActionTypingStop:
		var p conversationPayload
		if json.Unmarshal(msg.Data, &p) != nil || p.ConversationID == "" {
			return
		}
		_ = c.chatService.SetTyping(c.UserID, p.ConversationID, msg.Action == ActionTypingStart)

	case ActionHeartbeat:
		// Read deadline already refreshed by receiving the frame.

	default:
		logger.Debug("unhandled websocket action", "action", msg.Action)
	}
}

// sendError delivers a caller-only error event, bypassing the manager
// queue since it targets exactly this connection.
func (c *Client) sendError(action, message string) {
	select {
	case c.Send <- Event{Event: EventError, Data: errorPayload{Action: action, Message: message}}:
	default:
	}
}
