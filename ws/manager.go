package ws

import (
	"sync"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/presence"
)

const (
	userGroupPrefix         = "user:"
	conversationGroupPrefix = "conv:"
	topicGroupPrefix        = "topic:"
)

// ConversationSource lists the conversations a user belongs to, so the
// chat hub can auto-join their groups on connect.
type ConversationSource interface {
	ActiveConversationIDs(userID string) ([]string, error)
}

type envelope struct {
	group string
	event Event
}

// Manager runs one hub: it owns the connection and group registries
// and a buffered dispatch queue. All outbound fan-out happens on the
// Run goroutine; producers only enqueue.
type Manager struct {
	name       string
	graceDelay time.Duration

	presence      *presence.Registry
	conversations ConversationSource // nil for the notification hub

	mu      sync.RWMutex
	clients map[string]*Client
	groups  map[string]map[string]*Client

	register   chan *Client
	unregister chan *Client
	dispatch   chan envelope
}

func NewManager(name string, reg *presence.Registry, graceDelay time.Duration, queueSize int) *Manager {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Manager{
		name:       name,
		graceDelay: graceDelay,
		presence:   reg,
		clients:    make(map[string]*Client),
		groups:     make(map[string]map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		dispatch:   make(chan envelope, queueSize),
	}
}

// SetConversationSource enables auto-join of conversation groups.
func (m *Manager) SetConversationSource(src ConversationSource) {
	m.conversations = src
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.handleRegister(client)
		case client := <-m.unregister:
			m.handleUnregister(client)
		case env := <-m.dispatch:
			m.deliver(env)
		}
	}
}

func (m *Manager) handleRegister(client *Client) {
	m.mu.Lock()
	m.clients[client.ID] = client
	m.mu.Unlock()

	// Anonymous connections stay registered for the socket lifecycle
	// but take part in no groups and no presence.
	if client.UserID == "" {
		logger.HubLog(m.name, "register_anonymous", "")
		return
	}

	first := m.presence.Add(client.UserID, client.ID)
	m.joinGroup(userGroupPrefix+client.UserID, client)

	if m.conversations != nil {
		ids, err := m.conversations.ActiveConversationIDs(client.UserID)
		if err != nil {
			logger.WithError(err).Warn("conversation auto-join failed",
				"hub", m.name, "user_id", client.UserID)
		} else {
			for _, id := range ids {
				m.joinGroup(conversationGroupPrefix+id, client)
			}
		}
	}

	logger.HubLog(m.name, "register", client.UserID, "first_connection", first)
}

func (m *Manager) handleUnregister(client *Client) {
	m.mu.Lock()
	if _, ok := m.clients[client.ID]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.clients, client.ID)
	for group := range client.groups {
		m.removeFromGroup(group, client.ID)
	}
	m.mu.Unlock()
	close(client.Send)

	if client.UserID == "" {
		return
	}

	// The chat hub keeps the user "online" for a short grace window so
	// a tab refresh does not flicker their presence.
	if m.graceDelay > 0 {
		userID, connID := client.UserID, client.ID
		time.AfterFunc(m.graceDelay, func() {
			if last := m.presence.Remove(userID, connID); last {
				logger.HubLog(m.name, "offline", userID)
			}
		})
	} else if last := m.presence.Remove(client.UserID, client.ID); last {
		logger.HubLog(m.name, "offline", client.UserID)
	}

	logger.HubLog(m.name, "unregister", client.UserID)
}

func (m *Manager) joinGroup(group string, client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.groups[group]
	if !ok {
		set = make(map[string]*Client)
		m.groups[group] = set
	}
	set[client.ID] = client
	client.groups[group] = struct{}{}
}

func (m *Manager) leaveGroup(group string, client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeFromGroup(group, client.ID)
	delete(client.groups, group)
}

// caller holds m.mu
func (m *Manager) removeFromGroup(group, connID string) {
	if set, ok := m.groups[group]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(m.groups, group)
		}
	}
}

// JoinConversation subscribes a connection to a conversation's events.
func (m *Manager) JoinConversation(client *Client, conversationID string) {
	m.joinGroup(conversationGroupPrefix+conversationID, client)
}

func (m *Manager) LeaveConversation(client *Client, conversationID string) {
	m.leaveGroup(conversationGroupPrefix+conversationID, client)
}

// JoinGroup subscribes a connection to an ad-hoc named topic group.
// Topic names live in their own prefix, so clients cannot reach the
// user or conversation groups through them.
func (m *Manager) JoinGroup(client *Client, name string) {
	m.joinGroup(topicGroupPrefix+name, client)
}

func (m *Manager) LeaveGroup(client *Client, name string) {
	m.leaveGroup(topicGroupPrefix+name, client)
}

// SendToGroup enqueues an event for every connection subscribed to the
// named topic group. An empty group makes it a silent no-op.
func (m *Manager) SendToGroup(name, event string, payload any) {
	m.enqueue(envelope{
		group: topicGroupPrefix + name,
		event: Event{Event: event, Data: payload},
	})
}

// BroadcastToConversation enqueues an event for every connection in
// the conversation's group.
func (m *Manager) BroadcastToConversation(conversationID, event string, payload any) {
	m.enqueue(envelope{
		group: conversationGroupPrefix + conversationID,
		event: Event{Event: event, Data: payload},
	})
}

// PushToUser enqueues an event for all of one user's connections. An
// offline user has no group, so the push is a silent no-op.
func (m *Manager) PushToUser(userID, event string, payload any) {
	m.enqueue(envelope{
		group: userGroupPrefix + userID,
		event: Event{Event: event, Data: payload},
	})
}

func (m *Manager) enqueue(env envelope) {
	select {
	case m.dispatch <- env:
	default:
		// The queue is sized for bursts; a full queue means we shed
		// events rather than block the caller.
		logger.Warn("dispatch queue full, event dropped", "hub", m.name, "event", env.event.Event)
	}
}

func (m *Manager) deliver(env envelope) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for connID, client := range m.groups[env.group] {
		select {
		case client.Send <- env.event:
		default:
			// Slow consumer: drop the event for this connection and
			// log it. The read pump notices dead sockets on its own.
			logger.Warn("send buffer full, event dropped",
				"hub", m.name, "conn_id", connID, "event", env.event.Event)
		}
	}
}

// ClientCount reports live connections, for health endpoints.
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
