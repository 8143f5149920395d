package events

import (
	"time"

	"github.com/google/uuid"

	"promptdesk/internal/models"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	ChatEventPending  = "event:chat:pending"
	ChatEventResponse = "event:chat:response"
	ChatEventError    = "event:chat:error"
)

// ChatEvent is the backend event payload pushed to the chat view.
type ChatEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Provider  models.Provider `json:"provider,omitempty"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
}

func CreateChatEvent(eventType EventType, provider models.Provider, message string) ChatEvent {
	return ChatEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Provider:  provider,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewResponse creates a success ChatEvent carrying the assistant text.
func NewResponse(provider models.Provider, message string) ChatEvent {
	return CreateChatEvent(EventSuccess, provider, message)
}

// NewFailure creates an error ChatEvent.
func NewFailure(provider models.Provider, message string) ChatEvent {
	return CreateChatEvent(EventError, provider, message)
}

// NewPending creates an info ChatEvent marking a send in flight.
func NewPending(provider models.Provider) ChatEvent {
	return CreateChatEvent(EventInfo, provider, "message in flight")
}
