package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"promptdesk/internal/events"
	"promptdesk/internal/llm"
	"promptdesk/internal/llm/prompt"
	"promptdesk/internal/models"
)

// fallbackReply is the bubble shown whenever a send fails, so the view never
// sits in a loading state.
const fallbackReply = "Sorry, there was an error processing your message. Please try again."

// ErrSendInFlight rejects a send while a previous one is still pending. The
// chat session allows a single outbound request at a time.
var ErrSendInFlight = errors.New("a message is already in flight")

// ChatService owns the active chat session: the in-memory message list, the
// pending-send flag, and the compose-route-respond pipeline. Session messages
// are never persisted.
type ChatService interface {
	Startup(ctx context.Context)
	SendChatMessage(text string) (*models.ChatMessage, error)
	Messages() []models.ChatMessage
	ClearSession()
	Pending() bool
}

type chatService struct {
	settings SettingsService
	training TrainingService
	router   *llm.Router
	ctx      context.Context

	mu       sync.Mutex
	messages []models.ChatMessage
	pending  bool
}

func NewChatService(settings SettingsService, training TrainingService, router *llm.Router) ChatService {
	return &chatService{settings: settings, training: training, router: router}
}

func (s *chatService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *chatService) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

// SendChatMessage appends the user's message to the session, composes the
// outbound prompt from settings and training entries, routes it to the
// selected provider, and appends the assistant's reply. Any failure along the
// way becomes the fixed fallback bubble; the caller always gets a message
// back.
func (s *chatService) SendChatMessage(text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("message text is required")
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return nil, ErrSendInFlight
	}
	s.pending = true

	history := make([]models.ChatTurn, 0, len(s.messages))
	for _, m := range s.messages {
		history = append(history, m.Turn())
	}
	s.messages = append(s.messages, models.ChatMessage{
		Text:      text,
		IsUser:    true,
		Timestamp: time.Now().UnixMilli(),
		Role:      models.RoleUser,
	})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	ctx := s.context()
	provider := s.settings.SelectedProvider()
	instructions := prompt.ComposeInstructions(text, s.settings.ChatSettings(), s.training.List())

	events.Emit(ctx, events.ChatEventPending, events.NewPending(provider))

	replyText, err := s.router.SendMessage(ctx, llm.SendInput{
		Provider:     provider,
		Instructions: instructions,
		History:      history,
	})
	if err != nil {
		log.Printf("chat: send via %s failed: %v", provider, err)
		events.Emit(ctx, events.ChatEventError, events.NewFailure(provider, err.Error()))
		replyText = fallbackReply
	} else {
		events.Emit(ctx, events.ChatEventResponse, events.NewResponse(provider, replyText))
	}

	reply := models.ChatMessage{
		Text:      replyText,
		IsUser:    false,
		Timestamp: time.Now().UnixMilli(),
		Role:      models.RoleAssistant,
	}

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.mu.Unlock()

	return &reply, nil
}

func (s *chatService) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *chatService) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *chatService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
