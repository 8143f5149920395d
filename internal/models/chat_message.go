package models

// Role tags a chat message for providers that take structured message lists.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one bubble in the active chat session. Messages live only in
// memory and are never written to the store.
type ChatMessage struct {
	Text      string `json:"text"`
	IsUser    bool   `json:"isUser"`
	Timestamp int64  `json:"timestamp"`
	Role      Role   `json:"role"`
}

// ChatTurn is the wire shape of one prior turn handed to the router as
// conversation history.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn converts a session message into its history wire shape.
func (m ChatMessage) Turn() ChatTurn {
	return ChatTurn{Role: m.Role, Content: m.Text}
}
