package adapter

import "context"

// EventKind tags what the transport delivered in one inbound message.
type EventKind string

const (
	EventText    EventKind = "text"
	EventCommand EventKind = "command"
	EventContact EventKind = "contact"
	EventPhoto   EventKind = "photo"
	EventGeo     EventKind = "geo"
)

// InboundEvent is the transport-agnostic shape of one user message. Exactly
// the fields matching Kind are populated.
type InboundEvent struct {
	Kind   EventKind
	UserID int64
	ChatID int64

	Text      string // EventText
	Command   string // EventCommand, without the leading slash
	Phone     string // EventContact
	Photo     string // EventPhoto, opaque attachment reference
	Latitude  float64
	Longitude float64 // EventGeo
}

// Prompt is one outbound message: a text body plus an optional choice set the
// transport renders as buttons. The engine never formats transport markup.
type Prompt struct {
	Text    string
	Choices []string
	// RequestContact / RequestLocation ask the transport to render the
	// special share buttons instead of plain choices.
	RequestContact  bool
	RequestLocation bool
	RemoveKeyboard  bool
}

// TelegramBotAdapter is what outbound-only collaborators (ops tooling,
// broadcast jobs) see of the transport.
type TelegramBotAdapter interface {
	SendPrompt(ctx context.Context, chatID int64, p Prompt) error
}
