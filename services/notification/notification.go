package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service phát sự kiện thay đổi nội dung tới các client đang mở trang
type Service interface {
	SendMessage(message string) error
	Publish(event Event) error
}

// Event báo cho trang public biết cần tải lại phần nào
type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	ID      uint        `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	SentAt  time.Time   `json:"sentAt"`
}

// Event types
const (
	TypeMenuItem     = "menu_item"
	TypeCategory     = "menu_category"
	TypeMenuStatus   = "menu_status"
	TypeHours        = "restaurant_hours"
	TypeAnnouncement = "announcement"
)

// Actions
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionReordered = "reordered"
	ActionRefreshed = "refreshed"
)

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

func (s *MelodyService) Publish(event Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return s.SendMessage(string(b))
}

// Nop bỏ qua mọi sự kiện (CLI, test)
type Nop struct{}

func (Nop) SendMessage(string) error { return nil }
func (Nop) Publish(Event) error { return nil }

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(eventType, action string) *MessageBuilder {
	return &MessageBuilder{event: Event{Type: eventType, Action: action}}
}

func (b *MessageBuilder) WithID(id uint) *MessageBuilder {
	b.event.ID = id
	return b
}

func (b *MessageBuilder) WithPayload(payload interface{}) *MessageBuilder {
	b.event.Payload = payload
	return b
}

func (b *MessageBuilder) Build() Event {
	if b.event.SentAt.IsZero() {
		b.event.SentAt = time.Now().UTC()
	}
	return b.event
}
