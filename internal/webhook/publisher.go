package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
)

// Виды событий, уходящих во внешние системы оповещения.
const (
	EventCaseCreated       = "case.created"
	EventCaseStatusChanged = "case.status_changed"
)

// Event - полезная нагрузка вебхука: снимок случая на момент события.
type Event struct {
	ID        uuid.UUID             `json:"id"`
	Kind      string                `json:"kind"`
	Case      *models.EmergencyCase `json:"case"`
	Timestamp time.Time             `json:"timestamp"`
}

// NewEvent создает событие с присвоенным идентификатором и временной меткой.
func NewEvent(kind string, c *models.EmergencyCase) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      kind,
		Case:      c,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации событий вебхуков.
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// ChannelPublisher - реализация Publisher на внутренней очереди
// (буферизованном канале). Публикация неблокирующая: при переполненной
// очереди событие отбрасывается с ошибкой, сам запрос из-за этого не падает.
type ChannelPublisher struct {
	queue chan Event
}

// NewChannelPublisher создает издателя с очередью заданного размера.
func NewChannelPublisher(size int) *ChannelPublisher {
	if size < 1 {
		size = 64
	}
	return &ChannelPublisher{
		queue: make(chan Event, size),
	}
}

// Publish кладет событие в очередь на доставку.
func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	select {
	case p.queue <- event:
		return nil
	default:
		return fmt.Errorf("webhook queue is full, dropping event %s", event.ID)
	}
}

// Events возвращает канал, из которого воркер забирает события.
func (p *ChannelPublisher) Events() <-chan Event {
	return p.queue
}
