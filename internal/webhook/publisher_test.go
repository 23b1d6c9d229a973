package webhook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
)

func TestChannelPublisher_PublishAndConsume(t *testing.T) {
	// Подготовка
	publisher := NewChannelPublisher(4)
	ctx := context.Background()
	event := NewEvent(EventCaseCreated, &models.EmergencyCase{ID: 1, Type: "Burns"})

	// Действие
	err := publisher.Publish(ctx, event)

	// Проверки
	require.NoError(t, err)

	got := <-publisher.Events()
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, EventCaseCreated, got.Kind)
	assert.Equal(t, 1, got.Case.ID)
}

func TestChannelPublisher_PreservesOrder(t *testing.T) {
	// Подготовка
	publisher := NewChannelPublisher(8)
	ctx := context.Background()

	created := NewEvent(EventCaseCreated, &models.EmergencyCase{ID: 1})
	changed := NewEvent(EventCaseStatusChanged, &models.EmergencyCase{ID: 1, Status: models.StatusDispatched})

	// Действие
	require.NoError(t, publisher.Publish(ctx, created))
	require.NoError(t, publisher.Publish(ctx, changed))

	// Проверки: события забираются в порядке публикации
	first := <-publisher.Events()
	second := <-publisher.Events()
	assert.Equal(t, EventCaseCreated, first.Kind)
	assert.Equal(t, EventCaseStatusChanged, second.Kind)
}

func TestChannelPublisher_FullQueueDropsEvent(t *testing.T) {
	// Подготовка: очередь на одно событие
	publisher := NewChannelPublisher(1)
	ctx := context.Background()

	require.NoError(t, publisher.Publish(ctx, NewEvent(EventCaseCreated, &models.EmergencyCase{ID: 1})))

	// Действие: второе событие не помещается
	err := publisher.Publish(ctx, NewEvent(EventCaseCreated, &models.EmergencyCase{ID: 2}))

	// Проверки: публикация неблокирующая, событие отброшено с ошибкой
	require.Error(t, err)
	assert.ErrorContains(t, err, "webhook queue is full")
	assert.Len(t, publisher.Events(), 1)
}

func TestChannelPublisher_DefaultQueueSize(t *testing.T) {
	publisher := NewChannelPublisher(0)

	assert.Equal(t, 64, cap(publisher.queue))
}

func TestNewEvent(t *testing.T) {
	c := &models.EmergencyCase{ID: 7, Type: "Fall Injury"}

	event := NewEvent(EventCaseStatusChanged, c)

	assert.NotZero(t, event.ID)
	assert.Equal(t, EventCaseStatusChanged, event.Kind)
	assert.Equal(t, c, event.Case)
	assert.False(t, event.Timestamp.IsZero())
}
