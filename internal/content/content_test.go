package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsForDate_Deterministic(t *testing.T) {
	// Подготовка: два сервиса с одинаковым seed
	first := NewService(42)
	second := NewService(42)

	// Действие
	slotsA, err := first.SlotsForDate("2025-07-01")
	require.NoError(t, err)
	slotsB, err := second.SlotsForDate("2025-07-01")
	require.NoError(t, err)

	// Проверки: одна дата всегда дает одно и то же расписание
	assert.Equal(t, slotsA, slotsB)
}

func TestSlotsForDate_SeedChangesSchedule(t *testing.T) {
	// Подготовка
	first := NewService(1)
	second := NewService(2)

	var differs bool
	// Одного дня может не хватить, чтобы расписания разошлись
	for _, date := range []string{"2025-07-01", "2025-07-02", "2025-07-03", "2025-07-04", "2025-07-05"} {
		slotsA, err := first.SlotsForDate(date)
		require.NoError(t, err)
		slotsB, err := second.SlotsForDate(date)
		require.NoError(t, err)
		if !assert.ObjectsAreEqual(slotsA, slotsB) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "schedules for different seeds never diverged")
}

func TestSlotsForDate_Grid(t *testing.T) {
	// Подготовка
	svc := NewService(1)

	// Действие
	slots, err := svc.SlotsForDate("2025-07-01")

	// Проверки: полная сетка из шести слотов, экзаменатор только у доступных
	require.NoError(t, err)
	require.Len(t, slots, 6)

	expectedTimes := []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"}
	for i, slot := range slots {
		assert.Equal(t, "2025-07-01", slot.Date)
		assert.Equal(t, expectedTimes[i], slot.Time)
		assert.Equal(t, "2025-07-01-"+expectedTimes[i], slot.ID)
		if slot.Available {
			assert.NotEmpty(t, slot.Examiner)
		} else {
			assert.Empty(t, slot.Examiner)
		}
	}
}

func TestSlotsForDate_InvalidDate(t *testing.T) {
	svc := NewService(1)

	for _, date := range []string{"tomorrow", "2025-13-01", "01-07-2025", ""} {
		_, err := svc.SlotsForDate(date)
		assert.Error(t, err, "date %q should be rejected", date)
	}
}

func TestUpcomingSlots(t *testing.T) {
	// Подготовка
	svc := NewService(1)
	from := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	// Действие
	slots, err := svc.UpcomingSlots(from, 3)

	// Проверки: по шесть слотов на каждый из трех дней подряд
	require.NoError(t, err)
	require.Len(t, slots, 18)
	assert.Equal(t, "2025-07-01", slots[0].Date)
	assert.Equal(t, "2025-07-02", slots[6].Date)
	assert.Equal(t, "2025-07-03", slots[12].Date)
}

func TestUpcomingSlots_MinimumOneDay(t *testing.T) {
	svc := NewService(1)

	slots, err := svc.UpcomingSlots(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 0)

	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestQuizQuestions_Fixtures(t *testing.T) {
	svc := NewService(1)

	questions := svc.QuizQuestions()
	require.NotEmpty(t, questions)

	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.NotEmpty(t, q.Options)
		assert.NotEmpty(t, q.Explanation)
		// Индекс правильного ответа указывает на существующий вариант
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestFlashcards_Fixtures(t *testing.T) {
	svc := NewService(1)

	cards := svc.Flashcards()
	require.NotEmpty(t, cards)

	for _, card := range cards {
		assert.NotEmpty(t, card.Front)
		assert.NotEmpty(t, card.Back)
	}
}

func TestVideos_Fixtures(t *testing.T) {
	svc := NewService(1)

	videos := svc.Videos()
	require.NotEmpty(t, videos)

	for _, v := range videos {
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.Duration)
	}
}

func TestGuides_Fixtures(t *testing.T) {
	svc := NewService(1)

	guides := svc.Guides()
	require.NotEmpty(t, guides)

	for _, g := range guides {
		assert.NotEmpty(t, g.Title)
		assert.NotEmpty(t, g.Sections)
	}
}
