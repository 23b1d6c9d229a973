package content

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// BookingSlot - слот практического экзамена. Экзаменатор назначен только
// доступным слотам.
type BookingSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Examiner  string `json:"examiner,omitempty"`
}

// Сетка слотов: с 09:00 до 19:00 с шагом в два часа.
var slotTimes = []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"}

var examiners = []string{"Dr. Smith", "Dr. Johnson", "Dr. Williams", "Dr. Brown", "Dr. Davis"}

const dateLayout = "2006-01-02"

// SlotsForDate возвращает слоты на конкретную дату. Доступность
// разыгрывается псевдослучайно (примерно 70% слотов свободны), но источник
// случайности выводится из seed сервиса и даты, поэтому для одной и той же
// даты результат всегда одинаков.
func (s *Service) SlotsForDate(date string) ([]BookingSlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}

	rng := rand.New(rand.NewSource(s.slotSeed(date)))

	slots := make([]BookingSlot, 0, len(slotTimes))
	for i, t := range slotTimes {
		available := rng.Float64() > 0.3
		slot := BookingSlot{
			ID:        date + "-" + t,
			Date:      date,
			Time:      t,
			Available: available,
		}
		if available {
			slot.Examiner = examiners[i%len(examiners)]
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// UpcomingSlots возвращает слоты на days дней вперед, начиная с from.
func (s *Service) UpcomingSlots(from time.Time, days int) ([]BookingSlot, error) {
	if days < 1 {
		days = 1
	}

	slots := make([]BookingSlot, 0, days*len(slotTimes))
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(dateLayout)
		daySlots, err := s.SlotsForDate(date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, daySlots...)
	}
	return slots, nil
}

// slotSeed смешивает seed сервиса с датой, чтобы расписание каждой даты
// было независимым, но воспроизводимым.
func (s *Service) slotSeed(date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	return s.seed ^ int64(h.Sum64())
}
