package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
	"github.com/firstaidhub/first_aid_response_system/internal/service"
)

// Проверка контракта на этапе компиляции.
var _ service.CaseRepository = (*MemoryStore)(nil)

// MemoryStore - авторитетное in-memory хранилище всех случаев и учетных
// записей на время жизни процесса. Единственный владелец коллекций и
// счетчиков id: инкремент счетчика и вставка в коллекцию выполняются под
// одним мьютексом, поэтому параллельные create не могут получить одинаковый
// id или затереть чужую запись. Наружу всегда отдаются копии записей.
type MemoryStore struct {
	mu         sync.RWMutex
	cases      map[int]models.EmergencyCase
	users      map[int]models.User
	nextCaseID int
	nextUserID int

	// Источник времени подменяется в тестах.
	now func() time.Time
}

// NewMemoryStore создает пустое хранилище. Счетчики id начинаются с 1 и
// никогда не переиспользуются.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:      make(map[int]models.EmergencyCase),
		users:      make(map[int]models.User),
		nextCaseID: 1,
		nextUserID: 1,
		now:        time.Now,
	}
}

// CreateCase присваивает случаю следующий свободный id и время создания,
// затем сохраняет копию записи.
func (s *MemoryStore) CreateCase(ctx context.Context, c *models.EmergencyCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCaseID
	s.nextCaseID++
	c.CreatedAt = s.now().UTC()

	s.cases[c.ID] = *c
	return nil
}

// GetCaseByID возвращает копию случая по id или models.ErrCaseNotFound.
func (s *MemoryStore) GetCaseByID(ctx context.Context, id int) (*models.EmergencyCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, models.ErrCaseNotFound
	}
	return &c, nil
}

// ListCases возвращает копии всех случаев в порядке возрастания id, то есть
// в порядке создания (id монотонны и не переиспользуются).
func (s *MemoryStore) ListCases(ctx context.Context) ([]*models.EmergencyCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.cases))
	for id := range s.cases {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cases := make([]*models.EmergencyCase, 0, len(ids))
	for _, id := range ids {
		c := s.cases[id]
		cases = append(cases, &c)
	}
	return cases, nil
}

// UpdateCaseStatus заменяет статус случая, не трогая остальные поля, и
// возвращает копию обновленной записи. Для неизвестного id возвращает
// models.ErrCaseNotFound, коллекция при этом не меняется.
func (s *MemoryStore) UpdateCaseStatus(ctx context.Context, id int, status models.CaseStatus) (*models.EmergencyCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, models.ErrCaseNotFound
	}

	c.Status = status
	s.cases[id] = c
	return &c, nil
}

// CaseStats возвращает агрегаты по всем случаям.
func (s *MemoryStore) CaseStats(ctx context.Context) (models.CaseStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.CaseStats{
		Total:      len(s.cases),
		ByStatus:   make(map[models.CaseStatus]int),
		BySeverity: make(map[models.Severity]int),
	}
	for _, c := range s.cases {
		stats.ByStatus[c.Status]++
		stats.BySeverity[c.Severity]++
	}
	return stats, nil
}

// CreateUser присваивает учетной записи следующий свободный id и сохраняет ее.
func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUserID
	s.nextUserID++

	s.users[u.ID] = *u
	return nil
}

// GetUserByID возвращает копию учетной записи по id или models.ErrUserNotFound.
func (s *MemoryStore) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

// GetUserByUsername возвращает копию учетной записи по имени пользователя
// или models.ErrUserNotFound.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrUserNotFound
}
