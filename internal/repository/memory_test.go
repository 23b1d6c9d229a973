package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
)

// newTestStore создает хранилище с фиксированным источником времени.
func newTestStore(t *testing.T) (*MemoryStore, time.Time) {
	t.Helper()
	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return fixedNow }
	return store, fixedNow
}

func sampleCase() *models.EmergencyCase {
	return &models.EmergencyCase{
		Type:          "Burns",
		Description:   "Kitchen accident with hot oil",
		Location:      "Jumeirah Beach Residence, Tower 3",
		Latitude:      decimal.RequireFromString("24.4270"),
		Longitude:     decimal.RequireFromString("54.4194"),
		ReporterName:  "Khalid Al Mansouri",
		ReporterPhone: "+971-56-345-6789",
		Severity:      models.SeverityMedium,
		Status:        models.StatusPending,
	}
}

func TestCreateCase_AssignsSequentialIDs(t *testing.T) {
	// Подготовка
	store, fixedNow := newTestStore(t)
	ctx := context.Background()

	// Действие
	for i := 1; i <= 5; i++ {
		c := sampleCase()
		require.NoError(t, store.CreateCase(ctx, c))

		// Проверки: id монотонны, время создания берется из источника времени
		assert.Equal(t, i, c.ID)
		assert.Equal(t, fixedNow, c.CreatedAt)
	}
}

func TestCreateCase_StoresCopy(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	c := sampleCase()
	require.NoError(t, store.CreateCase(ctx, c))

	// Действие: мутация записи снаружи не должна затронуть хранилище
	c.Description = "mutated outside the store"

	// Проверки
	stored, err := store.GetCaseByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen accident with hot oil", stored.Description)
}

func TestGetCaseByID_RoundTrip(t *testing.T) {
	// Подготовка
	store, fixedNow := newTestStore(t)
	ctx := context.Background()
	created := sampleCase()
	require.NoError(t, store.CreateCase(ctx, created))

	// Действие
	got, err := store.GetCaseByID(ctx, created.ID)

	// Проверки: все поля переживают round-trip без потерь
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Type, got.Type)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Location, got.Location)
	assert.True(t, created.Latitude.Equal(got.Latitude))
	assert.True(t, created.Longitude.Equal(got.Longitude))
	assert.Equal(t, created.ReporterName, got.ReporterName)
	assert.Equal(t, created.ReporterPhone, got.ReporterPhone)
	assert.Equal(t, created.Severity, got.Severity)
	assert.Equal(t, created.Status, got.Status)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestGetCaseByID_NotFound(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	got, err := store.GetCaseByID(ctx, 42)

	// Проверки
	require.ErrorIs(t, err, models.ErrCaseNotFound)
	assert.Nil(t, got)
}

func TestListCases_EmptyStore(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)

	// Действие
	cases, err := store.ListCases(context.Background())

	// Проверки: пустой слайс, а не nil, чтобы JSON отдавал []
	require.NoError(t, err)
	assert.NotNil(t, cases)
	assert.Empty(t, cases)
}

func TestListCases_CreationOrder(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		c := sampleCase()
		c.Type = fmt.Sprintf("Case %d", i)
		require.NoError(t, store.CreateCase(ctx, c))
	}

	// Действие
	cases, err := store.ListCases(ctx)

	// Проверки: порядок создания (по возрастанию id)
	require.NoError(t, err)
	require.Len(t, cases, 10)
	for i, c := range cases {
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, fmt.Sprintf("Case %d", i), c.Type)
	}
}

func TestUpdateCaseStatus_Success(t *testing.T) {
	// Подготовка
	store, fixedNow := newTestStore(t)
	ctx := context.Background()
	c := sampleCase()
	require.NoError(t, store.CreateCase(ctx, c))

	// Действие
	updated, err := store.UpdateCaseStatus(ctx, c.ID, models.StatusDispatched)

	// Проверки: меняется только статус, createdAt и остальные поля нетронуты
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, updated.Status)
	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, c.Description, updated.Description)
	assert.Equal(t, fixedNow, updated.CreatedAt)

	stored, err := store.GetCaseByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, stored.Status)
	assert.Equal(t, fixedNow, stored.CreatedAt)
}

func TestUpdateCaseStatus_NotFound(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	c := sampleCase()
	require.NoError(t, store.CreateCase(ctx, c))

	// Действие
	updated, err := store.UpdateCaseStatus(ctx, 999, models.StatusResolved)

	// Проверки: ошибка и никаких изменений в коллекции
	require.ErrorIs(t, err, models.ErrCaseNotFound)
	assert.Nil(t, updated)

	cases, err := store.ListCases(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 1)
	assert.Equal(t, models.StatusPending, cases[0].Status)
}

func TestCreateCase_ConcurrentIDsUnique(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	const workers = 100

	ids := make(chan int, workers)
	var wg sync.WaitGroup

	// Действие: параллельные create не должны выдать одинаковые id
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := sampleCase()
			if err := store.CreateCase(ctx, c); err == nil {
				ids <- c.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	// Проверки
	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	cases, err := store.ListCases(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, workers)
}

func TestCaseStats(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	fixtures := []struct {
		status   models.CaseStatus
		severity models.Severity
	}{
		{models.StatusPending, models.SeverityCritical},
		{models.StatusPending, models.SeverityHigh},
		{models.StatusDispatched, models.SeverityHigh},
		{models.StatusResolved, models.SeverityLow},
	}
	for _, f := range fixtures {
		c := sampleCase()
		c.Status = f.status
		c.Severity = f.severity
		require.NoError(t, store.CreateCase(ctx, c))
	}

	// Действие
	stats, err := store.CaseStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[models.StatusPending])
	assert.Equal(t, 1, stats.ByStatus[models.StatusDispatched])
	assert.Equal(t, 1, stats.ByStatus[models.StatusResolved])
	assert.Equal(t, 2, stats.BySeverity[models.SeverityHigh])
	assert.Equal(t, 1, stats.BySeverity[models.SeverityCritical])
	assert.Equal(t, 1, stats.BySeverity[models.SeverityLow])
}

func TestCaseStats_EmptyStore(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)

	// Действие
	stats, err := store.CaseStats(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.BySeverity)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()
	user := &models.User{Username: "instructor", Password: "hash"}

	// Действие
	require.NoError(t, store.CreateUser(ctx, user))

	// Проверки
	assert.Equal(t, 1, user.ID)

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "instructor", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "instructor")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUsers_NotFound(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие / Проверки
	_, err := store.GetUserByID(ctx, 7)
	require.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = store.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestSeed_LoadsDemoCases(t *testing.T) {
	// Подготовка
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Действие
	require.NoError(t, store.Seed(ctx))

	// Проверки: пять демо-случаев в порядке создания
	cases, err := store.ListCases(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 5)

	assert.Equal(t, 1, cases[0].ID)
	assert.Equal(t, "Cardiac Arrest", cases[0].Type)
	assert.Equal(t, models.SeverityCritical, cases[0].Severity)
	assert.Equal(t, models.StatusPending, cases[0].Status)

	// Единственный демо-случай с уже назначенной бригадой
	assert.Equal(t, "Allergic Reaction", cases[3].Type)
	assert.Equal(t, models.StatusDispatched, cases[3].Status)

	stats, err := store.CaseStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 4, stats.ByStatus[models.StatusPending])
	assert.Equal(t, 1, stats.ByStatus[models.StatusDispatched])
}
