package simulator

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
	"github.com/firstaidhub/first_aid_response_system/internal/service/mocks"
)

func newTestSimulator(t *testing.T, seed int64) (*Simulator, *mocks.MockCaseService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockCaseService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return New(serviceMock, logger, time.Second, seed), serviceMock
}

func TestRandomCase_DeterministicForSeed(t *testing.T) {
	// Подготовка: два симулятора с одинаковым seed
	first, _ := newTestSimulator(t, 42)
	second, _ := newTestSimulator(t, 42)

	// Действие / Проверки: последовательности сгенерированных случаев совпадают
	for i := 0; i < 20; i++ {
		a := first.randomCase()
		b := second.randomCase()
		assert.Equal(t, a.Type, b.Type)
		assert.Equal(t, a.Location, b.Location)
		assert.Equal(t, a.Severity, b.Severity)
		assert.Equal(t, a.ReporterName, b.ReporterName)
		assert.True(t, a.Latitude.Equal(b.Latitude))
		assert.True(t, a.Longitude.Equal(b.Longitude))
	}
}

func TestRandomCase_FieldsFilled(t *testing.T) {
	// Подготовка
	sim, _ := newTestSimulator(t, 1)

	for i := 0; i < 50; i++ {
		// Действие
		c := sim.randomCase()

		// Проверки
		assert.Contains(t, caseTypes, c.Type)
		assert.Contains(t, severities, c.Severity)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Location)
		assert.NotEmpty(t, c.ReporterName)
		assert.NotEmpty(t, c.ReporterPhone)
		// Статус не задается: его присвоит сервис при создании
		assert.Empty(t, c.Status)

		// Координаты остаются в окрестности центра города
		lat, _ := c.Latitude.Float64()
		lon, _ := c.Longitude.Float64()
		assert.InDelta(t, 51.5074, lat, 0.006)
		assert.InDelta(t, -0.1278, lon, 0.006)
	}
}

func TestTick_SpawnsWithConfiguredChance(t *testing.T) {
	// Подготовка
	sim, serviceMock := newTestSimulator(t, 7)
	ctx := context.Background()

	var created int
	serviceMock.EXPECT().
		CreateCase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.EmergencyCase) error {
			created++
			c.ID = created
			return nil
		}).AnyTimes()

	// Действие
	const ticks = 200
	for i := 0; i < ticks; i++ {
		sim.tick(ctx)
	}

	// Проверки: случаи появляются не на каждый тик, но и не никогда
	require.Greater(t, created, 0)
	require.Less(t, created, ticks)
}

func TestTick_ServiceErrorDoesNotPanic(t *testing.T) {
	// Подготовка
	sim, serviceMock := newTestSimulator(t, 1)
	ctx := context.Background()

	serviceMock.EXPECT().
		CreateCase(gomock.Any(), gomock.Any()).
		Return(assert.AnError).
		AnyTimes()

	// Действие / Проверки: ошибка сервиса только логируется
	for i := 0; i < 50; i++ {
		sim.tick(ctx)
	}
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	// Подготовка
	sim, serviceMock := newTestSimulator(t, 1)
	serviceMock.EXPECT().CreateCase(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	sim.interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())

	// Действие
	sim.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	// Проверки: после отмены контекста горутина завершает работу без паники
	time.Sleep(20 * time.Millisecond)
}
