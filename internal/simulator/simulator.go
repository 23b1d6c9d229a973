// Package simulator генерирует поток демонстрационных экстренных случаев,
// как это делал клиентский прототип: новый случай появляется по таймеру
// с вероятностью 30% на тик. Используется только в демо-режиме.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
	"github.com/firstaidhub/first_aid_response_system/internal/service"
)

const spawnChance = 0.3

var caseTypes = []string{"Heart Attack", "Allergic Reaction", "Fall Injury", "Burn Injury"}

var severities = []models.Severity{
	models.SeverityLow,
	models.SeverityMedium,
	models.SeverityHigh,
	models.SeverityCritical,
}

var reporters = []struct {
	name  string
	phone string
}{
	{"Anonymous Caller", "+971-50-000-0001"},
	{"Mariam Said", "+971-52-110-2233"},
	{"John Carter", "+971-55-774-5566"},
	{"Layla Hassan", "+971-56-889-0012"},
}

// Simulator создает случайные случаи через CaseService, так что для них
// срабатывает обычный конвейер (статус по умолчанию, вебхуки).
type Simulator struct {
	cases    service.CaseService
	logger   *logrus.Logger
	interval time.Duration
	rng      *rand.Rand
}

// New создает симулятор. Одинаковый seed дает одинаковую последовательность
// сгенерированных случаев.
func New(cases service.CaseService, logger *logrus.Logger, interval time.Duration, seed int64) *Simulator {
	return &Simulator{
		cases:    cases,
		logger:   logger,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Start запускает горутину симуляции. Останавливается по отмене контекста.
func (s *Simulator) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting emergency case simulator...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping emergency case simulator.")
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// tick с вероятностью spawnChance регистрирует новый случайный случай.
func (s *Simulator) tick(ctx context.Context) {
	if s.rng.Float64() > spawnChance {
		return
	}

	c := s.randomCase()
	if err := s.cases.CreateCase(ctx, c); err != nil {
		s.logger.WithError(err).Error("Failed to create simulated emergency case")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"case_id":  c.ID,
		"type":     c.Type,
		"severity": c.Severity,
	}).Info("Simulated emergency case created")
}

// randomCase собирает случай из фиксированных заготовок и небольшого
// разброса координат вокруг центра города.
func (s *Simulator) randomCase() *models.EmergencyCase {
	caseType := caseTypes[s.rng.Intn(len(caseTypes))]
	reporter := reporters[s.rng.Intn(len(reporters))]

	lat := 51.5074 + (s.rng.Float64()-0.5)*0.01
	lon := -0.1278 + (s.rng.Float64()-0.5)*0.01

	return &models.EmergencyCase{
		Type:          caseType,
		Description:   fmt.Sprintf("%s reported, responder confirmation required", caseType),
		Location:      fmt.Sprintf("%d Random Street", s.rng.Intn(999)),
		Latitude:      decimal.NewFromFloat(lat).Round(6),
		Longitude:     decimal.NewFromFloat(lon).Round(6),
		ReporterName:  reporter.name,
		ReporterPhone: reporter.phone,
		Severity:      severities[s.rng.Intn(len(severities))],
	}
}
