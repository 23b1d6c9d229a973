package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
	"github.com/firstaidhub/first_aid_response_system/internal/webhook"
)

// CaseRepository определяет контракт хранилища экстренных случаев.
//
//go:generate mockgen -source=case.go -destination=mocks/mock_case.go -package=mocks
type CaseRepository interface {
	CreateCase(ctx context.Context, c *models.EmergencyCase) error
	GetCaseByID(ctx context.Context, id int) (*models.EmergencyCase, error)
	ListCases(ctx context.Context) ([]*models.EmergencyCase, error)
	UpdateCaseStatus(ctx context.Context, id int, status models.CaseStatus) (*models.EmergencyCase, error)
	CaseStats(ctx context.Context) (models.CaseStats, error)
}

// CaseService определяет контракт бизнес-логики работы с экстренными случаями.
type CaseService interface {
	CreateCase(ctx context.Context, c *models.EmergencyCase) error
	GetCase(ctx context.Context, id int) (*models.EmergencyCase, error)
	ListCases(ctx context.Context) ([]*models.EmergencyCase, error)
	UpdateCaseStatus(ctx context.Context, id int, status models.CaseStatus) (*models.EmergencyCase, error)
	GetStats(ctx context.Context) (models.CaseStats, error)
}

type caseService struct {
	repo      CaseRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewCaseService(repo CaseRepository, logger *logrus.Logger, publisher webhook.Publisher) CaseService {
	return &caseService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateCase регистрирует новый случай. Если статус не задан, случай
// начинает жизненный цикл со статуса pending.
func (s *caseService) CreateCase(ctx context.Context, c *models.EmergencyCase) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "case",
		"method":   "CreateCase",
		"type":     c.Type,
		"severity": c.Severity,
	})
	log.Info("Attempting to create a new emergency case")

	if c.Status == "" {
		c.Status = models.StatusPending
	}

	if err := s.repo.CreateCase(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create emergency case in repository")
		return fmt.Errorf("service: could not create emergency case: %w", err)
	}

	log.WithField("case_id", c.ID).Info("Emergency case created successfully")
	s.publish(ctx, log, webhook.NewEvent(webhook.EventCaseCreated, c))
	return nil
}

// GetCase возвращает случай по его id.
func (s *caseService) GetCase(ctx context.Context, id int) (*models.EmergencyCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetCase",
		"case_id": id,
	})
	log.Debug("Fetching emergency case by ID")

	c, err := s.repo.GetCaseByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrCaseNotFound) {
			log.Warn("Emergency case not found")
		} else {
			log.WithError(err).Error("Failed to get emergency case from repository")
		}
		return nil, fmt.Errorf("service: could not get emergency case: %w", err)
	}

	return c, nil
}

// ListCases возвращает все зарегистрированные случаи в порядке создания.
func (s *caseService) ListCases(ctx context.Context) ([]*models.EmergencyCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "ListCases",
	})
	log.Debug("Listing emergency cases")

	cases, err := s.repo.ListCases(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list emergency cases from repository")
		return nil, fmt.Errorf("service: could not list emergency cases: %w", err)
	}

	log.WithField("count", len(cases)).Debug("Emergency cases listed successfully")
	return cases, nil
}

// UpdateCaseStatus переводит случай в новый статус. Остальные поля записи
// не меняются.
func (s *caseService) UpdateCaseStatus(ctx context.Context, id int, status models.CaseStatus) (*models.EmergencyCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "UpdateCaseStatus",
		"case_id": id,
		"status":  status,
	})
	log.Info("Attempting to update emergency case status")

	c, err := s.repo.UpdateCaseStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, models.ErrCaseNotFound) {
			log.Warn("Attempted to update status of a non-existent emergency case")
		} else {
			log.WithError(err).Error("Failed to update emergency case status in repository")
		}
		return nil, fmt.Errorf("service: could not update emergency case status: %w", err)
	}

	log.Info("Emergency case status updated successfully")
	s.publish(ctx, log, webhook.NewEvent(webhook.EventCaseStatusChanged, c))
	return c, nil
}

// GetStats возвращает агрегаты по случаям.
func (s *caseService) GetStats(ctx context.Context) (models.CaseStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "GetStats",
	})
	log.Debug("Fetching emergency case stats")

	stats, err := s.repo.CaseStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get emergency case stats from repository")
		return models.CaseStats{}, fmt.Errorf("service: could not get emergency case stats: %w", err)
	}

	return stats, nil
}

// publish отправляет событие в очередь вебхуков. Ошибка доставки не должна
// ломать основной запрос, поэтому она только логируется.
func (s *caseService) publish(ctx context.Context, log *logrus.Entry, event webhook.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}
