package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
)

// demoCases - демо-случаи для режима презентации. Статусы и id им
// присваивает само хранилище.
func demoCases() []models.EmergencyCase {
	return []models.EmergencyCase{
		{
			Type:          "Cardiac Arrest",
			Description:   "Elderly man collapsed while jogging, not responding to verbal commands",
			Location:      "Central Park, Near Fountain",
			Latitude:      decimal.RequireFromString("24.4539"),
			Longitude:     decimal.RequireFromString("54.3773"),
			ReporterName:  "Ahmed Al Rashid",
			ReporterPhone: "+971-50-123-4567",
			Severity:      models.SeverityCritical,
			Status:        models.StatusPending,
		},
		{
			Type:          "Traffic Accident",
			Description:   "Two car collision, multiple passengers injured, need immediate medical attention",
			Location:      "Sheikh Zayed Road, Exit 45",
			Latitude:      decimal.RequireFromString("24.4395"),
			Longitude:     decimal.RequireFromString("54.4068"),
			ReporterName:  "Sara Mohamed",
			ReporterPhone: "+971-52-987-6543",
			Severity:      models.SeverityHigh,
			Status:        models.StatusPending,
		},
		{
			Type:          "Severe Bleeding",
			Description:   "Construction worker with deep cut on arm from machinery accident",
			Location:      "Dubai Marina Construction Site",
			Latitude:      decimal.RequireFromString("24.4332"),
			Longitude:     decimal.RequireFromString("54.4097"),
			ReporterName:  "Omar Hassan",
			ReporterPhone: "+971-55-456-7890",
			Severity:      models.SeverityHigh,
			Status:        models.StatusPending,
		},
		{
			Type:          "Allergic Reaction",
			Description:   "Child having severe allergic reaction to food, difficulty breathing",
			Location:      "Mall of the Emirates, Food Court",
			Latitude:      decimal.RequireFromString("24.4526"),
			Longitude:     decimal.RequireFromString("54.3857"),
			ReporterName:  "Fatima Al Zahra",
			ReporterPhone: "+971-50-234-5678",
			Severity:      models.SeverityCritical,
			Status:        models.StatusDispatched,
		},
		{
			Type:          "Burns",
			Description:   "Kitchen accident with hot oil, second degree burns on hands and arms",
			Location:      "Jumeirah Beach Residence, Tower 3",
			Latitude:      decimal.RequireFromString("24.4270"),
			Longitude:     decimal.RequireFromString("54.4194"),
			ReporterName:  "Khalid Al Mansouri",
			ReporterPhone: "+971-56-345-6789",
			Severity:      models.SeverityMedium,
			Status:        models.StatusPending,
		},
	}
}

// Seed наполняет хранилище демо-случаями. Используется только в демо-режиме.
func (s *MemoryStore) Seed(ctx context.Context) error {
	for _, c := range demoCases() {
		c := c
		if err := s.CreateCase(ctx, &c); err != nil {
			return fmt.Errorf("failed to seed demo case %q: %w", c.Type, err)
		}
	}
	return nil
}
