package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaseStatus - этап обработки экстренного случая.
// Штатный жизненный цикл: pending -> dispatched -> resolved.
type CaseStatus string

const (
	StatusPending    CaseStatus = "pending"
	StatusDispatched CaseStatus = "dispatched"
	StatusResolved   CaseStatus = "resolved"
)

// Severity - уровень тяжести случая. Фиксируется при создании и не меняется.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// EmergencyCase - экстренный случай, зарегистрированный в системе.
// Координаты хранятся как точные десятичные числа (не float64), чтобы
// значения не дрейфовали при повторной сериализации; в JSON они
// представлены десятичными строками.
type EmergencyCase struct {
	ID            int             `json:"id"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	Latitude      decimal.Decimal `json:"latitude"`
	Longitude     decimal.Decimal `json:"longitude"`
	ReporterName  string          `json:"reporterName"`
	ReporterPhone string          `json:"reporterPhone"`
	Severity      Severity        `json:"severity"`
	Status        CaseStatus      `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CaseStats - агрегаты по случаям для дашбордов ответственных.
type CaseStats struct {
	Total      int                `json:"total"`
	ByStatus   map[CaseStatus]int `json:"byStatus"`
	BySeverity map[Severity]int   `json:"bySeverity"`
}
