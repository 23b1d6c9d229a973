package v1

import "time"

// CreateEmergencyCaseRequest DTO для регистрации экстренного случая
// @Description DTO для регистрации экстренного случая
type CreateEmergencyCaseRequest struct {
	Type          string `json:"type" validate:"required,min=2,max=255"`
	Description   string `json:"description" validate:"required"`
	Location      string `json:"location" validate:"required"`
	Latitude      string `json:"latitude" validate:"required,decimal_latitude"`
	Longitude     string `json:"longitude" validate:"required,decimal_longitude"`
	ReporterName  string `json:"reporterName" validate:"required"`
	ReporterPhone string `json:"reporterPhone" validate:"required"`
	Severity      string `json:"severity" validate:"required,oneof=low medium high critical"`
	Status        string `json:"status" validate:"omitempty,oneof=pending dispatched resolved"`
}

// UpdateCaseStatusRequest DTO для смены статуса случая
// @Description DTO для смены статуса случая
type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending dispatched resolved"`
}

// EmergencyCaseResponse DTO для ответа с данными случая. Координаты
// сериализуются десятичными строками, createdAt - в формате RFC3339.
// @Description DTO для ответа с данными экстренного случая
type EmergencyCaseResponse struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	ReporterName  string    `json:"reporterName"`
	ReporterPhone string    `json:"reporterPhone"`
	Severity      string    `json:"severity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CaseStatsResponse DTO для ответа с агрегатами по случаям
// @Description DTO для ответа с агрегатами по случаям
type CaseStatsResponse struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	BySeverity map[string]int `json:"bySeverity"`
}

// FieldError - ошибка валидации одного поля запроса
// @Description Ошибка валидации одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse - тело ответа при ошибке; errors заполняется только для
// ошибок валидации
// @Description Тело ответа при ошибке
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
