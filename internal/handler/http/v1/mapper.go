package v1

import (
	"github.com/shopspring/decimal"

	"github.com/firstaidhub/first_aid_response_system/internal/models"
)

// RequestToCaseModel преобразует DTO создания в доменную модель. Координаты
// к этому моменту уже проверены валидатором.
func RequestToCaseModel(req CreateEmergencyCaseRequest) *models.EmergencyCase {
	return &models.EmergencyCase{
		Type:          req.Type,
		Description:   req.Description,
		Location:      req.Location,
		Latitude:      decimal.RequireFromString(req.Latitude),
		Longitude:     decimal.RequireFromString(req.Longitude),
		ReporterName:  req.ReporterName,
		ReporterPhone: req.ReporterPhone,
		Severity:      models.Severity(req.Severity),
		Status:        models.CaseStatus(req.Status),
	}
}

// ModelToCaseResponse преобразует доменную модель в DTO для ответа.
func ModelToCaseResponse(c *models.EmergencyCase) *EmergencyCaseResponse {
	return &EmergencyCaseResponse{
		ID:            c.ID,
		Type:          c.Type,
		Description:   c.Description,
		Location:      c.Location,
		Latitude:      c.Latitude.String(),
		Longitude:     c.Longitude.String(),
		ReporterName:  c.ReporterName,
		ReporterPhone: c.ReporterPhone,
		Severity:      string(c.Severity),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

// ModelsToCaseResponses преобразует слайс моделей в слайс DTO.
func ModelsToCaseResponses(cases []*models.EmergencyCase) []*EmergencyCaseResponse {
	responses := make([]*EmergencyCaseResponse, len(cases))
	for i, c := range cases {
		responses[i] = ModelToCaseResponse(c)
	}
	return responses
}

// StatsToResponse преобразует агрегаты в DTO для ответа.
func StatsToResponse(stats models.CaseStats) *CaseStatsResponse {
	resp := &CaseStatsResponse{
		Total:      stats.Total,
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		BySeverity: make(map[string]int, len(stats.BySeverity)),
	}
	for status, n := range stats.ByStatus {
		resp.ByStatus[string(status)] = n
	}
	for severity, n := range stats.BySeverity {
		resp.BySeverity[string(severity)] = n
	}
	return resp
}
