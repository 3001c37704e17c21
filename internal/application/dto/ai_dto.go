package dto

// ComplianceRequest entrada del endpoint de sugerencias de cumplimiento:
// descripción libre de los trabajos a ejecutar.
type ComplianceRequest struct {
	Description string `json:"description" validate:"required"`
}

// ComplianceSuggestionDTO una sugerencia de cumplimiento generada por el modelo.
type ComplianceSuggestionDTO struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Severity string `json:"severity"` // low | medium | high
}

// ComplianceSuggestionsDTO respuesta completa del análisis de cumplimiento.
type ComplianceSuggestionsDTO struct {
	Suggestions []ComplianceSuggestionDTO `json:"suggestions"`
}

// ProjectRiskInputDTO snapshot del proyecto que se envía al modelo.
// Se arma en el use case; el adaptador solo lo serializa en el prompt.
type ProjectRiskInputDTO struct {
	Name            string `json:"name"`
	Status          string `json:"status"`
	Budget          string `json:"budget"`
	Spent           string `json:"spent"`
	OpenRequests    int    `json:"open_requests"`
	OverdueInvoices int    `json:"overdue_invoices"`
	Description     string `json:"description"`
}

// ProjectRiskDTO análisis de riesgo generado por el modelo.
type ProjectRiskDTO struct {
	RiskLevel string `json:"risk_level"` // low | medium | high
	Summary   string `json:"summary"`
}
