package ports

import (
	"context"

	"github.com/construtek/obras-api/internal/application/dto"
)

// LLMService define el puerto de salida para el servicio de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta: el modelo es una caja negra
// consumida por request/response.
type LLMService interface {
	// SuggestCompliance analiza una descripción libre de trabajos de obra y
	// devuelve sugerencias de cumplimiento normativo y de seguridad.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestCompliance(ctx context.Context, description string) (*dto.ComplianceSuggestionsDTO, error)

	// AnalyzeProjectRisk recibe un snapshot del proyecto (estado, presupuesto vs
	// gasto, solicitudes abiertas, facturas vencidas) y devuelve un resumen de
	// riesgo en lenguaje natural con su nivel.
	AnalyzeProjectRisk(ctx context.Context, input dto.ProjectRiskInputDTO) (*dto.ProjectRiskDTO, error)
}
