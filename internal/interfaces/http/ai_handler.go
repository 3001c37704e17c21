package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/usecase"
	"github.com/construtek/obras-api/internal/domain"
)

// AIHandler expone los análisis generados por el modelo de lenguaje.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestCompliance godoc
// @Summary      Sugerencias de cumplimiento SG-SST para una descripción de obra
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComplianceRequest  true  "Descripción de los trabajos"
// @Success      200   {object}  dto.ComplianceSuggestionsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/compliance [post]
func (h *AIHandler) SuggestCompliance(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.ComplianceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description es requerido"})
	}
	out, err := h.uc.SuggestCompliance(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "el análisis no está disponible en este momento"})
	}
	return c.JSON(out)
}

// AnalyzeProjectRisk godoc
// @Summary      Análisis de riesgo de un proyecto
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectRiskDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/projects/{id}/risk [post]
func (h *AIHandler) AnalyzeProjectRisk(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.AnalyzeProjectRisk(c.Context(), companyID, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto no encontrado"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: "el análisis no está disponible en este momento"})
	}
	return c.JSON(out)
}
