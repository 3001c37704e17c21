package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/usecase"
)

// ActivityHandler expone el registro de actividad (solo lectura).
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Listar actividad reciente de la empresa
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Filtrar por tipo de actividad"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, c.Query("type"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
