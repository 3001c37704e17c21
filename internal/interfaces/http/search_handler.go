package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/usecase"
	"github.com/construtek/obras-api/internal/domain"
)

// SearchHandler expone la búsqueda global por nombre.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda global (proyectos, empleados, clientes, proveedores, inventario)
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  true  "Término de búsqueda (mínimo 2 caracteres)"
// @Success      200  {object}  dto.SearchResultsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Search(companyID, c.Query("q"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q debe tener al menos 2 caracteres"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
