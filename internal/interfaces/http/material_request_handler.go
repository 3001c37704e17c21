package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/inventory"
	"github.com/construtek/obras-api/internal/domain"
)

// MaterialRequestHandler maneja las peticiones HTTP para MaterialRequest.
// Aprobar descuenta stock en una transacción; la decisión es definitiva.
type MaterialRequestHandler struct {
	uc *inventory.MaterialRequestUseCase
}

// NewMaterialRequestHandler construye el handler.
func NewMaterialRequestHandler(uc *inventory.MaterialRequestUseCase) *MaterialRequestHandler {
	return &MaterialRequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud de material
// @Tags         material-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequestRequest  true  "project_id, item_id, quantity, reason"
// @Success      201   {object}  dto.MaterialRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/material-requests [post]
func (h *MaterialRequestHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateMaterialRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProjectID == "" || in.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project_id e item_id son requeridos"})
	}
	out, err := h.uc.Create(companyID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proyecto o ítem no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         material-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MaterialRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/material-requests/{id} [get]
func (h *MaterialRequestHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetCompanyID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de material
// @Tags         material-requests
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "Filtrar por estado"
// @Param        project_id  query  string  false  "Filtrar por proyecto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.MaterialRequestListResponse
// @Router       /api/material-requests [get]
func (h *MaterialRequestHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, c.Query("status"), c.Query("project_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar solicitud y descontar stock
// @Tags         material-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MaterialRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/material-requests/{id}/approve [post]
func (h *MaterialRequestHandler) Approve(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Approve(c.Context(), companyID, GetUserID(c), id)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		case domain.ErrAlreadyDecided:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DECIDED", Message: "la solicitud ya fue aprobada o rechazada"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para aprobar la solicitud"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar solicitud
// @Tags         material-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.DecideMaterialRequestRequest  false  "Motivo del rechazo"
// @Success      200   {object}  dto.MaterialRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/material-requests/{id}/reject [post]
func (h *MaterialRequestHandler) Reject(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.DecideMaterialRequestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Reject(c.Context(), companyID, GetUserID(c), id, in.Reason)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		case domain.ErrAlreadyDecided:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_DECIDED", Message: "la solicitud ya fue aprobada o rechazada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
