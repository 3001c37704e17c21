package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/application/usecase"
	"github.com/construtek/obras-api/internal/domain"
)

// AssetHandler maneja las peticiones HTTP para Asset y su historial de mantenimiento.
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.AssetCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y asset_code son requeridos"})
	}
	out, err := h.uc.Create(companyID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un activo con ese código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetCompanyID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.AssetListResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetCompanyID(c), id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado de activo desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar activo a un proyecto
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.AssignAssetRequest  true  "project_id (vacío para liberar)"
// @Success      200   {object}  dto.AssetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/assign [post]
func (h *AssetHandler) Assign(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AssignAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Assign(GetCompanyID(c), id, GetUserID(c), in.ProjectID)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el activo no está disponible para asignación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo
// @Tags         assets
// @Security     Bearer
// @Param        id   path  string  true  "ID del activo"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetCompanyID(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMaintenanceLog godoc
// @Summary      Registrar mantenimiento del activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del activo"
// @Param        body  body  dto.CreateMaintenanceLogRequest  true  "Datos del mantenimiento"
// @Success      201   {object}  dto.MaintenanceLogResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/maintenance [post]
func (h *AssetHandler) CreateMaintenanceLog(c *fiber.Ctx) error {
	assetID := c.Params("id")
	if assetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateMaintenanceLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description es requerido"})
	}
	out, err := h.uc.CreateMaintenanceLog(GetCompanyID(c), assetID, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "costo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMaintenanceLogs godoc
// @Summary      Listar mantenimientos del activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {array}  dto.MaintenanceLogResponse
// @Router       /api/assets/{id}/maintenance [get]
func (h *AssetHandler) ListMaintenanceLogs(c *fiber.Ctx) error {
	assetID := c.Params("id")
	if assetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListMaintenanceLogs(GetCompanyID(c), assetID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "activo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
