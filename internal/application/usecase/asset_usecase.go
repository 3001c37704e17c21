package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// AssetUseCase casos de uso para activos fijos: CRUD, mantenimientos y asignación a obra.
type AssetUseCase struct {
	repo     repository.AssetRepository
	activity *ActivityUseCase
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, activity *ActivityUseCase) *AssetUseCase {
	return &AssetUseCase{repo: repo, activity: activity}
}

// Create crea un activo operativo. Código duplicado en la empresa -> ErrDuplicate.
func (uc *AssetUseCase) Create(companyID, userID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.AssetCode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.PurchaseValue.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		AssetCode:     in.AssetCode,
		Category:      in.Category,
		PurchaseDate:  in.PurchaseDate,
		PurchaseValue: in.PurchaseValue,
		Status:        entity.AssetStatusOperational,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityAssetCreated, "asset", asset.ID,
		fmt.Sprintf("Activo %q (%s) registrado", asset.Name, asset.AssetCode))
	return toAssetResponse(asset), nil
}

// GetByID obtiene un activo de la empresa por ID.
func (uc *AssetUseCase) GetByID(companyID, id string) (*dto.AssetResponse, error) {
	asset, err := uc.getOwned(companyID, id)
	if err != nil || asset == nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Update actualiza un activo (parcial). AssetCode no se modifica.
func (uc *AssetUseCase) Update(companyID, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := uc.getOwned(companyID, id)
	if err != nil || asset == nil {
		return nil, err
	}
	if in.Name != nil {
		asset.Name = *in.Name
	}
	if in.Category != nil {
		asset.Category = *in.Category
	}
	if in.PurchaseDate != nil {
		asset.PurchaseDate = in.PurchaseDate
	}
	if in.PurchaseValue != nil {
		if in.PurchaseValue.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		asset.PurchaseValue = *in.PurchaseValue
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.AssetStatusOperational, entity.AssetStatusInMaintenance, entity.AssetStatusRetired:
			asset.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// Assign asigna el activo a un proyecto (ProjectID vacío lo desasigna).
// Un activo retirado no se puede asignar.
func (uc *AssetUseCase) Assign(companyID, id, userID, projectID string) (*dto.AssetResponse, error) {
	asset, err := uc.getOwned(companyID, id)
	if err != nil || asset == nil {
		return nil, err
	}
	if asset.Status == entity.AssetStatusRetired {
		return nil, domain.ErrConflict
	}
	asset.AssignedProjectID = projectID
	asset.UpdatedAt = time.Now()
	if err := uc.repo.Update(asset); err != nil {
		return nil, err
	}
	uc.activity.Record(asset.CompanyID, userID, entity.ActivityAssetAssigned, "asset", asset.ID,
		fmt.Sprintf("Activo %q asignado a proyecto %s", asset.Name, projectID))
	return toAssetResponse(asset), nil
}

// List lista activos por empresa con filtro opcional por estado.
func (uc *AssetUseCase) List(companyID, status string, limit, offset int) (*dto.AssetListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssetResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAssetResponse(a))
	}
	return &dto.AssetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un activo de la empresa por ID.
func (uc *AssetUseCase) Delete(companyID, id string) error {
	asset, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// CreateMaintenanceLog registra un mantenimiento y pone el activo en In Maintenance
// si estaba operativo.
func (uc *AssetUseCase) CreateMaintenanceLog(companyID, assetID string, in dto.CreateMaintenanceLogRequest) (*dto.MaintenanceLogResponse, error) {
	asset, err := uc.getOwned(companyID, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	if in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	log := &entity.MaintenanceLog{
		ID:          uuid.New().String(),
		AssetID:     assetID,
		Date:        date,
		Description: in.Description,
		Cost:        in.Cost,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.CreateMaintenanceLog(log); err != nil {
		return nil, err
	}
	if asset.Status == entity.AssetStatusOperational {
		asset.Status = entity.AssetStatusInMaintenance
		asset.UpdatedAt = time.Now()
		if err := uc.repo.Update(asset); err != nil {
			return nil, err
		}
	}
	return toMaintenanceLogResponse(log), nil
}

// ListMaintenanceLogs lista los mantenimientos de un activo de la empresa.
func (uc *AssetUseCase) ListMaintenanceLogs(companyID, assetID string) ([]dto.MaintenanceLogResponse, error) {
	asset, err := uc.getOwned(companyID, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListMaintenanceLogs(assetID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaintenanceLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toMaintenanceLogResponse(l))
	}
	return items, nil
}

// getOwned carga un activo y verifica que pertenezca a la empresa.
func (uc *AssetUseCase) getOwned(companyID, id string) (*entity.Asset, error) {
	asset, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil || asset.CompanyID != companyID {
		return nil, nil
	}
	return asset, nil
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:                a.ID,
		CompanyID:         a.CompanyID,
		Name:              a.Name,
		AssetCode:         a.AssetCode,
		Category:          a.Category,
		PurchaseDate:      a.PurchaseDate,
		PurchaseValue:     a.PurchaseValue,
		Status:            a.Status,
		AssignedProjectID: a.AssignedProjectID,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toMaintenanceLogResponse(l *entity.MaintenanceLog) *dto.MaintenanceLogResponse {
	if l == nil {
		return nil
	}
	return &dto.MaintenanceLogResponse{
		ID:          l.ID,
		AssetID:     l.AssetID,
		Date:        l.Date,
		Description: l.Description,
		Cost:        l.Cost,
		CreatedAt:   l.CreatedAt,
	}
}
