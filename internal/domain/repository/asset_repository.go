package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset y sus mantenimientos.
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	GetByCompanyAndCode(companyID, assetCode string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Asset, error)
	Delete(id string) error

	CreateMaintenanceLog(log *entity.MaintenanceLog) error
	ListMaintenanceLogs(assetID string) ([]*entity.MaintenanceLog, error)
}
