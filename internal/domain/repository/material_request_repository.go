package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// MaterialRequestRepository define el puerto de persistencia para MaterialRequest.
type MaterialRequestRepository interface {
	Create(request *entity.MaterialRequest) error
	GetByID(id string) (*entity.MaterialRequest, error)
	Update(request *entity.MaterialRequest) error
	ListByCompany(companyID, status, projectID string, limit, offset int) ([]*entity.MaterialRequest, error)
	CountPendingByItem(itemID string) (int, error)
}
