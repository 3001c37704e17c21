package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para la bitácora de auditoría.
// Colección append-only: solo Create y lectura.
type ActivityRepository interface {
	Create(entry *entity.ActivityEntry) error
	ListByCompany(companyID, activityType string, limit, offset int) ([]*entity.ActivityEntry, error)
}
