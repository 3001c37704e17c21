package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// SearchRepository búsqueda por prefijo sobre los nombres normalizados
// (minúsculas, sin tildes) de las colecciones principales. term llega ya normalizado.
type SearchRepository interface {
	SearchProjects(companyID, term string, limit int) ([]*entity.Project, error)
	SearchEmployees(companyID, term string, limit int) ([]*entity.Employee, error)
	SearchClients(companyID, term string, limit int) ([]*entity.Client, error)
	SearchSuppliers(companyID, term string, limit int) ([]*entity.Supplier, error)
	SearchInventoryItems(companyID, term string, limit int) ([]*entity.InventoryItem, error)
}
