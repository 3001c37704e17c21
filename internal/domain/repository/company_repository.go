package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Por convención los Get devuelven (nil, nil) cuando no existe el recurso.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
