package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCompanyAndDocument(companyID, documentID string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
