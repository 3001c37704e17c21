package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	activity *ActivityUseCase
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, activity *ActivityUseCase) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, activity: activity}
}

// Create crea un proveedor activo. NIT duplicado en la empresa -> ErrDuplicate.
func (uc *SupplierUseCase) Create(companyID, userID string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndNIT(companyID, in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		NIT:           in.NIT,
		Category:      in.Category,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Rating:        in.Rating,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivitySupplierCreated, "supplier", supplier.ID,
		fmt.Sprintf("Proveedor %q creado", supplier.Name))
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor de la empresa por ID.
func (uc *SupplierUseCase) GetByID(companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.getOwned(companyID, id)
	if err != nil || supplier == nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor (parcial). NIT no se modifica.
func (uc *SupplierUseCase) Update(companyID, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.getOwned(companyID, id)
	if err != nil || supplier == nil {
		return nil, err
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Category != nil {
		supplier.Category = *in.Category
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		supplier.Rating = *in.Rating
	}
	if in.Status != nil {
		supplier.Status = *in.Status
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores por empresa con paginación.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor de la empresa por ID.
func (uc *SupplierUseCase) Delete(companyID, id string) error {
	supplier, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// getOwned carga un proveedor y verifica que pertenezca a la empresa.
func (uc *SupplierUseCase) getOwned(companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, nil
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:            s.ID,
		CompanyID:     s.CompanyID,
		Name:          s.Name,
		NIT:           s.NIT,
		Category:      s.Category,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Rating:        s.Rating,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
