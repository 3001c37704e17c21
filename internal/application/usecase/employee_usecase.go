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

// EmployeeUseCase casos de uso de recursos humanos: CRUD y resumen de nómina.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	activity *ActivityUseCase
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, activity *ActivityUseCase) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, activity: activity}
}

// Create crea un empleado activo. Documento duplicado en la empresa -> ErrDuplicate.
func (uc *EmployeeUseCase) Create(companyID, userID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndDocument(companyID, in.DocumentID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.DailyRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              in.Name,
		DocumentID:        in.DocumentID,
		Trade:             in.Trade,
		DailyRate:         in.DailyRate,
		Phone:             in.Phone,
		Email:             in.Email,
		Status:            entity.EmployeeStatusActive,
		AssignedProjectID: in.AssignedProjectID,
		HireDate:          in.HireDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEmployeeCreated, "employee", employee.ID,
		fmt.Sprintf("Empleado %q registrado", employee.Name))
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado de la empresa por ID.
func (uc *EmployeeUseCase) GetByID(companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.getOwned(companyID, id)
	if err != nil || employee == nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado (parcial). DocumentID no se modifica.
func (uc *EmployeeUseCase) Update(companyID, id, userID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.getOwned(companyID, id)
	if err != nil || employee == nil {
		return nil, err
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Trade != nil {
		employee.Trade = *in.Trade
	}
	if in.DailyRate != nil {
		if in.DailyRate.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		employee.DailyRate = *in.DailyRate
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.EmployeeStatusActive, entity.EmployeeStatusInactive:
			employee.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.AssignedProjectID != nil {
		employee.AssignedProjectID = *in.AssignedProjectID
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	uc.activity.Record(employee.CompanyID, userID, entity.ActivityEmployeeUpdated, "employee", employee.ID,
		fmt.Sprintf("Empleado %q actualizado", employee.Name))
	return toEmployeeResponse(employee), nil
}

// List lista empleados por empresa con filtro opcional por estado.
func (uc *EmployeeUseCase) List(companyID, status string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empleado de la empresa por ID.
func (uc *EmployeeUseCase) Delete(companyID, id string) error {
	employee, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// getOwned carga un empleado y verifica que pertenezca a la empresa.
func (uc *EmployeeUseCase) getOwned(companyID, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.CompanyID != companyID {
		return nil, nil
	}
	return employee, nil
}

// PayrollSummary calcula la nómina estimada: DailyRate × days por empleado activo
// más el gran total. Toda la aritmética es decimal exacta.
func (uc *EmployeeUseCase) PayrollSummary(companyID string, days int) (*dto.PayrollSummaryDTO, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Sin paginación: la nómina cubre todos los empleados activos
	employees, err := uc.repo.ListByCompany(companyID, entity.EmployeeStatusActive, 0, 0)
	if err != nil {
		return nil, err
	}
	dayFactor := decimal.NewFromInt(int64(days))
	lines := make([]dto.PayrollLineDTO, 0, len(employees))
	total := decimal.Zero
	for _, e := range employees {
		amount := e.DailyRate.Mul(dayFactor)
		total = total.Add(amount)
		lines = append(lines, dto.PayrollLineDTO{
			EmployeeID: e.ID,
			Name:       e.Name,
			Trade:      e.Trade,
			DailyRate:  e.DailyRate,
			Days:       days,
			Amount:     amount,
		})
	}
	return &dto.PayrollSummaryDTO{Days: days, Lines: lines, Total: total}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Name:              e.Name,
		DocumentID:        e.DocumentID,
		Trade:             e.Trade,
		DailyRate:         e.DailyRate,
		Phone:             e.Phone,
		Email:             e.Email,
		Status:            e.Status,
		AssignedProjectID: e.AssignedProjectID,
		HireDate:          e.HireDate,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
