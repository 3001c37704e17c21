package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/construtek/obras-api/internal/application/dto"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

// ActivityUseCase bitácora de auditoría: registra una entrada por mutación
// significativa y lista las más recientes. La colección es append-only.
type ActivityUseCase struct {
	repo     repository.ActivityRepository
	userRepo repository.UserRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository, userRepo repository.UserRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, userRepo: userRepo}
}

// Record registra una entrada en la bitácora. Es best-effort: un fallo aquí no
// debe deshacer la mutación principal, por eso solo se loguea el error.
func (uc *ActivityUseCase) Record(companyID, userID, activityType, entityKind, entityID, summary string) {
	userName := ""
	if userID != "" {
		if user, err := uc.userRepo.GetByID(userID); err == nil && user != nil {
			userName = user.Name
		}
	}
	entry := &entity.ActivityEntry{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Type:       activityType,
		EntityKind: entityKind,
		EntityID:   entityID,
		Summary:    summary,
		UserID:     userID,
		UserName:   userName,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		log.Error().Err(err).Str("type", activityType).Msg("registrar actividad")
	}
}

// List lista la bitácora de la empresa, más recientes primero, con filtro opcional por tipo.
func (uc *ActivityUseCase) List(companyID, activityType string, limit, offset int) (*dto.ActivityListResponse, error) {
	entries, err := uc.repo.ListByCompany(companyID, activityType, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ActivityEntryResponse{
			ID:         e.ID,
			CompanyID:  e.CompanyID,
			Type:       e.Type,
			EntityKind: e.EntityKind,
			EntityID:   e.EntityID,
			Summary:    e.Summary,
			UserID:     e.UserID,
			UserName:   e.UserName,
			CreatedAt:  e.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
