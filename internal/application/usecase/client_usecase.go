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

// ClientUseCase casos de uso CRUD para clientes y sus interacciones.
type ClientUseCase struct {
	repo     repository.ClientRepository
	activity *ActivityUseCase
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, activity *ActivityUseCase) *ClientUseCase {
	return &ClientUseCase{repo: repo, activity: activity}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(companyID, userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	client := &entity.Client{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityClientCreated, "client", client.ID,
		fmt.Sprintf("Cliente %q creado", client.Name))
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente de la empresa por ID.
func (uc *ClientUseCase) GetByID(companyID, id string) (*dto.ClientResponse, error) {
	client, err := uc.getOwned(companyID, id)
	if err != nil || client == nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente (parcial).
func (uc *ClientUseCase) Update(companyID, id, userID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.getOwned(companyID, id)
	if err != nil || client == nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.ContactPerson != nil {
		client.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	uc.activity.Record(client.CompanyID, userID, entity.ActivityClientUpdated, "client", client.ID,
		fmt.Sprintf("Cliente %q actualizado", client.Name))
	return toClientResponse(client), nil
}

// List lista clientes por empresa con paginación.
func (uc *ClientUseCase) List(companyID string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente de la empresa por ID.
func (uc *ClientUseCase) Delete(companyID, id string) error {
	client, err := uc.getOwned(companyID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// CreateInteraction registra una interacción con el cliente. La fecha por defecto es hoy.
func (uc *ClientUseCase) CreateInteraction(companyID, clientID string, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	client, err := uc.getOwned(companyID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	interaction := &entity.Interaction{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Date:      date,
		Channel:   in.Channel,
		Summary:   in.Summary,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateInteraction(interaction); err != nil {
		return nil, err
	}
	return toInteractionResponse(interaction), nil
}

// ListInteractions lista las interacciones de un cliente, más recientes primero.
func (uc *ClientUseCase) ListInteractions(companyID, clientID string, limit, offset int) ([]dto.InteractionResponse, error) {
	client, err := uc.getOwned(companyID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListInteractions(clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InteractionResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInteractionResponse(i))
	}
	return items, nil
}

// getOwned carga un cliente y verifica que pertenezca a la empresa.
func (uc *ClientUseCase) getOwned(companyID, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, nil
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toInteractionResponse(i *entity.Interaction) *dto.InteractionResponse {
	if i == nil {
		return nil
	}
	return &dto.InteractionResponse{
		ID:        i.ID,
		ClientID:  i.ClientID,
		Date:      i.Date,
		Channel:   i.Channel,
		Summary:   i.Summary,
		CreatedAt: i.CreatedAt,
	}
}
