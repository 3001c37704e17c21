package repository

import "github.com/construtek/obras-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client y sus interacciones.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error

	CreateInteraction(interaction *entity.Interaction) error
	ListInteractions(clientID string, limit, offset int) ([]*entity.Interaction, error)
}
