package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construtek/obras-api/internal/domain"
	"github.com/construtek/obras-api/internal/domain/entity"
	"github.com/construtek/obras-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, company_id, name, contact_person, email, phone, address, notes, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `, name_normalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.CompanyID, client.Name, client.ContactPerson, client.Email,
		client.Phone, client.Address, client.Notes, client.CreatedAt, client.UpdatedAt,
		normalizeForSearch(client.Name),
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.ContactPerson, &c.Email,
		&c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6,
		    notes = $7, name_normalized = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.ContactPerson, client.Email, client.Phone,
		client.Address, client.Notes, normalizeForSearch(client.Name), client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista clientes de una empresa. limit <= 0 significa sin límite.
func (r *ClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_id = $1 ORDER BY name`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.ContactPerson, &c.Email,
			&c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateInteraction registra un contacto con el cliente (append-only).
func (r *ClientRepo) CreateInteraction(interaction *entity.Interaction) error {
	query := `
		INSERT INTO client_interactions (id, client_id, date, channel, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		interaction.ID, interaction.ClientID, interaction.Date,
		interaction.Channel, interaction.Summary, interaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// ListInteractions lista las interacciones de un cliente, más reciente primero.
func (r *ClientRepo) ListInteractions(clientID string, limit, offset int) ([]*entity.Interaction, error) {
	query := `SELECT id, client_id, date, channel, summary, created_at FROM client_interactions WHERE client_id = $1 ORDER BY date DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Interaction
	for rows.Next() {
		var i entity.Interaction
		if err := rows.Scan(&i.ID, &i.ClientID, &i.Date, &i.Channel, &i.Summary, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}
