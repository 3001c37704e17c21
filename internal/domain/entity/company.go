package entity

import "time"

// Company representa una empresa constructora (tenant). Todas las entidades
// de negocio se escopan por CompanyID.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria, única
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
