package entity

import "time"

// Supplier proveedor de materiales o servicios.
type Supplier struct {
	ID            string
	CompanyID     string
	Name          string
	NIT           string // identificación tributaria, única por empresa
	Category      string // materiales, maquinaria, transporte…
	ContactPerson string
	Email         string
	Phone         string
	Rating        int // 0..5
	Status        string // active | inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
