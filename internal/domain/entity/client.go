package entity

import "time"

// Client cliente de la constructora (persona natural o jurídica).
type Client struct {
	ID            string
	CompanyID     string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interaction registro de contacto con un cliente (llamada, reunión, correo).
type Interaction struct {
	ID        string
	ClientID  string
	Date      time.Time
	Channel   string // call | meeting | email | site_visit
	Summary   string
	CreatedAt time.Time
}
