package entity

import "time"

// Roles de usuario. El rol viaja en el JWT para decisiones RBAC sin consultar la DB.
const (
	RoleAdmin       = "admin"
	RoleGerente     = "gerente"     // gerente de obra: aprueba solicitudes y órdenes
	RoleAlmacenista = "almacenista" // opera bodega: crea solicitudes, recibe órdenes
)

// User usuario de la aplicación, pertenece a una empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | gerente | almacenista
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
