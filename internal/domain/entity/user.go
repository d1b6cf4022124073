package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator" // operador de bodega: ejecuta traslados
	RoleViewer   = "viewer"   // solo consulta
)

// User usuario del sistema (operadores de bodega y administradores).
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operator, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
