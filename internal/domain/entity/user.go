package entity

import "time"

// User representa un usuario de la despensa. Cada usuario solo ve y modifica
// sus propios productos e ítems (OwnerID en el resto de entidades).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
