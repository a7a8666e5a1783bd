package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades válidas para Product.
const (
	UnitKg   = "kg"      // peso
	UnitUnit = "unidade" // conteo
)

// Product representa un producto registrado por el usuario. El stock no vive
// aquí: se maneja en PantryItem (un ítem por producto y dueño).
// MinimumStock es el umbral bajo el cual el ítem se marca con estoque baixo.
type Product struct {
	ID           string
	OwnerID      string
	Name         string
	Unit         string          // kg | unidade
	MinimumStock decimal.Decimal // >= 0; 0 desactiva la alerta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
