package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PantryItem representa la cantidad acumulada de un producto en la despensa.
// Invariante central: a lo sumo un PantryItem por (OwnerID, ProductID);
// lo garantizan el constraint UNIQUE en la tabla y el motor de fusión.
// Quantity siempre > 0: una cantidad que llegaría a cero elimina la fila.
type PantryItem struct {
	ID        string
	OwnerID   string
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
