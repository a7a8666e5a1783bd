package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// PantryItemView es la fila de lectura del stock: ítem + datos del producto
// para la vista. Los campos del producto son punteros porque un ítem puede
// quedar huérfano si el producto fue eliminado.
type PantryItemView struct {
	ID           string
	ProductID    string
	Quantity     decimal.Decimal
	UpdatedAt    time.Time
	ProductName  *string
	Unit         *string
	MinimumStock *decimal.Decimal
}

// PantryItemRepository define el puerto de persistencia para PantryItem (DIP).
//
// GetByOwnerAndProductForUpdate es una búsqueda de unicidad (cero o un
// resultado, nunca un scan de lista) que bloquea la fila; las variantes
// ForUpdate solo tienen sentido dentro de una transacción. ListByOwner
// devuelve las filas por actualización descendente (más recientes primero).
type PantryItemRepository interface {
	GetByOwnerAndProductForUpdate(ownerID, productID string) (*entity.PantryItem, error)
	GetByID(ownerID, id string) (*entity.PantryItem, error)
	GetByIDForUpdate(ownerID, id string) (*entity.PantryItem, error)
	Insert(item *entity.PantryItem) error
	UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error
	DeleteByID(ownerID, id string) error
	DeleteAllByOwner(ownerID string) error
	ListByOwner(ownerID string) ([]PantryItemView, error)
}
