package pantry

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de ítems atado a esa tx. Garantiza que la búsqueda con bloqueo
// y la escritura del motor de fusión sean atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(itemRepo repository.PantryItemRepository) error) error
}

// ShoppingListEntry una línea de la lista de compras: producto bajo mínimo
// con la cantidad sugerida de compra.
type ShoppingListEntry struct {
	ProductName  string
	Unit         string
	Quantity     decimal.Decimal
	MinimumStock decimal.Decimal
	SuggestedQty decimal.Decimal
}

// ShoppingListPDFGenerator puerto de generación del PDF de lista de compras.
type ShoppingListPDFGenerator interface {
	GenerateShoppingListPDF(ctx context.Context, ownerName string, entries []ShoppingListEntry) ([]byte, error)
}
