// Package pantry implementa los casos de uso de la despensa: el motor de
// fusión de cantidades (incrementar-o-crear), el driver de importación por
// lotes, los descuentos y la vista de stock.
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// MergeUseCase resuelve una contribución (owner, product, delta) contra la
// despensa: si ya existe el ítem suma la cantidad, si no lo crea. Corre dentro
// de una transacción con la fila bloqueada (SELECT FOR UPDATE); junto con el
// UNIQUE (usuario_id, produto_id) de la tabla, dos contribuciones concurrentes
// al mismo par no pueden producir filas duplicadas ni perder una suma.
type MergeUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewMergeUseCase construye el motor de fusión.
func NewMergeUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *MergeUseCase {
	return &MergeUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MergeResult comunica el desenlace de una contribución. Si Created es false,
// PreviousQuantity trae la cantidad previa para mostrar "5 + 2".
type MergeResult struct {
	ItemID           string
	Created          bool
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
}

// AddQuantity aplica una contribución positiva de cantidad.
//
// Valida antes de tocar la BD: delta <= 0 retorna ErrInvalidQuantity sin
// mutación; producto inexistente retorna ErrNotFound; producto de otro dueño,
// ErrForbidden. Después ejecuta exactamente una escritura (update o insert)
// dentro de la transacción. Errores de la capa de datos suben envueltos con
// su mensaje original, sin reintentos.
func (uc *MergeUseCase) AddQuantity(ctx context.Context, ownerID, productID string, delta decimal.Decimal) (*MergeResult, error) {
	if ownerID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !delta.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	var result MergeResult

	err = uc.txRunner.Run(ctx, func(itemRepo repository.PantryItemRepository) error {
		// Búsqueda de unicidad con bloqueo de fila: cero o un resultado
		existing, err := itemRepo.GetByOwnerAndProductForUpdate(ownerID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			newQty := existing.Quantity.Add(delta)
			if err := itemRepo.UpdateQuantity(existing.ID, newQty, now); err != nil {
				return err
			}
			result = MergeResult{
				ItemID:           existing.ID,
				Created:          false,
				PreviousQuantity: existing.Quantity,
				NewQuantity:      newQty,
			}
			return nil
		}
		item := &entity.PantryItem{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			ProductID: productID,
			Quantity:  delta,
			UpdatedAt: now,
		}
		if err := itemRepo.Insert(item); err != nil {
			return err
		}
		result = MergeResult{ItemID: item.ID, Created: true, NewQuantity: delta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
