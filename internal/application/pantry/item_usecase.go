package pantry

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	pantrydomain "github.com/jhoicas/Despensa-api/internal/domain/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ItemUseCase operaciones de lectura y descuento sobre los ítems del dueño.
type ItemUseCase struct {
	itemRepo repository.PantryItemRepository
	txRunner TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.PantryItemRepository, txRunner TxRunner) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, txRunner: txRunner}
}

// List devuelve los ítems del dueño ordenados por actualización descendente,
// con los datos del producto y el indicador de estoque baixo calculado fila a
// fila en el momento de la lectura.
func (uc *ItemUseCase) List(ctx context.Context, ownerID string) (*dto.PantryListResponse, error) {
	views, err := uc.itemRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PantryItemResponse, 0, len(views))
	for _, v := range views {
		items = append(items, toPantryItemResponse(v))
	}
	return &dto.PantryListResponse{Items: items, Total: len(items)}, nil
}

// Decrease descuenta cantidad de un ítem; sin cantidad explícita descuenta 1.
// Si la cantidad resultante queda en cero o menos, la fila se elimina: nunca
// se persiste un ítem con cantidad cero o negativa. Corre dentro de una
// transacción con la fila bloqueada: dos descuentos concurrentes sobre el
// mismo ítem se serializan y ninguno pisa al otro.
func (uc *ItemUseCase) Decrease(ctx context.Context, ownerID, itemID string, qty *decimal.Decimal) (*dto.DecreaseItemResponse, error) {
	delta := decimal.NewFromInt(1)
	if qty != nil {
		delta = *qty
	}
	if !delta.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	var out dto.DecreaseItemResponse
	err := uc.txRunner.Run(ctx, func(itemRepo repository.PantryItemRepository) error {
		item, err := itemRepo.GetByIDForUpdate(ownerID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.Quantity.Sub(delta)
		if !newQty.GreaterThan(decimal.Zero) {
			if err := itemRepo.DeleteByID(ownerID, itemID); err != nil {
				return err
			}
			out = dto.DecreaseItemResponse{ItemID: itemID, Deleted: true, Quantity: decimal.Zero}
			return nil
		}
		if err := itemRepo.UpdateQuantity(itemID, newQty, time.Now()); err != nil {
			return err
		}
		out = dto.DecreaseItemResponse{ItemID: itemID, Quantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove elimina un ítem explícitamente.
func (uc *ItemUseCase) Remove(ctx context.Context, ownerID, itemID string) error {
	item, err := uc.itemRepo.GetByID(ownerID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.DeleteByID(ownerID, itemID)
}

// toPantryItemResponse proyecta la fila de lectura al DTO aplicando la regla
// de estoque baixo del dominio (huérfano sin producto clasifica como no bajo).
func toPantryItemResponse(v repository.PantryItemView) dto.PantryItemResponse {
	out := dto.PantryItemResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		Quantity:  v.Quantity,
		UpdatedAt: v.UpdatedAt,
		LowStock:  pantrydomain.ClassifyItem(v.Quantity, v.MinimumStock),
	}
	if v.ProductName != nil {
		out.ProductName = *v.ProductName
	}
	if v.Unit != nil {
		out.Unit = *v.Unit
	}
	if v.MinimumStock != nil {
		out.MinimumStock = *v.MinimumStock
	}
	return out
}
