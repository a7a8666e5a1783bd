package pantry

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	pantrydomain "github.com/jhoicas/Despensa-api/internal/domain/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ShoppingListUseCase arma la lista de compras del dueño: todos los ítems por
// debajo de su mínimo, con cantidad sugerida, y la exporta como PDF.
type ShoppingListUseCase struct {
	itemRepo repository.PantryItemRepository
	userRepo repository.UserRepository
	pdfGen   ShoppingListPDFGenerator
}

// NewShoppingListUseCase construye el caso de uso.
func NewShoppingListUseCase(itemRepo repository.PantryItemRepository, userRepo repository.UserRepository, pdfGen ShoppingListPDFGenerator) *ShoppingListUseCase {
	return &ShoppingListUseCase{itemRepo: itemRepo, userRepo: userRepo, pdfGen: pdfGen}
}

// GeneratePDF genera el PDF de la lista de compras. La cantidad sugerida
// apunta a 1.5x el mínimo configurado (nunca negativa). Ordena por déficit
// descendente: el quiebre más grande primero.
func (uc *ShoppingListUseCase) GeneratePDF(ctx context.Context, ownerID string) ([]byte, error) {
	views, err := uc.itemRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	entries := make([]ShoppingListEntry, 0, len(views))
	for _, v := range views {
		if !pantrydomain.ClassifyItem(v.Quantity, v.MinimumStock) {
			continue
		}
		minimum := *v.MinimumStock // ClassifyItem garantiza no-nil aquí
		ideal := minimum.Mul(decimal.NewFromFloat(1.5))
		suggested := ideal.Sub(v.Quantity)
		if suggested.LessThanOrEqual(decimal.Zero) {
			suggested = decimal.Zero
		}
		entry := ShoppingListEntry{
			Quantity:     v.Quantity,
			MinimumStock: minimum,
			SuggestedQty: suggested,
		}
		if v.ProductName != nil {
			entry.ProductName = *v.ProductName
		}
		if v.Unit != nil {
			entry.Unit = *v.Unit
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		defA := entries[i].MinimumStock.Sub(entries[i].Quantity)
		defB := entries[j].MinimumStock.Sub(entries[j].Quantity)
		return defA.GreaterThan(defB)
	})

	ownerName := ""
	if user, err := uc.userRepo.GetByID(ownerID); err == nil && user != nil {
		ownerName = user.Name
	}
	return uc.pdfGen.GenerateShoppingListPDF(ctx, ownerName, entries)
}
