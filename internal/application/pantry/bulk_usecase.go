package pantry

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	pantrydomain "github.com/jhoicas/Despensa-api/internal/domain/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// BulkUseCase aplica un lote ordenado de líneas (producto, cantidad en texto)
// a la despensa del dueño en una sola operación de usuario.
//
// Modo acumular: cada línea válida pasa por el motor de fusión, en orden y en
// serie, de modo que líneas repetidas del mismo producto dentro del lote se
// suman correctamente. Modo reemplazar: borra todo el stock previo del dueño
// y reinserta las líneas agregadas por producto, en una transacción.
type BulkUseCase struct {
	merge    *MergeUseCase
	txRunner TxRunner
	itemRepo repository.PantryItemRepository
}

// NewBulkUseCase construye el driver de importación.
func NewBulkUseCase(merge *MergeUseCase, txRunner TxRunner, itemRepo repository.PantryItemRepository) *BulkUseCase {
	return &BulkUseCase{merge: merge, txRunner: txRunner, itemRepo: itemRepo}
}

// parseLines filtra el lote: una línea es válida si trae producto y su
// cantidad parsea a un número > 0. Las inválidas se descartan en silencio.
func parseLines(lines []dto.ImportLineRequest) []pantrydomain.Line {
	valid := make([]pantrydomain.Line, 0, len(lines))
	for _, l := range lines {
		productID := strings.TrimSpace(l.ProductID)
		if productID == "" {
			continue
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(l.Quantity))
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			continue
		}
		valid = append(valid, pantrydomain.Line{ProductID: productID, Quantity: qty})
	}
	return valid
}

// Import procesa el lote. Si tras el filtrado no queda ninguna línea válida,
// falla rápido con ErrNoValidLines y no muta nada. Un error de la capa de
// datos en una línea no aborta las siguientes: queda registrado en el
// resultado por línea y el caller decide la política de fallo parcial.
func (uc *BulkUseCase) Import(ctx context.Context, ownerID string, in dto.ImportRequest) (*dto.ImportResponse, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	valid := parseLines(in.Lines)
	if len(valid) == 0 {
		return nil, domain.ErrNoValidLines
	}

	if in.ReplacePrevious {
		return uc.replaceAll(ctx, ownerID, valid)
	}
	return uc.accumulate(ctx, ownerID, valid)
}

// accumulate aplica el motor de fusión línea por línea, estrictamente en el
// orden de entrada: cada fusión observa el efecto de las anteriores.
func (uc *BulkUseCase) accumulate(ctx context.Context, ownerID string, lines []pantrydomain.Line) (*dto.ImportResponse, error) {
	out := &dto.ImportResponse{Results: make([]dto.ImportLineResult, 0, len(lines))}
	for _, line := range lines {
		res, err := uc.merge.AddQuantity(ctx, ownerID, line.ProductID, line.Quantity)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, dto.ImportLineResult{
				ProductID: line.ProductID,
				Status:    dto.ImportLineFailed,
				Quantity:  line.Quantity,
				Error:     err.Error(),
			})
			continue
		}
		status := dto.ImportLineUpdated
		if res.Created {
			status = dto.ImportLineCreated
		}
		out.Processed++
		out.Results = append(out.Results, dto.ImportLineResult{
			ProductID: line.ProductID,
			Status:    status,
			Quantity:  res.NewQuantity,
		})
	}
	return out, nil
}

// replaceAll borra incondicionalmente todos los ítems del dueño y reinserta
// las líneas con su cantidad literal. Las líneas repetidas por producto se
// agregan antes de insertar para no violar el UNIQUE (owner, product).
// Borrado e inserciones van en una sola transacción, todo o nada: un insert
// que falle hace rollback completo y la despensa previa queda intacta.
func (uc *BulkUseCase) replaceAll(ctx context.Context, ownerID string, lines []pantrydomain.Line) (*dto.ImportResponse, error) {
	aggregated := pantrydomain.AggregateLines(lines)
	out := &dto.ImportResponse{
		Replaced: true,
		Results:  make([]dto.ImportLineResult, 0, len(aggregated)),
	}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(itemRepo repository.PantryItemRepository) error {
		if err := itemRepo.DeleteAllByOwner(ownerID); err != nil {
			return err
		}
		for _, line := range aggregated {
			item := &entity.PantryItem{
				ID:        uuid.New().String(),
				OwnerID:   ownerID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UpdatedAt: now,
			}
			if err := itemRepo.Insert(item); err != nil {
				return err
			}
			out.Processed++
			out.Results = append(out.Results, dto.ImportLineResult{
				ProductID: line.ProductID,
				Status:    dto.ImportLineInserted,
				Quantity:  line.Quantity,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
