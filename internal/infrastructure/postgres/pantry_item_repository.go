package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.PantryItemRepository = (*PantryItemRepo)(nil)

// PantryItemRepo implementación del puerto PantryItemRepository sobre PostgreSQL (usable con pool o tx).
//
// La tabla dispensa_itens tiene UNIQUE (usuario_id, produto_id): el motor de
// fusión depende de que nunca haya dos filas para el mismo producto y dueño.
type PantryItemRepo struct {
	q Querier
}

// NewPantryItemRepository construye el adaptador de persistencia para ítems de despensa. Pasar pool o tx (Querier).
func NewPantryItemRepository(q Querier) *PantryItemRepo {
	return &PantryItemRepo{q: q}
}

const pantryItemColumns = `id, usuario_id, produto_id, quantidade, updated_at`

// GetByOwnerAndProductForUpdate busca el ítem del dueño para un producto
// (cero o uno) bloqueando la fila (SELECT ... FOR UPDATE). Solo tiene sentido
// dentro de una transacción.
func (r *PantryItemRepo) GetByOwnerAndProductForUpdate(ownerID, productID string) (*entity.PantryItem, error) {
	query := `SELECT ` + pantryItemColumns + ` FROM dispensa_itens
		WHERE usuario_id = $1 AND produto_id = $2 FOR UPDATE`
	var it entity.PantryItem
	err := r.q.QueryRow(context.Background(), query, ownerID, productID).Scan(
		&it.ID, &it.OwnerID, &it.ProductID, &it.Quantity, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pantry item: %w", err)
	}
	return &it, nil
}

// GetByID obtiene un ítem por ID acotado al dueño.
func (r *PantryItemRepo) GetByID(ownerID, id string) (*entity.PantryItem, error) {
	return r.getByID(ownerID, id, false)
}

// GetByIDForUpdate es igual que GetByID pero bloquea la fila. Solo tiene
// sentido dentro de una transacción.
func (r *PantryItemRepo) GetByIDForUpdate(ownerID, id string) (*entity.PantryItem, error) {
	return r.getByID(ownerID, id, true)
}

func (r *PantryItemRepo) getByID(ownerID, id string, forUpdate bool) (*entity.PantryItem, error) {
	query := `SELECT ` + pantryItemColumns + ` FROM dispensa_itens WHERE usuario_id = $1 AND id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var it entity.PantryItem
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&it.ID, &it.OwnerID, &it.ProductID, &it.Quantity, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pantry item by id: %w", err)
	}
	return &it, nil
}

// Insert persiste un ítem nuevo. Falla con unique_violation si ya existe un
// ítem para (usuario_id, produto_id); el caller decide si reintenta como update.
func (r *PantryItemRepo) Insert(item *entity.PantryItem) error {
	query := `
		INSERT INTO dispensa_itens (id, usuario_id, produto_id, quantidade, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OwnerID, item.ProductID, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pantry item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad absoluta de un ítem.
func (r *PantryItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE dispensa_itens SET quantidade = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pantry item quantity: %w", err)
	}
	return nil
}

// DeleteByID elimina un ítem del dueño.
func (r *PantryItemRepo) DeleteByID(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM dispensa_itens WHERE usuario_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}
	return nil
}

// DeleteAllByOwner vacía la despensa del dueño (modo replace de la importación).
func (r *PantryItemRepo) DeleteAllByOwner(ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM dispensa_itens WHERE usuario_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("delete pantry items: %w", err)
	}
	return nil
}

// ListByOwner devuelve el stock del dueño con los datos del producto resueltos
// por LEFT JOIN: un ítem cuyo producto fue eliminado aparece con campos de
// producto en NULL (huérfano). Orden por actualización descendente; el nombre
// solo desempata.
func (r *PantryItemRepo) ListByOwner(ownerID string) ([]repository.PantryItemView, error) {
	query := `
		SELECT i.id, i.produto_id, i.quantidade, i.updated_at,
		       p.nome, p.unidade, p.estoque_minimo
		FROM dispensa_itens i
		LEFT JOIN produtos p ON p.id = i.produto_id
		WHERE i.usuario_id = $1
		ORDER BY i.updated_at DESC, p.nome ASC NULLS LAST`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	defer rows.Close()
	var list []repository.PantryItemView
	for rows.Next() {
		var v repository.PantryItemView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Quantity, &v.UpdatedAt,
			&v.ProductName, &v.Unit, &v.MinimumStock); err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
