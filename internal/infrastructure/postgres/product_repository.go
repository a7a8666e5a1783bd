package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produtos (id, usuario_id, nome, unidade, estoque_minimo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.Unit, product.MinimumStock,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, usuario_id, nome, unidade, estoque_minimo, created_at, updated_at
		FROM produtos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Unit, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByOwnerAndName obtiene un producto por dueño y nombre exacto.
func (r *ProductRepo) GetByOwnerAndName(ownerID, name string) (*entity.Product, error) {
	query := `
		SELECT id, usuario_id, nome, unidade, estoque_minimo, created_at, updated_at
		FROM produtos WHERE usuario_id = $1 AND nome = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, ownerID, name).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Unit, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// ListByOwner lista productos del dueño con paginación, más recientes primero.
func (r *ProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, usuario_id, nome, unidade, estoque_minimo, created_at, updated_at
		FROM produtos WHERE usuario_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Unit, &p.MinimumStock,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto del dueño. Los ítems de despensa que lo referencian
// se conservan como huérfanos (no hay FK; la vista los resuelve con LEFT JOIN).
func (r *ProductRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM produtos WHERE usuario_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
