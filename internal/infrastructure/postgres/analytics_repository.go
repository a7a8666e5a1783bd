package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregados para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas del dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts total de productos registrados por el dueño.
func (r *AnalyticsRepo) CountProducts(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM produtos WHERE usuario_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountPantryItems total de ítems (filas) en la despensa del dueño.
func (r *AnalyticsRepo) CountPantryItems(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM dispensa_itens WHERE usuario_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pantry items: %w", err)
	}
	return n, nil
}

// CountLowStockItems ítems cuya cantidad está estrictamente por debajo del
// estoque mínimo del producto. El INNER JOIN excluye huérfanos: sin producto
// no hay umbral y el ítem no cuenta como bajo.
func (r *AnalyticsRepo) CountLowStockItems(ctx context.Context, ownerID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM dispensa_itens i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.usuario_id = $1 AND i.quantidade < p.estoque_minimo`
	var n int
	if err := r.q.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock items: %w", err)
	}
	return n, nil
}

// LastUpdatedItems los últimos ítems tocados (por updated_at desc), con datos
// de producto resueltos por LEFT JOIN.
func (r *AnalyticsRepo) LastUpdatedItems(ctx context.Context, ownerID string, limit int) ([]repository.PantryItemView, error) {
	query := `
		SELECT i.id, i.produto_id, i.quantidade, i.updated_at,
		       p.nome, p.unidade, p.estoque_minimo
		FROM dispensa_itens i
		LEFT JOIN produtos p ON p.id = i.produto_id
		WHERE i.usuario_id = $1
		ORDER BY i.updated_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("last updated items: %w", err)
	}
	defer rows.Close()
	var list []repository.PantryItemView
	for rows.Next() {
		var v repository.PantryItemView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Quantity, &v.UpdatedAt,
			&v.ProductName, &v.Unit, &v.MinimumStock); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
