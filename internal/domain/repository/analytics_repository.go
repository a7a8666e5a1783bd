package repository

import "context"

// AnalyticsRepository consultas read-only de agregados para el dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context, ownerID string) (int, error)
	CountPantryItems(ctx context.Context, ownerID string) (int, error)
	CountLowStockItems(ctx context.Context, ownerID string) (int, error)
	LastUpdatedItems(ctx context.Context, ownerID string, limit int) ([]PantryItemView, error)
}
