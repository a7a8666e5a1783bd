package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de la despensa del usuario más los últimos ítems actualizados.
type DashboardSummaryDTO struct {
	TotalProducts int `json:"total_products"`
	TotalItems    int `json:"total_items"`
	LowStockItems int `json:"low_stock_items"`

	// Últimos 5 ítems por updated_at descendente
	RecentItems []PantryItemResponse `json:"recent_items"`
}
