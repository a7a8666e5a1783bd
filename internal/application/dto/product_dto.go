package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// MinimumStock opcional: ausente o negativo se normaliza a 0.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Unit         string           `json:"unit" validate:"omitempty,oneof=kg unidade"`
	MinimumStock *decimal.Decimal `json:"minimum_stock,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
