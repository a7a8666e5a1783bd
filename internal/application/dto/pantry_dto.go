package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest body para POST /api/pantry/items: una contribución de cantidad.
type AddItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// AddItemResponse resultado del motor de fusión. Created indica si se insertó
// un ítem nuevo; si se actualizó, PreviousQuantity trae la cantidad anterior
// para poder mostrar "5 + 2".
type AddItemResponse struct {
	ItemID           string           `json:"item_id"`
	Created          bool             `json:"created"`
	PreviousQuantity *decimal.Decimal `json:"previous_quantity,omitempty"`
	Quantity         decimal.Decimal  `json:"quantity"`
}

// DecreaseItemRequest body para POST /api/pantry/items/{id}/decrease.
// Quantity opcional; por defecto se descuenta una unidad.
type DecreaseItemRequest struct {
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
}

// DecreaseItemResponse resultado de un descuento. Deleted indica que la
// cantidad llegó a cero y la fila se eliminó.
type DecreaseItemResponse struct {
	ItemID   string          `json:"item_id"`
	Deleted  bool            `json:"deleted"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PantryItemResponse fila de la vista de stock. Los campos del producto
// pueden venir vacíos si el ítem quedó huérfano; LowStock se calcula en cada
// lectura, nunca se almacena.
type PantryItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	LowStock     bool            `json:"low_stock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PantryListResponse listado de ítems del dueño, más recientes primero.
type PantryListResponse struct {
	Items []PantryItemResponse `json:"items"`
	Total int                  `json:"total"`
}

// ImportLineRequest una línea del lote de importación. Quantity viaja como
// texto tal como llega del formulario; la validación la hace el driver.
type ImportLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// ImportRequest body para POST /api/pantry/import.
type ImportRequest struct {
	Lines           []ImportLineRequest `json:"lines" validate:"required"`
	ReplacePrevious bool                `json:"replace_previous"`
}

// Estados por línea del resultado de importación.
const (
	ImportLineCreated  = "created"
	ImportLineUpdated  = "updated"
	ImportLineInserted = "inserted" // modo reemplazo: fila nueva tras limpiar
	ImportLineFailed   = "failed"
)

// ImportLineResult resultado individual de una línea válida del lote.
type ImportLineResult struct {
	ProductID string          `json:"product_id"`
	Status    string          `json:"status"`
	Quantity  decimal.Decimal `json:"quantity"`
	Error     string          `json:"error,omitempty"`
}

// ImportResponse resumen del lote: cuántas líneas válidas se procesaron y el
// detalle por línea para que el caller decida qué hacer con fallos parciales.
type ImportResponse struct {
	Processed int                `json:"processed"`
	Failed    int                `json:"failed"`
	Replaced  bool               `json:"replaced"`
	Results   []ImportLineResult `json:"results"`
}
