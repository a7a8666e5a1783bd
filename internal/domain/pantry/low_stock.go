// Package pantry contiene los servicios de dominio de la despensa: la regla
// de estoque baixo y la agregación de líneas de importación. Funciones puras,
// sin estado ni acceso a datos; toda vista que muestre el indicador debe
// pasar por aquí para que la regla quede en un solo lugar.
package pantry

import "github.com/shopspring/decimal"

// IsLowStock decide si una cantidad está por debajo del mínimo configurado.
// Regla: quantity < minimum (desigualdad estricta; quantity == minimum no es bajo).
func IsLowStock(quantity, minimum decimal.Decimal) bool {
	return quantity.LessThan(minimum)
}

// ClassifyItem aplica la regla a un ítem que puede haber quedado huérfano
// (producto eliminado). Sin referencia al producto se clasifica como no bajo.
func ClassifyItem(quantity decimal.Decimal, minimum *decimal.Decimal) bool {
	if minimum == nil {
		return false
	}
	return IsLowStock(quantity, *minimum)
}
