package pantry

import "github.com/shopspring/decimal"

// Line es una línea validada de importación: producto + cantidad positiva.
type Line struct {
	ProductID string
	Quantity  decimal.Decimal
}

// AggregateLines suma las cantidades de líneas repetidas por producto,
// preservando el orden de primera aparición. El modo "reemplazar stock"
// inserta filas nuevas sin pasar por el motor de fusión, así que dos líneas
// del mismo producto violarían el UNIQUE (owner, product) si no se agregan antes.
func AggregateLines(lines []Line) []Line {
	byProduct := make(map[string]int, len(lines))
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if idx, ok := byProduct[l.ProductID]; ok {
			out[idx].Quantity = out[idx].Quantity.Add(l.Quantity)
			continue
		}
		byProduct[l.ProductID] = len(out)
		out = append(out, l)
	}
	return out
}
