// Package pdf implementa la generación de la lista de compras en PDF: los
// productos de la despensa que están por debajo de su estoque mínimo, con la
// cantidad sugerida de reposición.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista de Compras │ Dueño + Fecha                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unidad | Actual | Mínimo | Comprar       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de líneas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apppantry "github.com/jhoicas/Despensa-api/internal/application/pantry"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apppantry.ShoppingListPDFGenerator = (*MarotoShoppingListGenerator)(nil)

// MarotoShoppingListGenerator implementa pantry.ShoppingListPDFGenerator usando Maroto v2.
type MarotoShoppingListGenerator struct{}

// NewMarotoShoppingListGenerator construye el generador.
func NewMarotoShoppingListGenerator() *MarotoShoppingListGenerator {
	return &MarotoShoppingListGenerator{}
}

// GenerateShoppingListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoShoppingListGenerator) GenerateShoppingListPDF(
	_ context.Context,
	ownerName string,
	entries []apppantry.ShoppingListEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ownerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableEntryRows(entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(entries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y dueño + fecha (der).
func headerRow(ownerName string) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("LISTA DE COMPRAS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Productos por debajo del estoque mínimo", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(ownerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Actual", 2, align.Right),
		h("Mínimo", 1, align.Right),
		h("Comprar", 2, align.Right),
	)
}

// tableEntryRows: una fila por producto a reponer.
func tableEntryRows(entries []apppantry.ShoppingListEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				e.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				e.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatQty(e.Quantity.String(), e.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				formatQty(e.MinimumStock.String(), e.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatQty(e.SuggestedQty.String(), e.Unit),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: total de líneas a comprar.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d producto(s) por reponer", total), props.Text{
			Size: 8, Color: colorGray, Top: 2,
		}),
	))
}

// formatQty agrega el sufijo de unidad solo para kg; el conteo va sin sufijo.
func formatQty(qty, unit string) string {
	if unit == "kg" {
		return qty + " kg"
	}
	return qty
}
