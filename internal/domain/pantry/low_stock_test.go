package pantry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Despensa-api/internal/domain/pantry"
)

// ──────────────────────────────────────────────────────────────────────────────
// IsLowStock — la regla es estrictamente menor: cantidad == mínimo NO es bajo.
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLowStock_CantidadIgualAlMinimo_NoEsBajo(t *testing.T) {
	qty := decimal.NewFromInt(5)
	min := decimal.NewFromInt(5)
	assert.False(t, pantry.IsLowStock(qty, min),
		"cantidad igual al mínimo no debe marcar estoque baixo")
}

func TestIsLowStock_CantidadPorDebajoDelMinimo_EsBajo(t *testing.T) {
	qty := decimal.RequireFromString("4.999")
	min := decimal.NewFromInt(5)
	assert.True(t, pantry.IsLowStock(qty, min))
}

func TestIsLowStock_CantidadPorEncimaDelMinimo_NoEsBajo(t *testing.T) {
	qty := decimal.NewFromInt(6)
	min := decimal.NewFromInt(5)
	assert.False(t, pantry.IsLowStock(qty, min))
}

func TestIsLowStock_MinimoCero_DesactivaLaAlerta(t *testing.T) {
	// Con mínimo 0 ninguna cantidad positiva puede estar por debajo.
	assert.False(t, pantry.IsLowStock(decimal.RequireFromString("0.001"), decimal.Zero))
	assert.False(t, pantry.IsLowStock(decimal.NewFromInt(100), decimal.Zero))
}

func TestIsLowStock_ComparaComoDecimalExacto(t *testing.T) {
	// 0.1 + 0.2 en binario no es 0.3; con decimales exactos sí.
	qty := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))
	min := decimal.RequireFromString("0.3")
	assert.False(t, pantry.IsLowStock(qty, min),
		"0.3 no está por debajo de 0.3")
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyItem — un ítem huérfano (sin producto, sin mínimo) nunca es bajo.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyItem_SinMinimo_NoEsBajo(t *testing.T) {
	assert.False(t, pantry.ClassifyItem(decimal.NewFromInt(1), nil),
		"ítem huérfano sin producto debe clasificar como no bajo")
}

func TestClassifyItem_ConMinimo_AplicaLaRegla(t *testing.T) {
	min := decimal.NewFromInt(3)
	assert.True(t, pantry.ClassifyItem(decimal.NewFromInt(2), &min))
	assert.False(t, pantry.ClassifyItem(decimal.NewFromInt(3), &min))
}
