package pantry_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/pantry"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

const (
	testOwnerID   = "00000000-0000-0000-0000-0000000000aa"
	otherOwnerID  = "00000000-0000-0000-0000-0000000000bb"
	testProductID = "00000000-0000-0000-0000-000000000001"
)

func newMergeFixture(t *testing.T) (*pantry.MergeUseCase, *fakeItemRepo, *fakeProductRepo) {
	t.Helper()
	itemRepo := newFakeItemRepo()
	productRepo := newFakeProductRepo()
	uc := pantry.NewMergeUseCase(&fakeTxRunner{repo: itemRepo}, productRepo)
	return uc, itemRepo, productRepo
}

func registerProduct(t *testing.T, repo *fakeProductRepo, id, ownerID, name string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Product{
		ID: id, OwnerID: ownerID, Name: name, Unit: entity.UnitUnit,
		MinimumStock: decimal.Zero, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Motor de fusión: primera contribución crea, la segunda suma.
// ──────────────────────────────────────────────────────────────────────────────

func TestAddQuantity_PrimeraContribucion_CreaItem(t *testing.T) {
	uc, itemRepo, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, testOwnerID, "arroz")

	res, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.True(t, res.Created, "la primera contribución debe crear el ítem")
	assert.True(t, res.NewQuantity.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 1, itemRepo.countForOwner(testOwnerID))
}

func TestAddQuantity_SegundaContribucion_SumaSinDuplicar(t *testing.T) {
	uc, itemRepo, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, testOwnerID, "arroz")

	first, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(5))
	require.NoError(t, err)
	second, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(2))
	require.NoError(t, err)

	assert.False(t, second.Created, "la segunda contribución debe actualizar, no crear")
	assert.Equal(t, first.ItemID, second.ItemID, "debe ser el mismo ítem")
	assert.True(t, second.PreviousQuantity.Equal(decimal.NewFromInt(5)),
		"la cantidad previa permite mostrar el desglose 5 + 2")
	assert.True(t, second.NewQuantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, 1, itemRepo.countForOwner(testOwnerID),
		"nunca debe haber dos ítems para el mismo producto y dueño")
}

func TestAddQuantity_CantidadesDecimales_SumaExacta(t *testing.T) {
	uc, _, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, testOwnerID, "cafe")

	_, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	res, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.RequireFromString("0.2"))
	require.NoError(t, err)

	assert.True(t, res.NewQuantity.Equal(decimal.RequireFromString("0.3")),
		"la aritmética debe ser decimal exacta, sin error binario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones: rechazos sin mutación.
// ──────────────────────────────────────────────────────────────────────────────

func TestAddQuantity_CantidadCeroONegativa_RechazaSinMutar(t *testing.T) {
	uc, itemRepo, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, testOwnerID, "arroz")

	for _, delta := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		res, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, delta)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Nil(t, res)
	}
	assert.Equal(t, 0, itemRepo.countForOwner(testOwnerID),
		"una contribución rechazada no debe dejar rastro")
}

func TestAddQuantity_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newMergeFixture(t)

	_, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddQuantity_ProductoDeOtroDueno_RetornaForbidden(t *testing.T) {
	uc, itemRepo, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, otherOwnerID, "arroz ajeno")

	_, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, itemRepo.countForOwner(testOwnerID))
}

func TestAddQuantity_SinProductID_RetornaInvalidInput(t *testing.T) {
	uc, _, _ := newMergeFixture(t)

	_, err := uc.AddQuantity(context.Background(), testOwnerID, "", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Dos dueños distintos con el mismo producto propio no se pisan entre sí.
func TestAddQuantity_DuenosIndependientes(t *testing.T) {
	uc, itemRepo, productRepo := newMergeFixture(t)
	registerProduct(t, productRepo, testProductID, testOwnerID, "arroz")
	const otherProductID = "00000000-0000-0000-0000-000000000002"
	registerProduct(t, productRepo, otherProductID, otherOwnerID, "arroz")

	_, err := uc.AddQuantity(context.Background(), testOwnerID, testProductID, decimal.NewFromInt(5))
	require.NoError(t, err)
	_, err = uc.AddQuantity(context.Background(), otherOwnerID, otherProductID, decimal.NewFromInt(3))
	require.NoError(t, err)

	assert.True(t, itemRepo.totalQuantity(testOwnerID).Equal(decimal.NewFromInt(5)))
	assert.True(t, itemRepo.totalQuantity(otherOwnerID).Equal(decimal.NewFromInt(3)))
}
