package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

const testOwnerID = "00000000-0000-0000-0000-0000000000aa"

// memProductRepo fake en memoria del puerto ProductRepository.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (m *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetByOwnerAndName(ownerID, name string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.OwnerID == ownerID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range m.products {
		if p.OwnerID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (m *memProductRepo) Delete(ownerID, id string) error {
	delete(m.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: normalización de nombre, unidad y mínimo.
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NormalizaNombreYDefaults(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "  Arroz  "})
	require.NoError(t, err)

	assert.Equal(t, "Arroz", out.Name, "el nombre se guarda con trim")
	assert.Equal(t, entity.UnitUnit, out.Unit, "sin unidad explícita aplica unidade")
	assert.True(t, out.MinimumStock.Equal(decimal.Zero), "sin mínimo explícito queda 0")
	assert.NotEmpty(t, out.ID)
}

func TestCreate_NombreVacio_Rechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_UnidadInvalida_Rechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "Arroz", Unit: "litros"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MinimoNegativo_SeNormalizaACero(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	neg := decimal.NewFromInt(-3)
	out, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "Arroz", MinimumStock: &neg})
	require.NoError(t, err)
	assert.True(t, out.MinimumStock.Equal(decimal.Zero))
}

func TestCreate_NombreDuplicadoDelMismoDueno_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "Arroz"})
	require.NoError(t, err)
	_, err = uc.Create(testOwnerID, dto.CreateProductRequest{Name: "Arroz"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_MismoNombreDeOtroDueno_EsValido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(testOwnerID, dto.CreateProductRequest{Name: "Arroz"})
	require.NoError(t, err)
	_, err = uc.Create("otro-dueno", dto.CreateProductRequest{Name: "Arroz"})
	assert.NoError(t, err, "el nombre solo es único por dueño")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Delete: acotados al dueño.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_ProductoDeOtroDueno_EsInvisible(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create("otro-dueno", dto.CreateProductRequest{Name: "Arroz"})
	require.NoError(t, err)

	out, err := uc.GetByID(testOwnerID, created.ID)
	require.NoError(t, err)
	assert.Nil(t, out, "el producto ajeno no debe ser visible")
}

func TestDelete_ProductoDeOtroDueno_RetornaNotFound(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create("otro-dueno", dto.CreateProductRequest{Name: "Arroz"})
	require.NoError(t, err)

	err = uc.Delete(testOwnerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.products, 1, "no debe borrarse")
}
