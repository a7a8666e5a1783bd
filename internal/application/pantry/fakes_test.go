package pantry_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Sin concurrencia: los tests
// de los casos de uso son secuenciales.
// ──────────────────────────────────────────────────────────────────────────────

var errFakeStorage = errors.New("fallo simulado de almacenamiento")

type fakeItemRepo struct {
	items map[string]*entity.PantryItem // por ID
	// productos conocidos para resolver la vista (nombre, unidad, mínimo)
	products map[string]*entity.Product

	failInsertForProduct string // Insert falla para este producto
	lockedByIDReads      int    // llamadas a GetByIDForUpdate
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:    make(map[string]*entity.PantryItem),
		products: make(map[string]*entity.Product),
	}
}

func (f *fakeItemRepo) GetByOwnerAndProductForUpdate(ownerID, productID string) (*entity.PantryItem, error) {
	for _, it := range f.items {
		if it.OwnerID == ownerID && it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) GetByID(ownerID, id string) (*entity.PantryItem, error) {
	it, ok := f.items[id]
	if !ok || it.OwnerID != ownerID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItemRepo) GetByIDForUpdate(ownerID, id string) (*entity.PantryItem, error) {
	f.lockedByIDReads++
	return f.GetByID(ownerID, id)
}

func (f *fakeItemRepo) Insert(item *entity.PantryItem) error {
	if item.ProductID == f.failInsertForProduct && f.failInsertForProduct != "" {
		return errFakeStorage
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) UpdateQuantity(id string, quantity decimal.Decimal, updatedAt time.Time) error {
	it, ok := f.items[id]
	if !ok {
		return errFakeStorage
	}
	it.Quantity = quantity
	it.UpdatedAt = updatedAt
	return nil
}

func (f *fakeItemRepo) DeleteByID(ownerID, id string) error {
	it, ok := f.items[id]
	if ok && it.OwnerID == ownerID {
		delete(f.items, id)
	}
	return nil
}

func (f *fakeItemRepo) DeleteAllByOwner(ownerID string) error {
	for id, it := range f.items {
		if it.OwnerID == ownerID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeItemRepo) ListByOwner(ownerID string) ([]repository.PantryItemView, error) {
	var views []repository.PantryItemView
	for _, it := range f.items {
		if it.OwnerID != ownerID {
			continue
		}
		v := repository.PantryItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UpdatedAt: it.UpdatedAt,
		}
		if p, ok := f.products[it.ProductID]; ok {
			name, unit, min := p.Name, p.Unit, p.MinimumStock
			v.ProductName = &name
			v.Unit = &unit
			v.MinimumStock = &min
		}
		views = append(views, v)
	}
	// Mismo contrato de orden que el adaptador real: recencia descendente.
	sort.Slice(views, func(i, j int) bool {
		if !views[i].UpdatedAt.Equal(views[j].UpdatedAt) {
			return views[i].UpdatedAt.After(views[j].UpdatedAt)
		}
		return views[i].ID < views[j].ID
	})
	return views, nil
}

// totalQuantity suma el stock del dueño para verificar invariantes de fusión.
func (f *fakeItemRepo) totalQuantity(ownerID string) decimal.Decimal {
	total := decimal.Zero
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			total = total.Add(it.Quantity)
		}
	}
	return total
}

func (f *fakeItemRepo) countForOwner(ownerID string) int {
	n := 0
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			n++
		}
	}
	return n
}

// fakeTxRunner ejecuta el callback sobre el repo en memoria con semántica de
// rollback: si fn falla, el estado de ítems vuelve al snapshot previo.
type fakeTxRunner struct {
	repo *fakeItemRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(itemRepo repository.PantryItemRepository) error) error {
	snapshot := make(map[string]*entity.PantryItem, len(r.repo.items))
	for id, it := range r.repo.items {
		cp := *it
		snapshot[id] = &cp
	}
	if err := fn(r.repo); err != nil {
		r.repo.items = snapshot
		return err
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByOwnerAndName(ownerID, name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.OwnerID == ownerID && p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range f.products {
		if p.OwnerID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) Delete(ownerID, id string) error {
	delete(f.products, id)
	return nil
}
