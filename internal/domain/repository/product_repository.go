package repository

import "github.com/jhoicas/Despensa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las consultas están acotadas al dueño: un usuario nunca ve productos ajenos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Product, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error)
	Delete(ownerID, id string) error
}
