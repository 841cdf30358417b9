package repo

import (
	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Upsert creates the product under a fresh id, or folds it into the first
// product that already carries the same name.
func (r *InMemoryProductRepository) Upsert(product models.Product) (models.Product, UpsertOutcome, error) {
	for i, p := range r.products {
		if p.Name == product.Name {
			p.Quantity = product.Quantity
			p.PriceCents = product.PriceCents
			if product.UpdatedAt.After(p.UpdatedAt) {
				p.UpdatedAt = product.UpdatedAt
			}
			r.products[i] = p
			return p, OutcomeUpdated, nil
		}
	}
	created, err := r.Create(product)
	return created, OutcomeCreated, err
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetByName retrieves the first product with the given name.
func (r *InMemoryProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
