package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// UpsertOutcome reports whether an upsert created a new row or folded into
// an existing one.
type UpsertOutcome int

const (
	OutcomeCreated UpsertOutcome = iota
	OutcomeUpdated
)

func (o UpsertOutcome) String() string {
	if o == OutcomeCreated {
		return "created"
	}
	return "updated"
}

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// Upsert creates the product under a fresh id unless one with the same
	// name exists; then quantity and price are overwritten unconditionally
	// and updated_at only moves forward, never back.
	Upsert(product models.Product) (models.Product, UpsertOutcome, error)
	GetByID(id int) (models.Product, error)
	GetByName(name string) (models.Product, error)
	GetAll() ([]models.Product, error)
}
