package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/rogerio-castellano/inventory-cli/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

// Upsert creates p under a fresh id, or folds it into the row that already
// carries the same name. Quantity and price are overwritten either way;
// updated_at only moves when p carries a strictly later timestamp.
func (r *PostgresProductRepository) Upsert(p models.Product) (models.Product, UpsertOutcome, error) {
	existing, err := r.GetByName(p.Name)
	if errors.Is(err, ErrProductNotFound) {
		created, err := r.Create(p)
		return created, OutcomeCreated, err
	}
	if err != nil {
		return models.Product{}, OutcomeCreated, err
	}

	existing.Quantity = p.Quantity
	existing.PriceCents = p.PriceCents
	if p.UpdatedAt.After(existing.UpdatedAt) {
		existing.UpdatedAt = p.UpdatedAt
	}

	updated, err := r.Update(existing)
	return updated, OutcomeUpdated, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, quantity, price, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Quantity, p.PriceCents, p.UpdatedAt).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.PriceCents, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Quantity, &p.PriceCents, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// GetByName resolves the name to the oldest matching row. Names are not
// declared unique in the schema, so duplicates inserted out of band all fold
// into the row with the lowest id.
func (r *PostgresProductRepository) GetByName(name string) (models.Product, error) {
	query := `SELECT id, name, quantity, price, updated_at FROM products WHERE name = $1 ORDER BY id LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Quantity, &p.PriceCents, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, quantity = $2, price = $3, updated_at = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Quantity, p.PriceCents, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}
