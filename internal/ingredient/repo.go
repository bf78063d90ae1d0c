package ingredient

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/confeitaria/internal/db"
)

var (
	ErrNotFound = errors.New("ingredient not found")
)

const queryTimeout = 5 * time.Second

//go:generate mockgen -source=repo.go -destination=ingredientmock/repo_mock.go -package=ingredientmock

type Repository interface {
	Create(ctx context.Context, in *Ingredient) error
	List(ctx context.Context) ([]Ingredient, error)
	Update(ctx context.Context, id int64, apply func(*Ingredient) error) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db db.Pool }

func NewPGRepo(pool db.Pool) *PGRepo { return &PGRepo{db: pool} }

func (r *PGRepo) Create(ctx context.Context, in *Ingredient) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO ingredients (product_name, base, filling)
		VALUES ($1,$2,$3)
		RETURNING id
	`, in.ProductName, in.Base, in.Filling).Scan(&in.ID)
}

func (r *PGRepo) List(ctx context.Context) ([]Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, product_name, base, filling FROM ingredients`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Ingredient{}
	for rows.Next() {
		var in Ingredient
		if err := rows.Scan(&in.ID, &in.ProductName, &in.Base, &in.Filling); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// Update locks the row, merges through apply and writes it back in one transaction.
func (r *PGRepo) Update(ctx context.Context, id int64, apply func(*Ingredient) error) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	var in Ingredient
	err = tx.QueryRow(ctx, `
		SELECT id, product_name, base, filling
		FROM ingredients WHERE id=$1
		FOR UPDATE
	`, id).Scan(&in.ID, &in.ProductName, &in.Base, &in.Filling)
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := apply(&in); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE ingredients
		SET product_name = $2, base = $3, filling = $4
		WHERE id = $1
	`, id, in.ProductName, in.Base, in.Filling); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
