package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/confeitaria/internal/db"
)

var (
	ErrNotFound = errors.New("order not found")
)

const queryTimeout = 5 * time.Second

//go:generate mockgen -source=repo.go -destination=ordermock/repo_mock.go -package=ordermock

type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	// Update locks the order, lets apply mutate it and persists the result.
	// The write is discarded when apply returns an error.
	Update(ctx context.Context, id int64, apply func(*Order) error) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db db.Pool }

func NewPGRepo(pool db.Pool) *PGRepo { return &PGRepo{db: pool} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (client, cake, date, price)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, o.Client, o.Cake, o.Date.Time, o.Price).Scan(&o.ID)
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, client, cake, date, price FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Client, &o.Cake, &o.Date.Time, &o.Price); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id int64, apply func(*Order) error) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	var o Order
	err = tx.QueryRow(ctx, `
		SELECT id, client, cake, date, price
		FROM orders WHERE id=$1
		FOR UPDATE
	`, id).Scan(&o.ID, &o.Client, &o.Cake, &o.Date.Time, &o.Price)
	if err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := apply(&o); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE orders
		SET client = $2, cake = $3, date = $4, price = $5
		WHERE id = $1
	`, id, o.Client, o.Cake, o.Date.Time, o.Price); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
