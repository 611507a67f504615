package costume

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Costume) error
	GetByID(ctx context.Context, id string) (*Costume, error)
	List(ctx context.Context) ([]*Costume, error)
	UpdateImage(ctx context.Context, id, image string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Costume) error {
	const query = `
		INSERT INTO public.costumes (name, size, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, c.Name, c.Size, c.Price, c.Image).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create costume failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Costume, error) {
	const query = `
		SELECT id, name, size, price, image, created_at
		FROM public.costumes
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Costume
	if err := row.Scan(&c.ID, &c.Name, &c.Size, &c.Price, &c.Image, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get costume failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Costume, error) {
	const query = `
		SELECT id, name, size, price, image, created_at
		FROM public.costumes
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list costumes failed: %w", err)
	}
	defer rows.Close()

	var result []*Costume
	for rows.Next() {
		var c Costume
		if err := rows.Scan(&c.ID, &c.Name, &c.Size, &c.Price, &c.Image, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan costume failed: %w", err)
		}
		result = append(result, &c)
	}

	return result, nil
}

func (r *pgxRepository) UpdateImage(ctx context.Context, id, image string) error {
	const query = `UPDATE public.costumes SET image = $2 WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id, image)
	if err != nil {
		return fmt.Errorf("update costume image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.costumes WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete costume failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
