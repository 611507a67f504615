package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListForCostume returns a costume's reservations matching the status
	// filter (StatusAny for all), ordered by ascending end date.
	ListForCostume(ctx context.Context, costumeID string, status Status) ([]*Reservation, error)

	// ListActiveForCostume returns a costume's approved reservations that
	// end on or after the given date, ordered by ascending start date.
	ListActiveForCostume(ctx context.Context, costumeID string, from time.Time) ([]*Reservation, error)

	ListForUser(ctx context.Context, userID string) ([]*Reservation, error)
	List(ctx context.Context, page, pageSize int) ([]*Reservation, int, error)

	// WithCostumeLock runs fn inside a transaction that holds an advisory
	// lock keyed by the costume. Conflict checks and the write that follows
	// them must happen inside fn, so concurrent create/approve calls on the
	// same costume serialize instead of racing past each other's checks.
	WithCostumeLock(ctx context.Context, costumeID string, fn func(Repository) error) error
}

// querier is the subset of pgx operations shared by pools and transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool // nil when scoped to a transaction
	db   querier
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool, db: pool}
}

const selectColumns = `r.id, r.costume_id, c.name, r.user_id, u.name,
	r.start_date, r.end_date, r.status, r.created_at, r.updated_at`

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	query, args, err := psql().Insert("public.reservations").
		Columns("costume_id", "user_id", "start_date", "end_date", "status").
		Values(res.CostumeID, res.UserID, res.Range.Start, res.Range.End, res.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	return r.db.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query, args, err := r.selectBase().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	res, err := scanReservation(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	query, args, err := psql().Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation query failed: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListForCostume(ctx context.Context, costumeID string, status Status) ([]*Reservation, error) {
	query := r.selectBase().
		Where(squirrel.Eq{"r.costume_id": costumeID}).
		OrderBy("r.end_date ASC")

	if status != StatusAny {
		query = query.Where(squirrel.Eq{"r.status": status})
	}

	return r.queryMany(ctx, query)
}

func (r *pgxRepository) ListActiveForCostume(ctx context.Context, costumeID string, from time.Time) ([]*Reservation, error) {
	query := r.selectBase().
		Where(squirrel.Eq{"r.costume_id": costumeID}).
		Where(squirrel.Eq{"r.status": StatusApproved}).
		Where(squirrel.GtOrEq{"r.end_date": from}).
		OrderBy("r.start_date ASC")

	return r.queryMany(ctx, query)
}

func (r *pgxRepository) ListForUser(ctx context.Context, userID string) ([]*Reservation, error) {
	query := r.selectBase().
		Where(squirrel.Eq{"r.user_id": userID}).
		OrderBy("r.start_date DESC")

	return r.queryMany(ctx, query)
}

func (r *pgxRepository) List(ctx context.Context, page, pageSize int) ([]*Reservation, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query, args, err := psql().Select(selectColumns, "count(*) OVER() AS total_count").
		From("public.reservations r").
		Join("public.costumes c ON r.costume_id = c.id").
		Join("public.users u ON r.user_id = u.id").
		OrderBy("r.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.CostumeID, &res.CostumeName, &res.UserID, &res.UserName,
			&res.Range.Start, &res.Range.End, &res.Status, &res.CreatedAt, &res.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, total, nil
}

func (r *pgxRepository) WithCostumeLock(ctx context.Context, costumeID string, fn func(Repository) error) error {
	if r.pool == nil {
		return errors.New("costume lock already held")
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		// pg_advisory_xact_lock serializes concurrent bookings of the same
		// costume; the lock is released when the transaction ends.
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", costumeID); err != nil {
			return fmt.Errorf("acquire costume lock failed: %w", err)
		}
		return fn(&pgxRepository{db: tx})
	})
}

func (r *pgxRepository) selectBase() squirrel.SelectBuilder {
	return psql().Select(selectColumns).
		From("public.reservations r").
		Join("public.costumes c ON r.costume_id = c.id").
		Join("public.users u ON r.user_id = u.id")
}

func (r *pgxRepository) queryMany(ctx context.Context, query squirrel.SelectBuilder) ([]*Reservation, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reservations query failed: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, res)
	}

	return result, nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	if err := row.Scan(
		&res.ID, &res.CostumeID, &res.CostumeName, &res.UserID, &res.UserName,
		&res.Range.Start, &res.Range.End, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
