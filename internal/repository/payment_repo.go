package repo

import (
	"context"
	"database/sql"
	"errors"

	"entrepreneur-tracker/internal/lib"
	"entrepreneur-tracker/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Exists(ctx context.Context, businessID int64, month, year int) (bool, error)
	Update(ctx context.Context, paymentID int64, status string, notes *string) (*models.Payment, error)
	ListAllWithBusiness(ctx context.Context) ([]*models.PaymentWithBusiness, error)
	ListByOwner(ctx context.Context, userID int64) ([]*models.PaymentWithBusiness, error)
}

type PaymentRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPaymentRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PaymentRepo {
	return &PaymentRepo{
		db:     db,
		getter: c,
	}
}

func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	const op = "payment_repo.Create"

	query := `
		INSERT INTO payments (business_id, month, year, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, business_id, month, year, status, notes, created_at;
	`

	var created models.Payment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, query,
		p.BusinessID, p.Month, p.Year, p.Status, p.Notes)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return nil, ErrPaymentExists
			}
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *PaymentRepo) Exists(ctx context.Context, businessID int64, month, year int) (bool, error) {
	const op = "payment_repo.Exists"

	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE business_id = $1 AND month = $2 AND year = $3);`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, businessID, month, year)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *PaymentRepo) Update(ctx context.Context, paymentID int64, status string, notes *string) (*models.Payment, error) {
	const op = "payment_repo.Update"

	query := `
		UPDATE payments
		SET status = $1, notes = COALESCE($2, notes)
		WHERE id = $3
		RETURNING id, business_id, month, year, status, notes, created_at;
	`

	var updated models.Payment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &updated, query, status, notes, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &updated, nil
}

func (r *PaymentRepo) ListAllWithBusiness(ctx context.Context) ([]*models.PaymentWithBusiness, error) {
	const op = "payment_repo.ListAllWithBusiness"

	query := `
		SELECT p.id, p.business_id, p.month, p.year, p.status, p.notes, p.created_at,
			b.name AS business_name, b.registration_number,
			u.name AS owner_name, u.surname AS owner_surname, u.email AS owner_email
		FROM payments p
		JOIN businesses b ON p.business_id = b.id
		JOIN users u ON b.user_id = u.id
		ORDER BY p.year DESC, p.month DESC, p.created_at DESC;
	`

	var payments []*models.PaymentWithBusiness
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &payments, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.PaymentWithBusiness{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return payments, nil
}

func (r *PaymentRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.PaymentWithBusiness, error) {
	const op = "payment_repo.ListByOwner"

	query := `
		SELECT p.id, p.business_id, p.month, p.year, p.status, p.notes, p.created_at,
			b.name AS business_name
		FROM payments p
		JOIN businesses b ON p.business_id = b.id
		WHERE b.user_id = $1
		ORDER BY p.year DESC, p.month DESC;
	`

	var payments []*models.PaymentWithBusiness
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &payments, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.PaymentWithBusiness{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return payments, nil
}
