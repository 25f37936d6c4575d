package repo

import (
	"context"
	"database/sql"
	"errors"

	"entrepreneur-tracker/internal/lib"
	"entrepreneur-tracker/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type ReportRepository interface {
	CountEntrepreneurs(ctx context.Context) (int, error)
	CountRecentEntrepreneurs(ctx context.Context) (int, error)
	CountBusinesses(ctx context.Context) (int, error)
	CountBootcampAssignments(ctx context.Context) (int, error)
	PaymentTotals(ctx context.Context) (*models.PaymentTotals, error)
	HubPerformance(ctx context.Context) ([]*models.HubPerformance, error)
}

type ReportRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewReportRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ReportRepo {
	return &ReportRepo{
		db:     db,
		getter: c,
	}
}

func (r *ReportRepo) CountEntrepreneurs(ctx context.Context) (int, error) {
	const op = "report_repo.CountEntrepreneurs"

	query := `SELECT COUNT(*) FROM users WHERE role = 'entrepreneur';`

	var count int
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

// CountRecentEntrepreneurs counts registrations in the trailing 30 days.
func (r *ReportRepo) CountRecentEntrepreneurs(ctx context.Context) (int, error) {
	const op = "report_repo.CountRecentEntrepreneurs"

	query := `
		SELECT COUNT(*)
		FROM users
		WHERE role = 'entrepreneur'
		AND created_at >= now() - INTERVAL '30 days';
	`

	var count int
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

func (r *ReportRepo) CountBusinesses(ctx context.Context) (int, error) {
	const op = "report_repo.CountBusinesses"

	query := `SELECT COUNT(*) FROM businesses;`

	var count int
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

func (r *ReportRepo) CountBootcampAssignments(ctx context.Context) (int, error) {
	const op = "report_repo.CountBootcampAssignments"

	query := `SELECT COUNT(*) FROM bootcamps;`

	var count int
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, lib.Err(op, err)
	}
	return count, nil
}

func (r *ReportRepo) PaymentTotals(ctx context.Context) (*models.PaymentTotals, error) {
	const op = "report_repo.PaymentTotals"

	query := `
		SELECT
		COUNT(*) AS total,
		COUNT(CASE WHEN status = 'paid' THEN 1 END) AS paid,
		COUNT(CASE WHEN status = 'unpaid' THEN 1 END) AS unpaid,
		COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending,
		COUNT(CASE WHEN status = 'overdue' THEN 1 END) AS overdue
		FROM payments;
	`

	var totals models.PaymentTotals
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &totals, query); err != nil {
		return nil, lib.Err(op, err)
	}
	return &totals, nil
}

func (r *ReportRepo) HubPerformance(ctx context.Context) ([]*models.HubPerformance, error) {
	const op = "report_repo.HubPerformance"

	query := `
		SELECT
			u.hub,
			COUNT(DISTINCT u.id) AS total_entrepreneurs,
			COUNT(DISTINCT b.id) AS total_businesses,
			COUNT(DISTINCT CASE WHEN u.status = 'active' THEN u.id END) AS active_entrepreneurs,
			COUNT(DISTINCT p.id) AS total_payments,
			COUNT(DISTINCT CASE WHEN p.status = 'paid' THEN p.id END) AS paid_payments
		FROM users u
		LEFT JOIN businesses b ON u.id = b.user_id
		LEFT JOIN payments p ON b.id = p.business_id
		WHERE u.role = 'entrepreneur' AND u.hub IS NOT NULL
		GROUP BY u.hub
		ORDER BY total_entrepreneurs DESC;
	`

	var rows []*models.HubPerformance
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.HubPerformance{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return rows, nil
}
