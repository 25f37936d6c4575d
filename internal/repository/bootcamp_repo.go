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

type BootcampRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.BootcampAssignment, error)
	Insert(ctx context.Context, a *models.BootcampAssignment) (*models.BootcampAssignment, error)
	Update(ctx context.Context, u AssignmentUpdate) (*models.BootcampAssignment, error)
	ListCohorts(ctx context.Context, f CohortFilter) ([]*models.CohortRow, error)
}

// AssignmentUpdate re-assigns an existing row: cohort and year are always
// written, the nil fields keep their stored values, and assigned_date is
// refreshed.
type AssignmentUpdate struct {
	UserID         int64
	Cohort         string
	CohortYear     int
	Attendance     *int
	TotalSessions  *int
	BootcampStatus *string
}

// CohortFilter is the closed predicate set for the cohort listing.
type CohortFilter struct {
	CohortYear *int
	Hub        *string
	Status     *string
}

type BootcampRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBootcampRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *BootcampRepo {
	return &BootcampRepo{
		db:     db,
		getter: c,
	}
}

func (r *BootcampRepo) GetByUserID(ctx context.Context, userID int64) (*models.BootcampAssignment, error) {
	const op = "bootcamp_repo.GetByUserID"

	query := `
		SELECT id, user_id, cohort, cohort_year, attendance, total_sessions, bootcamp_status, assigned_date
		FROM bootcamps
		WHERE user_id = $1;
	`

	var a models.BootcampAssignment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &a, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &a, nil
}

func (r *BootcampRepo) Insert(ctx context.Context, a *models.BootcampAssignment) (*models.BootcampAssignment, error) {
	const op = "bootcamp_repo.Insert"

	query := `
		INSERT INTO bootcamps (user_id, cohort, cohort_year, attendance, total_sessions, bootcamp_status, assigned_date)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, user_id, cohort, cohort_year, attendance, total_sessions, bootcamp_status, assigned_date;
	`

	var created models.BootcampAssignment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, query,
		a.UserID, a.Cohort, a.CohortYear, a.Attendance, a.TotalSessions, a.BootcampStatus)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *BootcampRepo) Update(ctx context.Context, u AssignmentUpdate) (*models.BootcampAssignment, error) {
	const op = "bootcamp_repo.Update"

	query := `
		UPDATE bootcamps
		SET cohort = $1,
			cohort_year = $2,
			attendance = COALESCE($3, attendance),
			total_sessions = COALESCE($4, total_sessions),
			bootcamp_status = COALESCE($5, bootcamp_status),
			assigned_date = now()
		WHERE user_id = $6
		RETURNING id, user_id, cohort, cohort_year, attendance, total_sessions, bootcamp_status, assigned_date;
	`

	var updated models.BootcampAssignment
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &updated, query,
		u.Cohort, u.CohortYear, u.Attendance, u.TotalSessions, u.BootcampStatus, u.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &updated, nil
}

func (r *BootcampRepo) ListCohorts(ctx context.Context, f CohortFilter) ([]*models.CohortRow, error) {
	const op = "bootcamp_repo.ListCohorts"

	query := `
		SELECT b.id, b.cohort, b.cohort_year, b.assigned_date, b.attendance,
			b.total_sessions, b.bootcamp_status,
			u.id AS user_id, u.name, u.surname, u.email, u.phone, u.hub
		FROM bootcamps b
		JOIN users u ON b.user_id = u.id
		WHERE 1=1
	`

	var args []any
	if f.CohortYear != nil {
		args = append(args, *f.CohortYear)
		query += ` AND b.cohort_year = ` + placeholder(len(args))
	}
	if f.Hub != nil {
		args = append(args, *f.Hub)
		query += ` AND u.hub = ` + placeholder(len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += ` AND b.bootcamp_status = ` + placeholder(len(args))
	}

	query += ` ORDER BY b.assigned_date DESC;`

	var rows []*models.CohortRow
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.CohortRow{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return rows, nil
}
