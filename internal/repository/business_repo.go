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

type BusinessRepository interface {
	Create(ctx context.Context, b *models.Business) (*models.Business, error)
	GetByID(ctx context.Context, businessID int64) (*models.Business, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Business, error)
	ListAllWithOwner(ctx context.Context) ([]*models.BusinessWithOwner, error)
}

type BusinessRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBusinessRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *BusinessRepo {
	return &BusinessRepo{
		db:     db,
		getter: c,
	}
}

func (r *BusinessRepo) Create(ctx context.Context, b *models.Business) (*models.Business, error) {
	const op = "business_repo.Create"

	query := `
		INSERT INTO businesses (user_id, name, type, registration_number, location, industry,
			years_operating, description, turnover_range, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id, user_id, name, type, registration_number, location, industry,
			years_operating, description, turnover_range, logo_url, created_at;
	`

	var created models.Business
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, query,
		b.UserID, b.Name, b.Type, b.RegistrationNumber, b.Location, b.Industry,
		b.YearsOperating, b.Description, b.TurnoverRange, b.LogoURL)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return nil, ErrBusinessExists
			}
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, businessID int64) (*models.Business, error) {
	const op = "business_repo.GetByID"

	query := `
		SELECT id, user_id, name, type, registration_number, location, industry,
			years_operating, description, turnover_range, logo_url, created_at
		FROM businesses
		WHERE id = $1;
	`

	var b models.Business
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &b, query, businessID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &b, nil
}

func (r *BusinessRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Business, error) {
	const op = "business_repo.ListByUser"

	query := `
		SELECT id, user_id, name, type, registration_number, location, industry,
			years_operating, description, turnover_range, logo_url, created_at
		FROM businesses
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	var businesses []*models.Business
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &businesses, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Business{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return businesses, nil
}

func (r *BusinessRepo) ListAllWithOwner(ctx context.Context) ([]*models.BusinessWithOwner, error) {
	const op = "business_repo.ListAllWithOwner"

	query := `
		SELECT b.id, b.name, b.registration_number,
			u.name AS owner_name, u.surname AS owner_surname, u.email AS owner_email
		FROM businesses b
		JOIN users u ON b.user_id = u.id
		ORDER BY b.name;
	`

	var businesses []*models.BusinessWithOwner
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &businesses, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.BusinessWithOwner{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return businesses, nil
}
