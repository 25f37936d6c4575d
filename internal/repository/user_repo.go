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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrIDNumber(ctx context.Context, email, idNumber string) (bool, error)
	ListEntrepreneurs(ctx context.Context, f EntrepreneurFilter) ([]*models.EntrepreneurRow, error)
	UpdateEntrepreneur(ctx context.Context, userID int64, u EntrepreneurUpdate) (*models.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

// EntrepreneurFilter is the closed set of directory predicates. Each one is
// independently optional; set predicates are ANDed, always parameterized.
type EntrepreneurFilter struct {
	Search *string // case-insensitive substring over name, surname, email
	Hub    *string // exact match
	Status *string // exact match
}

// EntrepreneurUpdate carries the admin's partial update; nil fields keep the
// stored value.
type EntrepreneurUpdate struct {
	Name    *string
	Surname *string
	Email   *string
	Phone   *string
	Hub     *string
	Status  *string
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (name, surname, id_number, email, phone, password_hash, hub, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id;
	`

	var userID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query,
			user.Name, user.Surname, user.IDNumber, user.Email, user.Phone,
			user.PasswordHash, user.Hub, user.Role, user.Status,
		).Scan(&userID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrUserExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := `
		SELECT id, name, surname, id_number, email, phone, password_hash, hub, role, status, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := `
		SELECT id, name, surname, id_number, email, phone, password_hash, hub, role, status, created_at
		FROM users
		WHERE email = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

// ExistsByEmailOrIDNumber is one combined query on purpose: registration must
// not reveal which of the two fields collided.
func (r *UserRepo) ExistsByEmailOrIDNumber(ctx context.Context, email, idNumber string) (bool, error) {
	const op = "user_repo.ExistsByEmailOrIDNumber"

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR id_number = $2);`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, email, idNumber)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *UserRepo) ListEntrepreneurs(ctx context.Context, f EntrepreneurFilter) ([]*models.EntrepreneurRow, error) {
	const op = "user_repo.ListEntrepreneurs"

	query := `
		SELECT u.id, u.name, u.surname, u.id_number, u.email, u.phone, u.hub, u.status, u.created_at,
			COUNT(DISTINCT b.id) AS business_count
		FROM users u
		LEFT JOIN businesses b ON u.id = b.user_id
		WHERE u.role = 'entrepreneur'
	`

	var args []any
	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		p := placeholder(len(args))
		query += ` AND (u.name ILIKE ` + p + ` OR u.surname ILIKE ` + p + ` OR u.email ILIKE ` + p + `)`
	}
	if f.Hub != nil {
		args = append(args, *f.Hub)
		query += ` AND u.hub = ` + placeholder(len(args))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += ` AND u.status = ` + placeholder(len(args))
	}

	query += ` GROUP BY u.id ORDER BY u.created_at DESC;`

	var rows []*models.EntrepreneurRow
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.EntrepreneurRow{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return rows, nil
}

func (r *UserRepo) UpdateEntrepreneur(ctx context.Context, userID int64, u EntrepreneurUpdate) (*models.User, error) {
	const op = "user_repo.UpdateEntrepreneur"

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			surname = COALESCE($2, surname),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			hub = COALESCE($5, hub),
			status = COALESCE($6, status)
		WHERE id = $7 AND role = 'entrepreneur'
		RETURNING id, name, surname, id_number, email, phone, password_hash, hub, role, status, created_at;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query,
		u.Name, u.Surname, u.Email, u.Phone, u.Hub, u.Status, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

// Deactivate is the "delete" operation: the row stays for audit, the stored
// credential is replaced with a sentinel no password can match, and the
// status flips to inactive.
func (r *UserRepo) Deactivate(ctx context.Context, userID int64) error {
	const op = "user_repo.Deactivate"

	query := `
		UPDATE users
		SET password_hash = $1, status = $2
		WHERE id = $3 AND role = 'entrepreneur';
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		models.DeactivatedHash, models.StatusInactive, userID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
