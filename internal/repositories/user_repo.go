package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jaijaish98/invoice-generator-business-management-backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error)
	ExistsByEmailAndMobileNumber(ctx context.Context, email, mobileNumber string) (bool, error)
	FindByEmailOrMobileNumber(ctx context.Context, email, mobileNumber string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateAccount(ctx context.Context, user *models.User) error
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, name, email, mobile_number, password_hash, role, created_at`

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, mobile_number, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.MobileNumber, user.PasswordHash, user.Role, user.CreatedAt)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *userRepo) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE mobile_number = $1)`
	err := r.db.QueryRow(ctx, query, mobileNumber).Scan(&exists)
	return exists, err
}

func (r *userRepo) ExistsByEmailAndMobileNumber(ctx context.Context, email, mobileNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND mobile_number = $2)`
	err := r.db.QueryRow(ctx, query, email, mobileNumber).Scan(&exists)
	return exists, err
}

func (r *userRepo) FindByEmailOrMobileNumber(ctx context.Context, email, mobileNumber string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR mobile_number = $2 LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, email, mobileNumber))
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, passwordHash, id)
	return err
}

func (r *userRepo) UpdateAccount(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, mobile_number = $3 WHERE id = $4`
	_, err := r.db.Exec(ctx, query, user.Name, user.Email, user.MobileNumber, user.ID)
	return err
}

func (r *userRepo) scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.MobileNumber, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
