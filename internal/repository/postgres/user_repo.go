package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/Jer-romano/messagely/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error code for unique_violation.
const uniqueViolation = "23505"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		user.Username, user.PasswordHash, user.FirstName,
		user.LastName, user.Phone, user.JoinAt, user.LastLoginAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateUsername
	}
	return err
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, password, first_name, last_name, phone, join_at, last_login_at
		FROM users
		WHERE username = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.Username, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Phone, &u.JoinAt, &u.LastLoginAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List(ctx context.Context) ([]domain.PublicProfile, error) {
	query := `
		SELECT username, first_name, last_name, phone
		FROM users
		ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.PublicProfile
	for rows.Next() {
		var p domain.PublicProfile
		if err := rows.Scan(&p.Username, &p.FirstName, &p.LastName, &p.Phone); err != nil {
			return nil, err
		}
		users = append(users, p)
	}
	return users, rows.Err()
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, username string, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE username = $2`, at, username)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
