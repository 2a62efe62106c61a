// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordforge-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectUserSQL = `
SELECT id, email, username, name, password_hash, role, created_at, updated_at
FROM users`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectUserSQL+` WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email address. The caller normalizes email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectUserSQL+` WHERE email = $1`, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// CountActiveLearners returns the number of distinct users with any progress.
func (r *Repo) CountActiveLearners(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(DISTINCT user_id) FROM user_progress`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active learners: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A taken email or username yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if u.Role == "" {
		u.Role = domain.UserRoleUser
	}

	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.Username, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.Email)
	}
	return nil
}

// UpdateName sets the display name and returns the updated user.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`UPDATE users SET name = $2, updated_at = now() WHERE id = $1
		 RETURNING id, email, username, name, password_hash, role, created_at, updated_at`,
		id, name,
	))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// SetRoleByEmail changes the role of the user with the given email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE email = $1`, email, string(role),
	)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	u.Role = domain.UserRole(role)
	return u, err
}
