package account

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SQLRepository persists accounts through database/sql. The SQL sticks to
// the subset both sqlite and postgres accept.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// isUniqueViolation matches the constraint errors of both supported
// drivers. Neither exposes a portable error type for this.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key value")
}

func (r *SQLRepository) Create(ctx context.Context, a *Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, name, provider, provider_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		a.ID,
		a.Email,
		nullable(a.PasswordHash),
		nullable(a.Name),
		string(a.Provider),
		nullable(a.ProviderID),
		string(a.Role),
		now.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *SQLRepository) ByEmail(ctx context.Context, email string) (*Account, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, provider, provider_id, role, created_at, updated_at
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
	`, email))
}

func (r *SQLRepository) ByProviderSubject(ctx context.Context, p Provider, providerID string) (*Account, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, name, provider, provider_id, role, created_at, updated_at
		FROM accounts
		WHERE provider = $1 AND provider_id = $2
	`, string(p), providerID))
}

func (r *SQLRepository) UpdateName(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, name, time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("update account name: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) scanOne(row *sql.Row) (*Account, error) {
	var (
		a                    Account
		passwordHash         sql.NullString
		name                 sql.NullString
		providerID           sql.NullString
		provider, role       string
		createdAt, updatedAt string
	)
	err := row.Scan(&a.ID, &a.Email, &passwordHash, &name, &provider, &providerID, &role, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}

	a.PasswordHash = passwordHash.String
	a.Name = name.String
	a.Provider = Provider(provider)
	a.ProviderID = providerID.String
	a.Role = Role(role)
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return &a, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
