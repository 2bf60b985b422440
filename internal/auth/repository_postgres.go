package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Insert(ctx context.Context, user *User) error {
	// Single atomic insert: the unique constraint on email decides the
	// race instead of a check-then-act sequence.
	query := `
		INSERT INTO users (id, email, password, allergies)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Password, user.Allergies,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password, allergies, created_at
		FROM users WHERE email=$1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, password, allergies, created_at
		FROM users WHERE id=$1
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresUserRepository) UpdateAllergies(ctx context.Context, id string, allergies []string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET allergies = $1
		WHERE id = $2
	`, allergies, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Allergies, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
