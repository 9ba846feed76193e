package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"booking_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for admin credential storage.
type AuthRepository interface {
	// CreateAdminUser returns ErrDuplicateKey if the username is taken.
	CreateAdminUser(ctx context.Context, username, passwordHash string) (int64, error)
	FindAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

type authRepository struct {
	db SQLExecutor
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db SQLExecutor) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateAdminUser(ctx context.Context, username, passwordHash string) (int64, error) {
	query := `INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, username, passwordHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating admin user: %v", ErrDatabaseError, err)
	}
	return id, nil
}

func (r *authRepository) FindAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	query := `SELECT id, username, password_hash FROM admin_users WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding admin user %s: %v", ErrDatabaseError, username, err)
	}
	return user, nil
}
