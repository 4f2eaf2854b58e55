package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken]. The unique
//     index on username is what resolves two racing registrations to exactly
//     one success.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Username, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: user insert failed")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches
// exactly. Usernames are case-sensitive, so no folding is applied.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Str("username", username).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
