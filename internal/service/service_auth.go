package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuidGenerator assigns identifiers to newly registered users.
	uuidGenerator *utils.UUIDGenerator

	// bcryptCost is the work factor applied when hashing passwords at
	// registration time. Verification reads the cost from the stored hash.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Username and Password are non-empty, checks that the
// username is still free, hashes the password with bcrypt at the configured
// cost, and delegates persistence to the UserRepository. The plain-text
// password never reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - store.ErrUsernameTaken (wrapped) if the username is already registered.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Error().Str("username", credentials.Username).Msg("username already registered")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrUsernameTaken)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuidGenerator.Generate(),
		Username:     credentials.Username,
		PasswordHash: string(passwordHash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Username and Password are non-empty, looks up the
// account by username, and compares the supplied password against the stored
// bcrypt hash. The comparison runs in constant time.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().
			Str("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the user ID as the subject, and the username
// as a custom claim. It expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. An expired token maps to ErrTokenIsExpired; every other
// validation failure (wrong issuer, bad signature, malformed) is normalised
// to ErrTokenIsInvalid so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
