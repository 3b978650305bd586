package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbelkin/newsnotes/internal/db"
	"github.com/mbelkin/newsnotes/internal/forms"
)

// WarningUsernameTaken is the field error on a duplicate username at signup.
const WarningUsernameTaken = "A user with that username already exists."

// ErrInvalidCredentials is returned on unknown username or wrong password,
// indistinguishably.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Identity is the authenticated requester. Anonymous requesters carry no
// Identity at all.
type Identity struct {
	UserID   int
	Username string
}

type Manager struct {
	db       *db.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewManager(repo *db.Repository, secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		db:       repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// SignUp creates a new user with a bcrypt password hash. A duplicate
// username is a *forms.Error on the username field.
func (m *Manager) SignUp(ctx context.Context, username, password string) (*Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := m.db.AddUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrUsernameTaken) {
			return nil, forms.FieldError("username", WarningUsernameTaken)
		}
		return nil, fmt.Errorf("db add user: %w", err)
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

// Login verifies the credentials and issues a session token.
func (m *Manager) Login(ctx context.Context, username, password string) (string, error) {
	user, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("db get user: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return m.IssueToken(Identity{UserID: user.ID, Username: user.Username})
}

type sessionClaims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 session token for the identity.
func (m *Manager) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(identity.UserID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

// ParseToken validates a session token and recovers the identity.
func (m *Manager) ParseToken(tokenString string) (*Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid session subject")
	}

	return &Identity{UserID: userID, Username: claims.Username}, nil
}
