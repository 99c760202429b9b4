package token

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind selects which of the two token classes to mint or verify.
// Access and refresh tokens are signed with distinct secrets and carry
// the kind inside the claims, so they are never interchangeable.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpired      = errors.New("token expired")
)

type Claims struct {
	UserID int64  `json:"user_id"`
	Kind   string `json:"token_kind"`
	jwtlib.RegisteredClaims
}

// Service mints and verifies access/refresh JWTs. Pure computation over
// the configured secrets and the clock; no I/O.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration

	// now is swappable in tests.
	now func() time.Time
}

func New(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (s *Service) Mint(userID int64, kind Kind) (string, error) {
	secret, ttl, err := s.kindParams(kind)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := Claims{
		UserID: userID,
		Kind:   string(kind),
		RegisteredClaims: jwtlib.RegisteredClaims{
			// jti makes every minted token distinct, even for the same
			// subject within the same second. Rotation depends on that.
			ID:        uuid.NewString(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify checks signature, expiry and kind, and returns the subject
// user id. Expiry is reported as ErrExpired so callers can tell the
// client that renewal (or re-login) is needed; every other failure is
// ErrInvalidToken.
func (s *Service) Verify(tokenStr string, kind Kind) (int64, error) {
	secret, _, err := s.kindParams(kind)
	if err != nil {
		return 0, err
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Kind != string(kind) || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

func (s *Service) kindParams(kind Kind) ([]byte, time.Duration, error) {
	switch kind {
	case KindAccess:
		return s.accessSecret, s.accessTTL, nil
	case KindRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, ErrInvalidToken
	}
}
