package auth

import (
	"errors"
	"time"

	"github.com/example/oiladmin/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator implements the single-admin gate: one configured username
// with a bcrypt password hash, HS256 tokens for the session.
type Authenticator struct {
	cfg     *config.AuthConfig
	nowFunc func() time.Time
}

func New(cfg *config.AuthConfig) *Authenticator {
	return &Authenticator{
		cfg:     cfg,
		nowFunc: time.Now,
	}
}

// Login checks the credentials and issues a signed token.
func (a *Authenticator) Login(username, password string) (string, error) {
	if username != a.cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := a.nowFunc()
	ttl := a.cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(a.cfg.JWTSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses a token and returns the admin username it was issued to.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("subject not found in token")
	}
	return sub, nil
}

// HashPassword is a setup helper for generating the configured hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
