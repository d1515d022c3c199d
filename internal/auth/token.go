package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bagdasarian/football-registration/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - полезная нагрузка токена: sub содержит id пользователя
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewTokenManager(secret string, ttl time.Duration, clock clockwork.Clock) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// Issue выпускает HS256 токен для пользователя
func (m *TokenManager) Issue(identity domain.Identity) (string, error) {
	now := m.clock.Now()
	claims := Claims{
		Admin: identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Parse проверяет подпись и срок действия токена и возвращает личность вызывающего
func (m *TokenManager) Parse(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return domain.Identity{UserID: userID, IsAdmin: claims.Admin}, nil
}
