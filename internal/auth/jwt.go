package auth

import (
	"errors"
	"time"

	"portfolio/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), ttl: 7 * 24 * time.Hour}
}

type Claims struct {
	AdminID uint64
	Role    string
}

func (j *JWT) Sign(adminID uint64, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  adminID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(j.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

func (j *JWT) Verify(tokenStr string) (Claims, error) {
	t, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, apperr.New(apperr.CodeTokenExpired, "token expired")
		}
		return Claims{}, apperr.New(apperr.CodeInvalidToken, "invalid token")
	}
	if !t.Valid {
		return Claims{}, apperr.New(apperr.CodeInvalidToken, "invalid token")
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, apperr.New(apperr.CodeInvalidToken, "invalid claims")
	}

	// jwt MapClaims numbers are float64
	idf, ok := mc["sub"].(float64)
	if !ok {
		return Claims{}, apperr.New(apperr.CodeInvalidToken, "missing sub")
	}
	role, ok := mc["role"].(string)
	if !ok || !ValidRole(role) {
		return Claims{}, apperr.New(apperr.CodeInvalidToken, "missing role")
	}

	return Claims{AdminID: uint64(idf), Role: role}, nil
}
