package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// AdminClaims defines the bearer token claims the guard consumes. Token
// issuance belongs to the identity service; this subsystem only validates.
type AdminClaims struct {
	AdminID int32    `json:"admin_id"`
	Email   string   `json:"email,omitempty"`
	Roles   []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(adminID int32, email string, roles []string) (string, error)
	ValidateToken(tokenString string) (*AdminClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) GenerateAccessToken(adminID int32, email string, roles []string) (string, error) {
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(adminID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "clubreg-auth",
			Audience:  jwt.ClaimStrings{"admin-api"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		if claims.AdminID == 0 && claims.Subject != "" {
			id, _ := strconv.Atoi(claims.Subject)
			claims.AdminID = int32(id)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
