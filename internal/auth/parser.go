package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/danebr/trackops/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	StaffID string `json:"staff_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Parser validates HMAC-signed access tokens issued by the auth service.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(token string) (model.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.Principal{}, ErrInvalidToken
	}

	staffID, err := uuid.Parse(claims.StaffID)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	role := model.StaffRole(claims.Role)
	switch role {
	case model.StaffRoleAdmin, model.StaffRoleManager, model.StaffRoleStaff:
	default:
		return model.Principal{}, ErrInvalidToken
	}

	return model.Principal{StaffID: staffID, Role: role}, nil
}
