package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the caller identity carried by a bearer token. Token issuance is
// handled by an external identity service; this package only verifies.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// Verifier validates HS256 bearer tokens against a shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a token string and extracts the identity claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	if len(v.secret) == 0 {
		return nil, errors.New("auth: JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("auth: invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		// Some issuers use userId instead of the registered sub claim
		sub, _ = mapClaims["userId"].(string)
	}
	if sub == "" {
		return nil, errors.New("auth: token has no subject")
	}

	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if role == "" {
		role = "candidate" // Fallback
	}

	return &Claims{UserID: sub, Email: email, Role: role}, nil
}
