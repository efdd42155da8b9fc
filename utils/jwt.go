package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "barberia"

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs an HS256 token for subject that expires after duration.
func GenerateToken(secret []byte, subject string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   subject,
		Issuer:    tokenIssuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(duration).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses tokenString, rejecting non-HMAC signatures, expired
// tokens and tokens from another issuer.
func ValidateToken(secret []byte, tokenString string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || !claims.VerifyIssuer(tokenIssuer, true) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractIDFromToken returns the subject of a valid token.
func ExtractIDFromToken(secret []byte, tokenString string) (string, error) {
	claims, err := ValidateToken(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return claims.Subject, nil
}
