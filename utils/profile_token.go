package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const profileIssuer = "poppyandteal"

type ProfileClaims struct {
	jwt.RegisteredClaims
}

// GenerateProfileToken signs the anonymous profile id kept in the browser cookie.
func GenerateProfileToken(profileID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ProfileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			Issuer:    profileIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseProfileToken(tokenString, secret string) (string, error) {
	claims := &ProfileClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(profileIssuer))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid profile token")
	}
	return claims.Subject, nil
}
