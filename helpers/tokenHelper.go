package helpers

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Role string
	jwt.StandardClaims
}

const AdminRole = "ADMIN"

func secretKey() []byte {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "quickbite-dev-secret"
	}
	return []byte(key)
}

// GenerateAdminToken issues the session token handed out after a successful
// admin password check.
func GenerateAdminToken() (string, error) {
	claim := SignedDetails{
		Role: AdminRole,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Local().Add(12 * time.Hour).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(secretKey())
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("the token is invalid")
	}
	if claims.ExpiresAt < time.Now().Local().Unix() {
		return nil, fmt.Errorf("token is expired")
	}
	return claims, nil
}
