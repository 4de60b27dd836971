package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// BlogClaims are the JWT claims issued by the demo blog service. The
// wardrobe API itself uses opaque session tokens, not JWTs, so that logout
// can destroy sessions server-side.
type BlogClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateBlogToken creates a signed bearer token for the blog demo.
func GenerateBlogToken(username, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := BlogClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wardrobe-blog",
			Audience:  jwt.ClaimStrings{"wardrobe-blog-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateBlogToken parses and validates a blog bearer token.
func ValidateBlogToken(tokenString, secret string) (*BlogClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &BlogClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("wardrobe-blog"), jwt.WithAudience("wardrobe-blog-api"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*BlogClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
