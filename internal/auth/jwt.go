package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"guild-games-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify the bot or operator tool calling the API.
type Claims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 token for client, valid for cfg.JWTTTL.
func GenerateToken(client string, cfg config.Config) (string, error) {
	if cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is required")
	}
	client = strings.TrimSpace(client)
	if client == "" {
		return "", fmt.Errorf("client name is required")
	}
	now := time.Now().UTC()
	claims := Claims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWTIssuer,
			Subject:   client,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

func ParseAndValidateToken(tokenString string, cfg config.Config) (*Claims, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Client == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
