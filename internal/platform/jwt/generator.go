package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator はサインアップ・ログイン後に発行するアクセストークンの生成を抽象化します。
type Generator interface {
	// GenerateToken は指定ユーザー向けの署名済みJWTを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

type hmacGenerator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator はHS256で署名するGeneratorを返します。
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &hmacGenerator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken はsub・email・exp・iatクレームを持つトークンを署名して返します。
func (g *hmacGenerator) GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(g.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
