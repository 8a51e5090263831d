// Command tokengen mints an API token for a bot or operator tool.
//
//	JWT_SECRET=... tokengen -client puzzle-bot
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"guild-games-go/internal/auth"
	"guild-games-go/internal/config"
)

func main() {
	client := flag.String("client", "", "client name to embed in the token")
	ttl := flag.Duration("ttl", config.DefaultJWTTTL, "token lifetime")
	flag.Parse()

	cfg := config.Config{
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: config.JWTIssuerFromEnv(),
		JWTTTL:    *ttl,
	}

	tok, err := auth.GenerateToken(*client, cfg)
	if err != nil {
		log.Fatalf("tokengen: %v", err)
	}
	fmt.Println(tok)
}
