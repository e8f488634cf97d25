package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/StrideShop_Go/internal/auth"
)

// gen-token mints a bearer token for local testing against the API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	userID := flag.String("user", "", "User id placed in the sub claim")
	username := flag.String("name", "", "Optional username claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	token, err := auth.GenerateToken(secret, os.Getenv("JWT_ISSUER"), *userID, *username, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}
