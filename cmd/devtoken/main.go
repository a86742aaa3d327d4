// Command devtoken prints a bearer token for a user id, signed with
// JWT_SECRET, for exercising the API locally.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/auth"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/config"
)

func main() {
	userID := flag.String("user", "", "user id to sign for")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -user <id> [-ttl 12h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := auth.IssueToken(cfg.JWT.Secret, *userID, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
