package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ecamp/config"
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/bytedance/sonic"
)

// admin-token prints a signed ADMIN token for the deploy-mode camp and trip
// write routes. It reads JWT_SECRET the same way the server does.
func main() {
	userID := flag.Int("user", 0, "User ID for the token")
	username := flag.String("username", "admin@ecamp.local", "Username for the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}

	middleware.InitJWT(cfg.JWT.Secret, *ttl)

	token, err := middleware.GenerateJWT(*userID, *username, domain.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		out, err := sonic.ConfigStd.MarshalIndent(map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(ttl.Seconds()),
			"username":     *username,
			"role":         domain.RoleAdmin,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println("Admin Token Generated")
	fmt.Println("=====================")
	fmt.Printf("Username: %s\n", *username)
	fmt.Printf("Role:     %s\n", domain.RoleAdmin)
	fmt.Printf("Expires:  %s\n", time.Now().Add(*ttl).Format(time.RFC3339))
	fmt.Println()
	fmt.Println(token)
}
