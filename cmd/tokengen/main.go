// Package main issues a signed bearer token for local development.
package main

import (
	"fmt"
	"os"

	"github.com/near/pagoda-console-sub002/config"
	"github.com/near/pagoda-console-sub002/pkg/jwt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tokengen <user-id>")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	token, err := jwt.GenerateToken(os.Args[1], cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
