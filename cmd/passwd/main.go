// Command passwd prints the bcrypt hash to put into ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/passwd -password 's3cret'
//	printf 's3cret' | go run ./cmd/passwd
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
)

func main() {
	var password string
	flag.StringVar(&password, "password", "", "password to hash, read from stdin when empty")
	flag.Parse()

	if password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "no password given")
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "password must be at least 8 characters")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
