package main

import (
	"bufio"
	"darshan/shared/logger"
	"darshan/shared/secret"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Reads an admin key from stdin and prints the value for APP_API_KEY_HASH.
func main() {
	logger.InitLogger()

	plain, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && plain == "" {
		log.Fatal().Err(err).Msg("Failed to read admin key from stdin")
	}

	hash, err := secret.Hash(strings.TrimSpace(plain))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin key")
	}

	fmt.Println(hash) //nolint:forbidigo
}
