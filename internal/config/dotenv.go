package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenv files in precedence order. godotenv never overwrites a variable
// that is already set, so the real environment wins over .env.local, which
// wins over .env.
var dotenvCandidates = []string{".env.local", ".env"}

// LoadDotEnv reads the local dotenv files into the process environment and
// returns the names of the files that were found.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range dotenvCandidates {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			continue
		}
		loaded = append(loaded, name)
	}
	return loaded
}
