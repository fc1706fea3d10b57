package config

import (
	"github.com/joho/godotenv"
)

// LoadDotenv pulls variables from a local .env file when one exists.
// Variables already present in the process environment win.
func LoadDotenv() {
	_ = godotenv.Load()
}
