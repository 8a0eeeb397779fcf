// Package env reads settings given by environment variables or a dotenv file.
package env

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	KeyApiRoot = "TRIPOPS_API_ROOT"
	KeyLocale  = "TRIPOPS_LOCALE"
	KeyTimeout = "TRIPOPS_TIMEOUT"

	// DefaultApiRoot is the backend of local development.
	DefaultApiRoot = "http://localhost:8000"
	DefaultLocale  = "ko"
)

type TripEnv struct {
	ApiRoot string
	Locale  string

	// Zero when not set.
	Timeout time.Duration
}

// Load reads the dotenv file at path and the process environment.
//
// Process environment variables take precedence over the file.
// A missing dotenv file is not an error.
func Load(path string) (*TripEnv, error) {
	vars := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if read != nil {
			vars = read
		}
	}

	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := vars[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	e := &TripEnv{
		ApiRoot: getEnv(KeyApiRoot, DefaultApiRoot),
		Locale:  getEnv(KeyLocale, DefaultLocale),
	}
	if t := getEnv(KeyTimeout, ""); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, err
		}
		e.Timeout = d
	}
	return e, nil
}
