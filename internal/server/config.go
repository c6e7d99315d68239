package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lmorrow/inkwell/pkg/stringsutil"
)

type Config struct {
	Port        string
	CorsOrigins []string
}

// LoadConfig reads the server settings from the environment. Loading a
// .env file is the command's job, so it happens exactly once per
// process.
func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitTrimmed(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
