package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load читает .env, если он есть, и применяет флаги командной строки поверх окружения.
// Уже выставленные переменные окружения .env не перезаписывает.
func Load(args []string) (loadedFile bool, err error) {
	err = godotenv.Load()
	switch {
	case err == nil:
		loadedFile = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("load .env: %w", err)
	}

	flags := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	port := flags.String("port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return loadedFile, fmt.Errorf("parse flags: %w", err)
	}

	if *port != "" {
		err := os.Setenv("PORT", *port)
		if err != nil {
			return loadedFile, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loadedFile, nil
}
