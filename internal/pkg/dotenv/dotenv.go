package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает .env и применяет флаги поверх окружения.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var port string
	flag.StringVar(&port, "port", "", "server port, overrides PORT from env")
	flag.Parse()

	if port != "" {
		if err := os.Setenv("PORT", port); err != nil {
			return fmt.Errorf("override PORT: %w", err)
		}
	}
	return nil
}
