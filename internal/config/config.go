package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/random"
)

// App holds all runtime configuration, loaded from the environment.
type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
	// Network
	Port string `envconfig:"PORT" default:"8080"`
	// Security
	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`
}

// Load reads configuration from a .env file (if present) and the environment.
// A missing JWT_SECRET gets a generated value so development setups work,
// but tokens won't survive a restart.
func Load() (App, bool, error) {
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, false, err
	}

	generatedSecret := false
	if c.JWTSecret == "" {
		c.JWTSecret = random.String(32)
		generatedSecret = true
	}
	return c, generatedSecret, nil
}
