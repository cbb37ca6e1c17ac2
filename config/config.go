package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const DatabaseName string = "railway-reservation"

type Config struct {
	ListenAddr      string
	MongoURI        string
	StripeSecretKey string
}

// Load reads configuration from the environment, with .env as a fallback
// for local runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI, err := GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		return nil, fmt.Errorf("cannot find connection string for DB in the environment: %w", err)
	}

	stripeKey, err := GetSecret("STRIPE_SECRET_KEY")
	if err != nil {
		return nil, fmt.Errorf("cannot find stripe secret key in the environment: %w", err)
	}

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":5000"),
		MongoURI:        mongoURI,
		StripeSecretKey: stripeKey,
	}, nil
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func getEnv(key string, fallback string) string {
	if val, exist := os.LookupEnv(key); exist {
		return val
	}
	return fallback
}
