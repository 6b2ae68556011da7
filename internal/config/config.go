package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	BcryptCost int
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "messagely"),
		DBPassword: getEnv("DB_PASSWORD", "messagely_dev_password"),
		DBName:     getEnv("DB_NAME", "messagely"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
