package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBSource        string
	JWTSecret       string
	JWTTTL          time.Duration
	UpstreamBaseURL string
	KitchenPoll     time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		Port:            getEnv("PORT", "8000"),
		DBSource:        getEnv("DB_SOURCE", "gateway.db"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://ordering-system-backend-a1az.onrender.com"),
		KitchenPoll:     time.Duration(getEnvInt("KITCHEN_POLL_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
