package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	RedisAddr       string
	HTTPPort        string
	JWTSecret       string
	RandomQuestions int // randomized questions appended to the fixed set per test
}

func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "commitscale"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		RandomQuestions: getEnvInt("TEST_RANDOM_QUESTIONS", 25),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
