package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port           string
	DataURL        string
	DataFile       string
	DataDir        string
	StorageBackend string
	MongoURI       string
	DBName         string
	RedisAddr      string
	FetchTimeout   time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DataURL:        getEnvOrDefault("DATA_URL", ""),
		DataFile:       getEnvOrDefault("DATA_FILE", "data/products.json"),
		DataDir:        getEnvOrDefault("DATA_DIR", "data"),
		StorageBackend: getEnvOrDefault("STORAGE_BACKEND", ""),
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "fruitshop"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", ""),
		FetchTimeout:   getDurationEnv("FETCH_TIMEOUT", 5, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
