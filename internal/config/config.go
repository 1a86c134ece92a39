package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogDir          string
	ImageDir        string
	MaxUploadSize   int64
	MaxCombinations int

	DBType         string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBPath         string
	MigrationsPath string
}

// Load reads configuration from the environment, after merging in an
// optional .env file. Missing keys fall back to development defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		LogDir:          getEnv("LOG_DIR", "./logs"),
		ImageDir:        getEnv("IMAGE_DIR", "./uploads"),
		MaxUploadSize:   getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
		MaxCombinations: getEnvAsInt("MAX_COMBINATIONS", 0),

		DBType:         getEnv("DB_TYPE", "sqlite"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnvAsInt("DB_PORT", 5432),
		DBUser:         getEnv("DB_USER", "sensegrid"),
		DBPassword:     getEnv("DB_PASSWORD", "sensegrid_dev"),
		DBName:         getEnv("DB_NAME", "sensegrid"),
		DBPath:         getEnv("DB_PATH", "./sensegrid.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
