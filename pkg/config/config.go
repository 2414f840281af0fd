package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	StorageDriver    string
	FirebaseProject  string
	CapabilitySecret string
	MarketplaceID    string
	SubmissionFeeUSD uint64
	PurchaseFeeBP    uint64
	TokenScale       uint64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		StorageDriver:    getEnv("STORAGE_DRIVER", "memory"),
		FirebaseProject:  getEnv("FIREBASE_PROJECT_ID", ""),
		CapabilitySecret: getEnv("CAPABILITY_SECRET", "dev-capability-secret"),
		MarketplaceID:    getEnv("MARKETPLACE_ID", "ludomarket"),
		SubmissionFeeUSD: getEnvAsUint64("SUBMISSION_FEE_USD", 100),
		PurchaseFeeBP:    getEnvAsUint64("PURCHASE_FEE_BP", 100), // 1%
		TokenScale:       getEnvAsUint64("TOKEN_SCALE", 100),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err == nil {
			return uintValue
		}
	}
	return defaultValue
}
