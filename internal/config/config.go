package config

import "os"

// Config carries the process configuration, loaded from the environment.
type Config struct {
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	HTTPPort         string
	JWTSecret        string
	OperatorUsername string
	OperatorPassword string
}

// Load reads the configuration with development defaults.
func Load() *Config {
	return &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "surveydb"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		OperatorUsername: getEnv("OPERATOR_USERNAME", "admin"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", "password123"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
