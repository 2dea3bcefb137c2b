package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	// Store postgres 或 memory
	Store       string
	AppSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTExpiry   time.Duration
	BcryptCost  int
	AMQPURL     string
	LogLevel    string
}

// Load 加载配置
func Load() *Config {
	expiryHours := getEnvInt("JWT_EXPIRY_HOURS", 72)
	bcryptCost := getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "moviestore")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", defaultSecret))
	env := getEnv("APP_ENV", "development")

	if env == "production" && appSecret == defaultSecret {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return &Config{
		Env:         env,
		Port:        getEnv("PORT", "5005"),
		DatabaseURL: dbURL,
		Store:       getEnv("STORE", "postgres"),
		AppSecret:   appSecret,
		JWTIssuer:   getEnv("JWT_ISSUER", "moviestore"),
		JWTAudience: getEnv("JWT_AUDIENCE", "moviestore-clients"),
		JWTExpiry:   time.Duration(expiryHours) * time.Hour,
		BcryptCost:  bcryptCost,
		AMQPURL:     getEnv("AMQP_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}
