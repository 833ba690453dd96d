package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string   // Application port
	DBUser         string   // Database user
	DBPassword     string   // Database password
	DBHost         string   // Database host
	DBPort         string   // Database port
	DBName         string   // Database name
	JWTSecret      string   // JWT secret key
	RedisAddr      string   // Redis server address
	RedisPass      string   // Redis password
	RedisDB        int      // Redis database number
	IsProd         bool     // Is production environment
	StorageBackend string   // Resume storage backend: local or minio
	UploadDir      string   // Directory for the local storage backend
	MinioEndpoint  string   // MinIO endpoint host:port
	MinioAccessKey string   // MinIO access key
	MinioSecretKey string   // MinIO secret key
	MinioBucket    string   // MinIO bucket for resumes
	MinioUseSSL    bool     // Use TLS when talking to MinIO
	MaxUploadMB    int      // Maximum resume size in megabytes
	CORSOrigins    []string // Allowed CORS origins, empty means all
	AdminName      string   // Name of the bootstrap admin
	AdminEmail     string   // Email of the bootstrap admin
	AdminPassword  string   // Password of the bootstrap admin
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnv("DB_HOST", "127.0.0.1"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisAddr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		IsProd:         os.Getenv("IS_PROD") == "true",
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "resumes"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		MaxUploadMB:    getEnvInt("MAX_UPLOAD_MB", 5),
		CORSOrigins:    getEnvList("CORS_ORIGINS"),
		AdminName:      getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

// DSN returns the MySQL data source name
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// MaxUploadBytes returns the resume size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
