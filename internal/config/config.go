package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	S3     S3Config
	Email  EmailConfig
	Seller SellerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds settings for the invoice PDF archive bucket. An empty
// bucket disables archiving.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EmailConfig holds invoice email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// SellerConfig holds the letterhead details printed on every invoice.
type SellerConfig struct {
	Name        string `mapstructure:"name"`
	Tagline     string `mapstructure:"tagline"`
	Address     string `mapstructure:"address"`
	GSTNo       string `mapstructure:"gst_no"`
	PANNo       string `mapstructure:"pan_no"`
	BankDetails string `mapstructure:"bank_details"`
	Terms       string `mapstructure:"terms"`
}

// Load reads configuration from environment variables with the BILLBOOK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billbook")
	v.SetDefault("db.password", "billbook_secret")
	v.SetDefault("db.name", "billbook_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "billbook")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// S3 defaults (archiving disabled unless a bucket is set)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@example.com")
	v.SetDefault("email.from_name", "Bill Book")

	// Seller defaults
	v.SetDefault("seller.name", "RAJESH CHEMICAL")
	v.SetDefault("seller.tagline", "DEALER IN : ACID SLURRY, SODA, WASHING POWDER, A.O.S, OIL SOAP AND OTHER CHEMICALS")
	v.SetDefault("seller.address", "18, PARMANAND'S CHAWL, OPP. VIKRAM MILL, SARASPUR, AHMEDABAD-380018")
	v.SetDefault("seller.gst_no", "24AHUPP1093M1ZO")
	v.SetDefault("seller.pan_no", "AHUPP1093M")
	v.SetDefault("seller.bank_details", "")
	v.SetDefault("seller.terms", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "BILLBOOK_SERVER_PORT",
		"server.read_timeout":  "BILLBOOK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "BILLBOOK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "BILLBOOK_SERVER_ENVIRONMENT",
		"db.host":              "BILLBOOK_DB_HOST",
		"db.port":              "BILLBOOK_DB_PORT",
		"db.user":              "BILLBOOK_DB_USER",
		"db.password":          "BILLBOOK_DB_PASSWORD",
		"db.name":              "BILLBOOK_DB_NAME",
		"db.sslmode":           "BILLBOOK_DB_SSLMODE",
		"db.max_open":          "BILLBOOK_DB_MAX_OPEN",
		"db.max_idle":          "BILLBOOK_DB_MAX_IDLE",
		"jwt.secret":           "BILLBOOK_JWT_SECRET",
		"jwt.access_expiry":    "BILLBOOK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "BILLBOOK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "BILLBOOK_JWT_ISSUER",
		"log.level":            "BILLBOOK_LOG_LEVEL",
		"log.format":           "BILLBOOK_LOG_FORMAT",
		"cors.allowed_origins": "BILLBOOK_CORS_ALLOWED_ORIGINS",
		"s3.region":            "BILLBOOK_S3_REGION",
		"s3.bucket":            "BILLBOOK_S3_BUCKET",
		"s3.endpoint":          "BILLBOOK_S3_ENDPOINT",
		"s3.access_key":        "BILLBOOK_S3_ACCESS_KEY",
		"s3.secret_key":        "BILLBOOK_S3_SECRET_KEY",
		"email.provider":       "BILLBOOK_EMAIL_PROVIDER",
		"email.region":         "BILLBOOK_EMAIL_REGION",
		"email.from_address":   "BILLBOOK_EMAIL_FROM_ADDRESS",
		"email.from_name":      "BILLBOOK_EMAIL_FROM_NAME",
		"seller.name":          "BILLBOOK_SELLER_NAME",
		"seller.tagline":       "BILLBOOK_SELLER_TAGLINE",
		"seller.address":       "BILLBOOK_SELLER_ADDRESS",
		"seller.gst_no":        "BILLBOOK_SELLER_GST_NO",
		"seller.pan_no":        "BILLBOOK_SELLER_PAN_NO",
		"seller.bank_details":  "BILLBOOK_SELLER_BANK_DETAILS",
		"seller.terms":         "BILLBOOK_SELLER_TERMS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLBOOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLBOOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Seller = SellerConfig{
		Name:        v.GetString("seller.name"),
		Tagline:     v.GetString("seller.tagline"),
		Address:     v.GetString("seller.address"),
		GSTNo:       v.GetString("seller.gst_no"),
		PANNo:       v.GetString("seller.pan_no"),
		BankDetails: v.GetString("seller.bank_details"),
		Terms:       v.GetString("seller.terms"),
	}

	return cfg, nil
}
