package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Redis  RedisConfig
	Log    LogConfig
	CORS   CORSConfig
	GST    GSTConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
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

// S3Config holds AWS S3 settings. An empty bucket disables the return archive.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// RedisConfig holds the return cache settings. An empty address disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GSTConfig holds the statutory parameters used by the calculator and the return assemblers.
type GSTConfig struct {
	ValidRates       []float64 `mapstructure:"valid_rates"`
	B2CLThreshold    float64   `mapstructure:"b2cl_threshold"`
	LateFeePerDay    float64   `mapstructure:"late_fee_per_day"`
	LateFeeCapPerAct float64   `mapstructure:"late_fee_cap_per_act"`
	DueDay           int       `mapstructure:"due_day"`
	Timezone         string    `mapstructure:"timezone"`
}

// Location loads the configured filing timezone.
func (g *GSTConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", g.Timezone, err)
	}
	return loc, nil
}

func parseRates(s string) ([]float64, error) {
	var rates []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing gst.valid_rates entry %q: %w", part, err)
		}
		rates = append(rates, r)
	}
	return rates, nil
}

// Load reads configuration from environment variables with the GSTR_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstreturns")
	v.SetDefault("db.password", "gstreturns_secret")
	v.SetDefault("db.name", "gstreturns_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Redis defaults
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")

	// Log defaults
	v.SetDefault("log.level", "debug")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// GST defaults
	v.SetDefault("gst.valid_rates", "0,0.1,0.25,1.5,3,5,6,12,18,28,40")
	v.SetDefault("gst.b2cl_threshold", 250000)
	v.SetDefault("gst.late_fee_per_day", 50)
	v.SetDefault("gst.late_fee_cap_per_act", 5000)
	v.SetDefault("gst.due_day", 20)
	v.SetDefault("gst.timezone", "Asia/Kolkata")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "GSTR_SERVER_PORT",
		"server.read_timeout":      "GSTR_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "GSTR_SERVER_WRITE_TIMEOUT",
		"server.environment":       "GSTR_SERVER_ENVIRONMENT",
		"db.host":                  "GSTR_DB_HOST",
		"db.port":                  "GSTR_DB_PORT",
		"db.user":                  "GSTR_DB_USER",
		"db.password":              "GSTR_DB_PASSWORD",
		"db.name":                  "GSTR_DB_NAME",
		"db.sslmode":               "GSTR_DB_SSLMODE",
		"db.max_open":              "GSTR_DB_MAX_OPEN",
		"db.max_idle":              "GSTR_DB_MAX_IDLE",
		"s3.region":                "GSTR_S3_REGION",
		"s3.bucket":                "GSTR_S3_BUCKET",
		"s3.endpoint":              "GSTR_S3_ENDPOINT",
		"s3.access_key":            "GSTR_S3_ACCESS_KEY",
		"s3.secret_key":            "GSTR_S3_SECRET_KEY",
		"redis.addr":               "GSTR_REDIS_ADDR",
		"redis.password":           "GSTR_REDIS_PASSWORD",
		"redis.db":                 "GSTR_REDIS_DB",
		"redis.ttl":                "GSTR_REDIS_TTL",
		"log.level":                "GSTR_LOG_LEVEL",
		"cors.allowed_origins":     "GSTR_CORS_ALLOWED_ORIGINS",
		"gst.valid_rates":          "GSTR_GST_VALID_RATES",
		"gst.b2cl_threshold":       "GSTR_GST_B2CL_THRESHOLD",
		"gst.late_fee_per_day":     "GSTR_GST_LATE_FEE_PER_DAY",
		"gst.late_fee_cap_per_act": "GSTR_GST_LATE_FEE_CAP_PER_ACT",
		"gst.due_day":              "GSTR_GST_DUE_DAY",
		"gst.timezone":             "GSTR_GST_TIMEZONE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTR_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTR_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

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

	rates, err := parseRates(v.GetString("gst.valid_rates"))
	if err != nil {
		return nil, err
	}
	cfg.GST = GSTConfig{
		ValidRates:       rates,
		B2CLThreshold:    v.GetFloat64("gst.b2cl_threshold"),
		LateFeePerDay:    v.GetFloat64("gst.late_fee_per_day"),
		LateFeeCapPerAct: v.GetFloat64("gst.late_fee_cap_per_act"),
		DueDay:           v.GetInt("gst.due_day"),
		Timezone:         v.GetString("gst.timezone"),
	}
	if cfg.GST.DueDay < 1 || cfg.GST.DueDay > 28 {
		return nil, fmt.Errorf("gst.due_day must be between 1 and 28, got %d", cfg.GST.DueDay)
	}

	return cfg, nil
}
