package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvProd is the only APP_ENV value treated as production.
const EnvProd = "prod"

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type (
	Container struct {
		App    *App
		Token  *Token
		DB     *DB
		HTTP   *HTTP
		Redis  *Redis
		Store  *Store
		ViaCep *ViaCep
	}

	App struct {
		Name string
		Env  string
	}

	// Token with an empty Secret disables bearer auth on /cep.
	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Store struct {
		Driver string
		TTL    time.Duration
	}

	ViaCep struct {
		BaseURL   string
		Timeout   time.Duration
		RateLimit float64
		RateBurst int
	}
)

func (db *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
}

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != EnvProd {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "cep-cache"),
		Env:  getEnv("APP_ENV", "local"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: getEnv("TOKEN_DURATION", "24h"),
	}

	db := &DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	}

	ttl, err := getDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	store := &Store{
		Driver: strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
		TTL:    ttl,
	}

	timeout, err := getDuration("VIACEP_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getFloat("VIACEP_RATE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	rateBurst, err := getInt("VIACEP_RATE_BURST", 1)
	if err != nil {
		return nil, err
	}
	viaCep := &ViaCep{
		BaseURL:   getEnv("VIACEP_BASE_URL", "https://viacep.com.br/ws"),
		Timeout:   timeout,
		RateLimit: rateLimit,
		RateBurst: rateBurst,
	}

	cfg := &Container{
		App:    app,
		Token:  token,
		DB:     db,
		HTTP:   http,
		Redis:  redis,
		Store:  store,
		ViaCep: viaCep,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Container) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.DB.User == "" || c.DB.Name == "" {
			return errors.New("DB_USER and DB_NAME are required for the postgres driver")
		}
	case DriverRedis:
		if c.Redis.Address == "" {
			return errors.New("REDIS_ADDRESS is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.Store.TTL < 0 {
		return errors.New("CACHE_TTL must not be negative")
	}

	u, err := url.Parse(c.ViaCep.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid VIACEP_BASE_URL %q", c.ViaCep.BaseURL)
	}
	if c.ViaCep.Timeout <= 0 {
		return errors.New("VIACEP_TIMEOUT must be positive")
	}
	if c.ViaCep.RateLimit < 0 {
		return errors.New("VIACEP_RATE_LIMIT must not be negative")
	}
	if c.ViaCep.RateLimit > 0 && c.ViaCep.RateBurst < 1 {
		return errors.New("VIACEP_RATE_BURST must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	if value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
