// Package config собирает конфигурацию сервера из .env, окружения и флагов.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

// Поддерживаемые драйверы хранилища.
const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Переменные окружения.
const (
	envPort           = "PORT"
	envAppEnv         = "APP_ENV"
	envLogLevel       = "LOG_LEVEL"
	envAPIPrefix      = "API_PREFIX"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envMaxBodyBytes   = "MAX_BODY_BYTES"
	envJWTSecret      = "JWT_SECRET" //nolint:gosec // Имя переменной, а не секрет
	envTokenTTL       = "TOKEN_TTL"
	envCookieName     = "SESSION_COOKIE_NAME"
	envStorage        = "STORAGE_DRIVER"
	envMongoURI       = "MONGO_URI"
	envMongoDB        = "MONGO_DB"
	envDatabaseDSN    = "DATABASE_DSN"
	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioUser      = "MINIO_USER"
	envMinioPassword  = "MINIO_PASSWORD" //nolint:gosec // Имя переменной, а не секрет
	envMinioBucket    = "MINIO_BUCKET"
	envMinioUseSSL    = "MINIO_USE_SSL"
	envMinioPublicURL = "MINIO_PUBLIC_URL"
	envRedisURL       = "REDIS_URL"
	envBcryptCost     = "BCRYPT_COST"
)

// Значения по умолчанию.
const (
	defaultPort         = 5000
	defaultAppEnv       = "development"
	defaultLogLevel     = "info"
	defaultAPIPrefix    = "/api/users"
	defaultCORSOrigins  = "http://localhost:5173"
	defaultMaxBodyBytes = 50 << 20
	defaultTokenTTL     = 15 * 24 * time.Hour
	defaultCookieName   = "jwt"
	defaultMongoURI     = "mongodb://localhost:27017"
	defaultMongoDB      = "nextflix"
	defaultMinioBucket  = "nextflix-posters"
	defaultBcryptCost   = 10
)

// Config хранит конфигурацию сервера.
type Config struct {
	Port         int
	AppEnv       string
	LogLevel     string
	APIPrefix    string
	CORSOrigins  []string
	MaxBodyBytes int64

	JWTSecret  string
	TokenTTL   time.Duration
	CookieName string
	BcryptCost int

	Storage     string
	MongoURI    string
	MongoDB     string
	DatabaseDSN string

	MinioEndpoint  string
	MinioUser      string
	MinioPassword  string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string

	RedisURL string
}

// IsProduction сообщает, запущен ли сервер в боевом окружении.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// PostersEnabled сообщает, настроено ли хранилище постеров.
func (c *Config) PostersEnabled() bool {
	return c.MinioEndpoint != ""
}

// LoadDotEnv загружает переменные из файлов .env, если они есть.
// Уже заданные переменные окружения не перезаписываются.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("ошибка чтения %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv строит конфигурацию из переменных окружения, подставляя значения по умолчанию.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return fallback
	}

	cfg := &Config{
		AppEnv:         get(envAppEnv, defaultAppEnv),
		LogLevel:       get(envLogLevel, defaultLogLevel),
		APIPrefix:      get(envAPIPrefix, defaultAPIPrefix),
		CORSOrigins:    splitList(get(envCORSOrigins, defaultCORSOrigins)),
		JWTSecret:      get(envJWTSecret, ""),
		CookieName:     get(envCookieName, defaultCookieName),
		Storage:        get(envStorage, StorageMongo),
		MongoURI:       get(envMongoURI, defaultMongoURI),
		MongoDB:        get(envMongoDB, defaultMongoDB),
		DatabaseDSN:    get(envDatabaseDSN, ""),
		MinioEndpoint:  get(envMinioEndpoint, ""),
		MinioUser:      get(envMinioUser, ""),
		MinioPassword:  get(envMinioPassword, ""),
		MinioBucket:    get(envMinioBucket, defaultMinioBucket),
		MinioPublicURL: get(envMinioPublicURL, ""),
		RedisURL:       get(envRedisURL, ""),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(get(envPort, strconv.Itoa(defaultPort))); err != nil {
		return nil, fmt.Errorf("некорректное значение %s: %w", envPort, err)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(get(envMaxBodyBytes, strconv.Itoa(defaultMaxBodyBytes)), 10, 64); err != nil {
		return nil, fmt.Errorf("некорректное значение %s: %w", envMaxBodyBytes, err)
	}
	if cfg.TokenTTL, err = time.ParseDuration(get(envTokenTTL, defaultTokenTTL.String())); err != nil {
		return nil, fmt.Errorf("некорректное значение %s: %w", envTokenTTL, err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(get(envBcryptCost, strconv.Itoa(defaultBcryptCost))); err != nil {
		return nil, fmt.Errorf("некорректное значение %s: %w", envBcryptCost, err)
	}
	if cfg.MinioUseSSL, err = strconv.ParseBool(get(envMinioUseSSL, "false")); err != nil {
		return nil, fmt.Errorf("некорректное значение %s: %w", envMinioUseSSL, err)
	}

	return cfg, nil
}

// AddFlags регистрирует флаги командной строки. Текущие значения cfg
// становятся значениями по умолчанию, поэтому явно заданный флаг
// перекрывает окружение.
func AddFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Порт HTTP-сервера (env: "+envPort+")")
	fs.StringVar(&cfg.AppEnv, "env", cfg.AppEnv, "Окружение: development или production (env: "+envAppEnv+")")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Уровень логирования (env: "+envLogLevel+")")
	fs.StringVar(&cfg.APIPrefix, "api-prefix", cfg.APIPrefix, "Префикс маршрутов API (env: "+envAPIPrefix+")")
	fs.StringSliceVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins,
		"Разрешенные CORS origin через запятую (env: "+envCORSOrigins+")")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes,
		"Максимальный размер тела запроса (env: "+envMaxBodyBytes+")")

	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Секрет подписи токенов (env: "+envJWTSecret+")")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Срок жизни сессии (env: "+envTokenTTL+")")
	fs.StringVar(&cfg.CookieName, "cookie-name", cfg.CookieName, "Имя cookie сессии (env: "+envCookieName+")")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "Стоимость bcrypt (env: "+envBcryptCost+")")

	fs.StringVar(&cfg.Storage, "storage", cfg.Storage,
		"Хранилище: mongo, postgres или memory (env: "+envStorage+")")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "Адрес MongoDB (env: "+envMongoURI+")")
	fs.StringVar(&cfg.MongoDB, "mongo-db", cfg.MongoDB, "База MongoDB (env: "+envMongoDB+")")
	fs.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN,
		"Строка подключения к PostgreSQL (env: "+envDatabaseDSN+")")

	fs.StringVar(&cfg.MinioEndpoint, "minio-endpoint", cfg.MinioEndpoint,
		"Адрес MinIO, пусто - загрузка постеров отключена (env: "+envMinioEndpoint+")")
	fs.StringVar(&cfg.MinioUser, "minio-user", cfg.MinioUser, "Пользователь MinIO (env: "+envMinioUser+")")
	fs.StringVar(&cfg.MinioPassword, "minio-password", cfg.MinioPassword, "Пароль MinIO (env: "+envMinioPassword+")")
	fs.StringVar(&cfg.MinioBucket, "minio-bucket", cfg.MinioBucket, "Бакет для постеров (env: "+envMinioBucket+")")
	fs.BoolVar(&cfg.MinioUseSSL, "minio-use-ssl", cfg.MinioUseSSL, "HTTPS для MinIO (env: "+envMinioUseSSL+")")
	fs.StringVar(&cfg.MinioPublicURL, "minio-public-url", cfg.MinioPublicURL,
		"Публичный адрес постеров (env: "+envMinioPublicURL+")")

	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL,
		"Redis для отзыва токенов, пусто - отзыв отключен (env: "+envRedisURL+")")
}

// Validate проверяет согласованность конфигурации.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("не задан секрет токенов (--jwt-secret или %s)", envJWTSecret))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("срок жизни токена должен быть положительным"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("некорректный порт: %d", c.Port))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("стоимость bcrypt должна быть в диапазоне %d..%d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	switch c.Storage {
	case StorageMongo:
		if c.MongoURI == "" {
			errs = append(errs, fmt.Errorf("не задан адрес MongoDB (--mongo-uri или %s)", envMongoURI))
		}
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, fmt.Errorf("не указана строка подключения к БД (--database-dsn или %s)", envDatabaseDSN))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("неизвестный драйвер хранилища: %q", c.Storage))
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		errs = append(errs, fmt.Errorf("префикс API должен начинаться с '/': %q", c.APIPrefix))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
