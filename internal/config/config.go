// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"DriverDesk/internal/constants"
)

// Config хранит все конфигурационные параметры приложения.
// Config holds every configuration value of the application.
type Config struct {
	AppEnv string
	Port   string

	StorageDriver string
	DataDir       string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBName        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	AdminPassword string
	Location      *time.Location
	DefaultLocale string

	LogFile  string
	LogLevel string

	TelegramToken    string
	SupervisorChatID int64

	ShutdownTimeout time.Duration
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Missing optional values are replaced by defaults and a warning is logged.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:        os.Getenv("ENV"),
		Port:          getEnv("PORT", "8080"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", constants.StorageFile)),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:   getEnv("REDIS_PREFIX", "kiosk:"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		DefaultLocale: constants.NormalizeLocale(os.Getenv("DEFAULT_LOCALE"), constants.LocaleFR),
		LogFile:       getEnv("LOG_FILE", "./logs/driverdesk.log"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
	}

	var err error
	if v := os.Getenv("REDIS_DB"); v != "" {
		cfg.RedisDB, err = strconv.Atoi(v)
		if err != nil {
			log.Warnf("LoadConfig: не удалось прочитать REDIS_DB: %v. Установлено в 0.", err)
			cfg.RedisDB = 0
		}
	}

	if v := os.Getenv("SUPERVISOR_CHAT_ID"); v != "" {
		cfg.SupervisorChatID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warnf("LoadConfig: не удалось прочитать SUPERVISOR_CHAT_ID: %v. Уведомления отключены.", err)
			cfg.SupervisorChatID = 0
		}
	}

	cfg.ShutdownTimeout = 15 * time.Second
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, errParse := time.ParseDuration(v)
		if errParse != nil || d <= 0 {
			log.Warnf("LoadConfig: некорректное значение SHUTDOWN_TIMEOUT ('%s'), используется 15s.", v)
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	tz := getEnv("TIMEZONE", "Europe/Paris")
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		log.Warnf("LoadConfig: неизвестная TIMEZONE '%s': %v. Используется локальное время.", tz, err)
		cfg.Location = time.Local
	}

	if cfg.AdminPassword == "" {
		log.Warn("LoadConfig: ADMIN_PASSWORD не установлен, используется пароль по умолчанию.")
		cfg.AdminPassword = "admin"
	}

	switch cfg.StorageDriver {
	case constants.StorageFile, constants.StorageMemory, constants.StorageRedis:
	case constants.StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Error("LoadConfig: STORAGE_DRIVER=postgres, но DATABASE_URL не установлен.")
			break
		}
		parsedURL, parseErr := url.Parse(cfg.DatabaseURL)
		if parseErr != nil {
			log.Errorf("LoadConfig: ошибка парсинга DATABASE_URL: %v", parseErr)
			break
		}
		cfg.DBHost = parsedURL.Hostname()
		cfg.DBPort = parsedURL.Port()
		if cfg.DBPort == "" {
			cfg.DBPort = "5432"
		}
		cfg.DBName = strings.TrimPrefix(parsedURL.Path, "/")
	default:
		log.Warnf("LoadConfig: неизвестный STORAGE_DRIVER '%s', используется '%s'.", cfg.StorageDriver, constants.StorageFile)
		cfg.StorageDriver = constants.StorageFile
	}

	if cfg.TelegramToken != "" && cfg.SupervisorChatID == 0 {
		log.Warn("LoadConfig: TELEGRAM_APITOKEN задан без SUPERVISOR_CHAT_ID, уведомления отключены.")
	}

	log.Info("Конфигурация загружена.")
	return cfg, nil
}

// NotificationsEnabled reports whether the supervisor bot should be started.
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.SupervisorChatID != 0
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}
