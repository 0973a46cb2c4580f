package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Salon      SalonConfig      `toml:"salon"`
	TableStore TableStoreConfig `toml:"tablestore"`
	SMS        SMSConfig        `toml:"sms"`
	Jobs       JobsConfig       `toml:"jobs"`
	Queue      QueueConfig      `toml:"queue"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки Redis (блокировки расписания)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	LockTTL  int    `toml:"lock_ttl"` // секунды
}

// SalonConfig параметры филиала
type SalonConfig struct {
	BranchCode   string `toml:"branch_code"`   // префикс номера чека, например LushwaysBarsha
	LocationName string `toml:"location_name"` // название филиала в журнале продаж
	Timezone     string `toml:"timezone"`
}

// TimeLocation возвращает часовой пояс филиала
func (s SalonConfig) TimeLocation() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// TableStoreConfig настройки удалённого табличного хранилища (Supabase)
type TableStoreConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Key     string `toml:"key"`
}

// SMSConfig настройки отправки SMS через Twilio
type SMSConfig struct {
	Enabled    bool   `toml:"enabled"`
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	FromNumber string `toml:"from_number"`
}

// JobsConfig расписание фоновых задач (cron выражения)
type JobsConfig struct {
	Enabled            bool   `toml:"enabled"`
	ReminderSchedule   string `toml:"reminder_schedule"`
	TipsExportSchedule string `toml:"tips_export_schedule"`
	ExportDir          string `toml:"export_dir"`
}

// QueueConfig настройки очереди фоновых задач
type QueueConfig struct {
	Capacity   int `toml:"capacity"`
	JobTimeout int `toml:"job_timeout"` // секунды
}

// Load читает конфигурацию из TOML файла
// Секреты можно переопределить через переменные окружения (или .env файл)
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if _, err := c.Salon.TimeLocation(); err != nil {
		errs = append(errs, fmt.Errorf("salon.timezone is invalid: %w", err))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.TableStore.Enabled && (c.TableStore.URL == "" || c.TableStore.Key == "") {
		errs = append(errs, errors.New("tablestore.url and tablestore.key are required when tablestore is enabled"))
	}
	if c.SMS.Enabled && (c.SMS.AccountSID == "" || c.SMS.AuthToken == "" || c.SMS.FromNumber == "") {
		errs = append(errs, errors.New("sms.account_sid, sms.auth_token and sms.from_number are required when sms is enabled"))
	}

	return errors.Join(errs...)
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideString(&cfg.TableStore.Key, "SUPABASE_KEY")
	overrideString(&cfg.SMS.AccountSID, "TWILIO_ACCOUNT_SID")
	overrideString(&cfg.SMS.AuthToken, "TWILIO_AUTH_TOKEN")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	setDefault(&cfg.Server.HTTPPort, 8080)
	setDefault(&cfg.Server.ReadTimeout, 15)
	setDefault(&cfg.Server.WriteTimeout, 15)
	setDefault(&cfg.Server.IdleTimeout, 60)
	setDefault(&cfg.Server.ShutdownTimeout, 10)

	setDefault(&cfg.Database.Port, 5432)
	setDefault(&cfg.Database.MaxOpenConns, 25)
	setDefault(&cfg.Database.MaxIdleConns, 5)
	setDefault(&cfg.Database.ConnMaxLifetime, 300)
	setDefault(&cfg.Database.SSLMode, "disable")

	setDefault(&cfg.Logs.Level, "info")

	setDefault(&cfg.Metrics.Path, "/metrics")
	setDefault(&cfg.Metrics.ServiceName, "salon_calendar")

	setDefault(&cfg.Redis.LockTTL, 5)

	setDefault(&cfg.Salon.BranchCode, "LushwaysBarsha")
	setDefault(&cfg.Salon.LocationName, "Lushways Salon - Barsha")
	setDefault(&cfg.Salon.Timezone, "Asia/Dubai")

	setDefault(&cfg.Jobs.ReminderSchedule, "0 9 * * *")
	setDefault(&cfg.Jobs.TipsExportSchedule, "55 23 * * *")
	setDefault(&cfg.Jobs.ExportDir, "exports")

	setDefault(&cfg.Queue.Capacity, 100)
	setDefault(&cfg.Queue.JobTimeout, 10)
}

func setDefault[T comparable](dst *T, value T) {
	var zero T
	if *dst == zero {
		*dst = value
	}
}
