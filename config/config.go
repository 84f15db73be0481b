package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用程序配置
type Config struct {
	AppEnv   string
	APIPort  int
	LogLevel string
	LogFile  LogFileConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Site     SiteConfig
	Seed     SeedConfig
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // 天
	Compress   bool
}

// DatabaseConfig 数据库配置，Driver 为 mysql 或 sqlite3
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string // sqlite3 数据库文件
}

// RedisConfig Redis配置，Host 为空时不启用缓存
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Enabled 是否配置了Redis
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Provider       string // smtp 或 sendgrid
	Host           string // SMTP服务器地址
	Port           int    // SMTP服务器端口
	Username       string // 邮箱账号
	Password       string // 邮箱密码
	From           string // 发件人
	FromName       string // 发件人名称
	SendGridAPIKey string
	AdminEmail     string // 表单通知的收件人
	QueueSize      int
	Workers        int
}

// AuthConfig 会话令牌配置
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// UploadConfig 上传配置
type UploadConfig struct {
	Dir     string
	MaxSize int64
}

// SiteConfig 站点信息，用于站点地图和默认设置
type SiteConfig struct {
	ServiceName string // 健康检查返回的服务名
	Name        string
	BaseURL     string
	Address     string
	Phone       string
	Email       string
	WhatsApp    string
	MapLocation string
}

// SeedConfig 启动时创建的默认管理员
type SeedConfig struct {
	AdminEmails   []string
	AdminPassword string
}

// Load 从 .env 文件和环境变量加载配置，envFile 不存在时只读环境变量
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "production"),
		APIPort:  getEnvInt("API_PORT", 8001),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile: LogFileConfig{
			Enabled:    getEnvBool("LOG_FILE_ENABLED", false),
			Path:       getEnv("LOG_FILE_PATH", "logs/app.log"),
			MaxSize:    getEnvInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     getEnvInt("LOG_FILE_MAX_AGE", 30),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "mysql"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnvInt("DB_PORT", 3306),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "oda"),
			Path:     getEnv("DB_PATH", "oda.db"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			Provider:       getEnv("EMAIL_PROVIDER", "smtp"),
			Host:           os.Getenv("SMTP_HOST"),
			Port:           getEnvInt("SMTP_PORT", 587),
			Username:       os.Getenv("SMTP_USER"),
			Password:       os.Getenv("SMTP_PASS"),
			From:           getEnv("EMAIL_FROM", "noreply@keeso.gov.tr"),
			FromName:       getEnv("EMAIL_FROM_NAME", "KEESO"),
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			AdminEmail:     getEnv("ADMIN_EMAIL", "admin@keeso.gov.tr"),
			QueueSize:      getEnvInt("EMAIL_QUEUE_SIZE", 100),
			Workers:        getEnvInt("EMAIL_WORKERS", 2),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
			TokenTTL:  getEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			MaxSize: int64(getEnvInt("UPLOAD_MAX_SIZE", 10*1024*1024)),
		},
		Site: SiteConfig{
			ServiceName: getEnv("SERVICE_NAME", "keeso-api"),
			Name:        getEnv("SITE_NAME", "Kayseri Emlakçılar Esnaf ve Sanatkârlar Odası"),
			BaseURL:     strings.TrimRight(getEnv("SITE_BASE_URL", "https://keeso.gov.tr"), "/"),
			Address:     getEnv("SITE_ADDRESS", "Kayseri Esnaf ve Sanatkarlar Odası, Merkez/Kayseri"),
			Phone:       getEnv("SITE_PHONE", "+90 352 XXX XX XX"),
			Email:       getEnv("SITE_EMAIL", "info@keeso.gov.tr"),
			WhatsApp:    getEnv("SITE_WHATSAPP", "+90 5XX XXX XX XX"),
			MapLocation: getEnv("SITE_MAP_LOCATION", "38.7312,35.4787"),
		},
		Seed: SeedConfig{
			AdminEmails:   splitList(os.Getenv("SEED_ADMIN_EMAILS")),
			AdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET_KEY environment variable is not set")
		}
		cfg.Auth.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}

// IsDevelopment 是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// String 返回配置摘要，敏感字段已隐藏
func (c *Config) String() string {
	return fmt.Sprintf("Config{env: %s, port: %d, db: %s, redis: %t, email: %s, auth: ***}",
		c.AppEnv, c.APIPort, c.Database.Driver, c.Redis.Enabled(), c.Email.Provider)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return value
}

func getEnvBool(key string, defaultVal bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return value
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultVal
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
