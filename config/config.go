package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Tenancy  TenancyConfig  `mapstructure:"tenancy"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Media    MediaConfig    `mapstructure:"media"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig selects the gorm driver. Type is "mysql" or "sqlite";
// sqlite keeps local development and tests free of a database server.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// DSN returns the MySQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.DBName)
}

// TenancyConfig is the explicit tenant-resolution policy: which subdomain is
// reserved for the back-office, and which tenant slug anonymous requests
// fall back to when no subdomain resolves.
type TenancyConfig struct {
	BaseDomain        string `mapstructure:"base_domain"`
	AdminSubdomain    string `mapstructure:"admin_subdomain"`
	DefaultTenantSlug string `mapstructure:"default_tenant_slug"`
}

type JWTConfig struct {
	Secret   string        `mapstructure:"secret"`
	Duration time.Duration `mapstructure:"duration"`
}

// MediaConfig points at the external media host's unsigned upload endpoint.
type MediaConfig struct {
	UploadURL    string        `mapstructure:"upload_url"`
	UploadPreset string        `mapstructure:"upload_preset"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// SeedConfig controls first-run seeding of the default tenant and the
// initial super admin account.
type SeedConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
	TenantName    string `mapstructure:"tenant_name"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "guest-companion")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.dbname", "guest_companion.db")

	v.SetDefault("tenancy.base_domain", "localhost")
	v.SetDefault("tenancy.admin_subdomain", "admin")
	v.SetDefault("tenancy.default_tenant_slug", "default")

	v.SetDefault("jwt.duration", 24*time.Hour)

	v.SetDefault("media.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)

	v.SetDefault("seed.admin_email", "admin@hotel.local")
	v.SetDefault("seed.admin_password", "admin123")
	v.SetDefault("seed.tenant_name", "Default Hotel")
}

// Load reads configuration from an optional config file plus environment
// variables prefixed with GC_ (GC_DATABASE_TYPE, GC_JWT_SECRET, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (GC_JWT_SECRET)")
	}
	if len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if cfg.Tenancy.DefaultTenantSlug == "" {
		return nil, fmt.Errorf("tenancy default_tenant_slug is required")
	}

	return &cfg, nil
}
