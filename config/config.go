package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	Database        string        `yaml:"database"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	Database int           `yaml:"database"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type JWTConfig struct {
	PrivateKeyPath string        `yaml:"private_key_path"`
	PublicKeyPath  string        `yaml:"public_key_path"`
	TTL            time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Server     ServerConfig   `yaml:"server"`
	Database   DatabaseConfig `yaml:"database"`
	Redis      RedisConfig    `yaml:"redis"`
	JWT        JWTConfig      `yaml:"jwt"`
	Log        LogConfig      `yaml:"log"`
	BcryptCost int            `yaml:"bcrypt_cost"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":3000",
			Mode: "release",
		},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "127.0.0.1",
			Port:            "3306",
			Database:        "storefront",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			LogLevel:        "warn",
		},
		Redis: RedisConfig{
			Addr:     "127.0.0.1:6379",
			CacheTTL: 10 * time.Minute,
		},
		JWT: JWTConfig{
			TTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the YAML file on top of Default, then applies a .env
// file (if any) and environment overrides.
func LoadConfig(filename string) (Config, error) {
	config := Default()

	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	// .env is optional
	_ = godotenv.Load()
	applyEnv(&config)

	return config, nil
}

func applyEnv(config *Config) {
	config.Server.Addr = getEnv("SERVER_ADDR", config.Server.Addr)
	config.Database.Driver = getEnv("DATABASE_DRIVER", config.Database.Driver)
	config.Database.DSN = getEnv("DATABASE_DSN", config.Database.DSN)
	config.Database.Host = getEnv("DATABASE_HOST", config.Database.Host)
	config.Database.Password = getEnv("DATABASE_PASSWORD", config.Database.Password)
	config.Redis.Addr = getEnv("REDIS_ADDR", config.Redis.Addr)
	config.Redis.Password = getEnv("REDIS_PASSWORD", config.Redis.Password)
	config.Redis.Enabled = getEnvBool("REDIS_ENABLED", config.Redis.Enabled)
	config.JWT.PrivateKeyPath = getEnv("JWT_PRIVATE_KEY_PATH", config.JWT.PrivateKeyPath)
	config.JWT.PublicKeyPath = getEnv("JWT_PUBLIC_KEY_PATH", config.JWT.PublicKeyPath)
	config.Log.Level = getEnv("LOG_LEVEL", config.Log.Level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
