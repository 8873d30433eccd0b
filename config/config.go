package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Auth         AuthConfig         `yaml:"auth"`
	Registration RegistrationConfig `yaml:"registration"`
	News         NewsConfig         `yaml:"news"`
	Worker       WorkerConfig       `yaml:"worker"`
}

type HTTPConfig struct {
	Address     string `yaml:"address"`
	OpenAPIFile string `yaml:"openapi_file"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	RegistrationTopic  string   `yaml:"registration_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"`
	TokenTTLMins int    `yaml:"token_ttl_minutes"`
}

type RegistrationConfig struct {
	// StandardSlots is the ordered list of bookable time labels offered
	// for any training day. Labels are compared verbatim against stored
	// registrations, no normalization.
	StandardSlots []string `yaml:"standard_slots"`
	SlotsCacheTTL int      `yaml:"slots_cache_ttl_seconds"`
}

type NewsConfig struct {
	CacheTTL int `yaml:"cache_ttl_seconds"`
}

type WorkerConfig struct {
	StaleSweepMinutes int `yaml:"stale_sweep_minutes"`
	StalePendingDays  int `yaml:"stale_pending_days"`
}

// LoadConfig reads the YAML file at path. A .env file in the working
// directory is loaded first when present, and secrets may be overridden
// from the environment.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if len(cfg.Registration.StandardSlots) == 0 {
		cfg.Registration.StandardSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}
	}

	return &cfg, nil
}
