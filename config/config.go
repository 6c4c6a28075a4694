package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	SMTP   SMTPConfig
	Ledger LedgerConfig
	Upload UploadConfig
	Outbox OutboxConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LedgerConfig holds the blockchain ledger connection settings. The ledger is
// optional: when PrivateKey or ContractAddress is empty the adapter runs
// disabled and certificate admission proceeds without anchoring.
type LedgerConfig struct {
	RPCURL          string
	PrivateKey      string
	ContractAddress string
	Timeout         time.Duration
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

type OutboxConfig struct {
	PollInterval time.Duration
	MaxAttempts  int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	ledgerTimeout, err := time.ParseDuration(viper.GetString("LEDGER_TIMEOUT"))
	if err != nil {
		ledgerTimeout = 10 * time.Second
	}

	pollInterval, err := time.ParseDuration(viper.GetString("OUTBOX_POLL_INTERVAL"))
	if err != nil {
		pollInterval = 15 * time.Second
	}

	maxFileSize := viper.GetInt64("UPLOAD_MAX_FILE_SIZE")
	if maxFileSize <= 0 {
		maxFileSize = 5 * 1024 * 1024
	}

	maxAttempts := viper.GetInt("OUTBOX_MAX_ATTEMPTS")
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/certificates"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Ledger: LedgerConfig{
			RPCURL:          viper.GetString("LEDGER_RPC_URL"),
			PrivateKey:      viper.GetString("LEDGER_PRIVATE_KEY"),
			ContractAddress: viper.GetString("LEDGER_CONTRACT_ADDRESS"),
			Timeout:         ledgerTimeout,
		},
		Upload: UploadConfig{
			Dir:         uploadDir,
			MaxFileSize: maxFileSize,
		},
		Outbox: OutboxConfig{
			PollInterval: pollInterval,
			MaxAttempts:  maxAttempts,
		},
	}

	return config, nil
}
