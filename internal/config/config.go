package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sheav-web/-math-bot-telegram-two/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	BotToken  string          `mapstructure:"bot_token" validate:"required"`
	Store     StoreConfig     `mapstructure:"store" validate:"required"`
	DB        DBConfig        `mapstructure:"db"`
	KeepAlive KeepAliveConfig `mapstructure:"keepalive"`
	Env       string          `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	SessionTTL    time.Duration `mapstructure:"session_ttl" validate:"min=1"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"min=1"`
}

type StoreConfig struct {
	Kind string `mapstructure:"kind" validate:"oneof=file postgres"`
	Path string `mapstructure:"path"`
}

type KeepAliveConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Addr      string        `mapstructure:"addr"`
	TargetURL string        `mapstructure:"target_url"`
	Interval  time.Duration `mapstructure:"interval"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

func Init() (*Config, error) {
	// Local development keeps secrets in .env; missing file is fine.
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	binds := map[string]string{
		"bot_token":            "BOT_TOKEN",
		"store.path":           "STORE_PATH",
		"db.conn.host":         "DB_HOST",
		"db.conn.port":         "DB_PORT",
		"db.conn.user":         "DB_USER",
		"db.conn.password":     "DB_PASSWORD",
		"db.conn.name":         "DB_NAME",
		"db.conn.ssl":          "DB_SSL",
		"keepalive.target_url": "KEEPALIVE_URL",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
