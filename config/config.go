package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Storage StorageConfig `mapstructure:"storage"`
	Payment PaymentConfig `mapstructure:"payment"`
	Chat    ChatConfig    `mapstructure:"chat"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwt_secret"`
	TokenExpireHours int    `mapstructure:"token_expire_hours"`
}

type StorageConfig struct {
	Path string `mapstructure:"path"`
	// 本地存储容量上限（字节），对齐浏览器 localStorage 的配额
	MaxBytes int64 `mapstructure:"max_bytes"`
}

type PaymentConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	PollIntervalSec int    `mapstructure:"poll_interval_sec"`
	PollTimeoutSec  int    `mapstructure:"poll_timeout_sec"`
}

type ChatConfig struct {
	// 会话列表兜底轮询间隔（秒），推送通道失效时的保底刷新
	PollIntervalSec int `mapstructure:"poll_interval_sec"`
}

// LoadConfig 解析配置文件
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %v", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %v", err)
	}

	return &cfg, nil
}

func (c PaymentConfig) PollInterval() time.Duration {
	if c.PollIntervalSec <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.PollIntervalSec) * time.Second
}

func (c PaymentConfig) PollTimeout() time.Duration {
	if c.PollTimeoutSec <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.PollTimeoutSec) * time.Second
}

func (c ChatConfig) PollInterval() time.Duration {
	if c.PollIntervalSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.PollIntervalSec) * time.Second
}
