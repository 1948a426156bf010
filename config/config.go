package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CodMac/attr-lens/model"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "ATTRLENS"
	ConfigName = "attrlens"
)

// Config attrlens 的完整运行配置
type Config struct {
	Lang       string           `mapstructure:"lang"`
	Filter     string           `mapstructure:"filter"`
	Jobs       int              `mapstructure:"jobs"`
	Format     string           `mapstructure:"format"`
	Out        string           `mapstructure:"out"`
	Verbose    bool             `mapstructure:"verbose"`
	Convention model.Convention `mapstructure:"convention"`
	Server     ServerConfig     `mapstructure:"server"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// New 带默认值与环境变量映射的 viper 实例 (ATTRLENS_CONVENTION_ACCESSOR -> convention.accessor)
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("lang", "java")
	v.SetDefault("filter", "")
	v.SetDefault("jobs", 4)
	v.SetDefault("format", "text")
	v.SetDefault("out", "")
	v.SetDefault("verbose", false)
	v.SetDefault("convention.accessor", model.DefaultAccessor)
	v.SetDefault("convention.wrapper_prefix", model.DefaultWrapperPrefix)
	v.SetDefault("convention.optional_suffix", model.DefaultOptionalSuffix)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("cache.size", 256)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv 将 .env 载入进程环境，已存在的环境变量优先；文件缺失不算错误
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load 读取配置文件 (显式指定或当前目录下的 attrlens.yaml) 并解码、校验
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Lang == "" {
		return fmt.Errorf("config: lang must not be empty")
	}
	if c.Jobs <= 0 {
		return fmt.Errorf("config: jobs must be positive, got %d", c.Jobs)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("config: cache.size must be positive, got %d", c.Cache.Size)
	}
	return c.Convention.Validate()
}
