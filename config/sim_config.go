package config

import (
	"net"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
}

// LoggingConfig selects the log level. Console false switches to JSON lines on stderr.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type SimConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	MongoDB MongoDBConfig `mapstructure:"mongodb"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Token   TokenConfig   `mapstructure:"token"`
}

type MongoDBConfig struct {
	// Enable switches the run history from the in-memory store to MongoDB.
	Enable   bool        `mapstructure:"enable"`
	Database string      `mapstructure:"database"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

// URI builds a connection string for the configured server. The database goes into the path,
// which is where the migration driver reads its target from.
func (c MongoDBConfig) URI(database string) string {
	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   "/" + database,
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password.Value())
		u.RawQuery = "authSource=admin"
	}
	return u.String()
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
	TTLSec   int `mapstructure:"ttl_sec"`
}

// LimitsConfig bounds the size of a single simulation request. Zero disables a bound.
type LimitsConfig struct {
	MaxProcesses int `mapstructure:"max_processes"`
	MaxArrival   int `mapstructure:"max_arrival"`
	MaxBurst     int `mapstructure:"max_burst"`
}

type TokenConfig struct {
	Enable           bool        `mapstructure:"enable"`
	RsaPrivateKeyPem SecretValue `mapstructure:"rsa_private_key_pem"`
	TokenDurationHr  int         `mapstructure:"token_duration_hr"` // in hours
}

var (
	simCfg *SimConfig
)

func GetConfig() *SimConfig {
	return simCfg
}

func InitSimConfig(configName string, configPath string) (SimConfig, error) {
	var cfg SimConfig
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "sim_config"
	}
	viper.AddConfigPath(GetAbsPath("config"))
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("PRIOSIM")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := viper.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	simCfg = &cfg
	return cfg, nil
}

// GetAbsPath returns the absolute path by joining the given paths with the project root directory
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filePath)
	rootPath := filepath.Join(basePath, "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
