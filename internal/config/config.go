package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

type DictionaryConfig struct {
	SourceFile      string `mapstructure:"source_file" validate:"required"`
	CacheDirectory  string `mapstructure:"cache_directory"`
	UntypedPolicy   string `mapstructure:"untyped_policy" validate:"oneof=reject verb"`
	DownloadURL     string `mapstructure:"download_url" validate:"omitempty,url"`
	DownloadRetries uint   `mapstructure:"download_retries" validate:"lte=10"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type TemplatesConfig struct {
	CardNotebookTemplate string `mapstructure:"card_notebook_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	CardDirectory string `mapstructure:"card_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashcardgen")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.source_file", filepath.Join("dictionaries", "de-en.txt"))
	v.SetDefault("dictionary.cache_directory", filepath.Join("dictionaries", "cache"))
	v.SetDefault("dictionary.untyped_policy", "reject")
	v.SetDefault("dictionary.download_url", "https://ftp.tu-chemnitz.de/pub/Local/urz/ding/de-en/de-en.txt.gz")
	v.SetDefault("dictionary.download_retries", 3)
	// Template is optional - if not specified, the embedded template is used
	v.SetDefault("templates.card_notebook_template", "")
	v.SetDefault("outputs.card_directory", filepath.Join("outputs", "cards"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "local")
	v.SetDefault("database.username", "user")

	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// CacheName returns the cache entry name of the dictionary source built
// with the given untyped policy.
func (c DictionaryConfig) CacheName(policy string) string {
	base := strings.TrimSuffix(filepath.Base(c.SourceFile), filepath.Ext(c.SourceFile))
	return base + "." + policy
}
