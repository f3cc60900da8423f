package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/flashcardgen/internal/config"
	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

// UntypedPolicyFlag overrides dictionary.untyped_policy of the configuration.
type UntypedPolicyFlag dictionary.UntypedPolicy

var (
	_                  pflag.Value = (*UntypedPolicyFlag)(nil)
	allUntypedPolicies             = []dictionary.UntypedPolicy{dictionary.UntypedReject, dictionary.UntypedVerb}
)

func (p *UntypedPolicyFlag) Set(val string) error {
	policy, err := dictionary.ParseUntypedPolicy(val)
	if err != nil {
		return err
	}
	*p = UntypedPolicyFlag(policy)
	return nil
}

func (p UntypedPolicyFlag) String() string {
	return string(p)
}

func (p *UntypedPolicyFlag) Type() string {
	return "UntypedPolicy"
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func resolveUntypedPolicy(cfg *config.Config) (dictionary.UntypedPolicy, error) {
	if untypedPolicy != "" {
		return dictionary.UntypedPolicy(untypedPolicy), nil
	}
	policy, err := dictionary.ParseUntypedPolicy(cfg.Dictionary.UntypedPolicy)
	if err != nil {
		return "", fmt.Errorf("dictionary.ParseUntypedPolicy() > %w", err)
	}
	return policy, nil
}

// loadTable returns the table of the configured source, from the cache when it is fresh.
func loadTable(cfg *config.Config) (*dictionary.Table, error) {
	policy, err := resolveUntypedPolicy(cfg)
	if err != nil {
		return nil, err
	}
	sourceFile := cfg.Dictionary.SourceFile
	info, err := os.Stat(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("os.Stat(%s) > %w. Run `flashcardgen dictionary download` first", sourceFile, err)
	}

	builder := dictionary.NewBuilder(dictionary.NewParser(policy), slog.Default())
	cache := dictionary.NewTableCache(cfg.Dictionary.CacheDirectory)
	table, err := cache.Load(cfg.Dictionary.CacheName(string(policy)), info.ModTime(), func() (*dictionary.Table, error) {
		table, _, err := builder.BuildFile(sourceFile)
		return table, err
	})
	if err != nil {
		if table == nil {
			return nil, fmt.Errorf("cache.Load() > %w", err)
		}
		slog.Default().Warn("failed to write the dictionary cache",
			slog.String("cacheDirectory", cfg.Dictionary.CacheDirectory),
			slog.Any("error", err),
		)
	}
	return table, nil
}
