package main

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/prediqt/sdk-go/core/types"
)

const (
	cfgConfigFile = "config"
	cfgNode       = "node"
	cfgGraphURL   = "graph-url"
	cfgActor      = "actor"
	cfgPermission = "permission"
	cfgKey        = "key"
	cfgDebug      = "debug"

	envPrefix   = "PREDIQT"
	defaultNode = "https://api-kylin.eoslaomao.com"
)

// config is the resolved CLI configuration. Flags win over the environment,
// which wins over the config file.
type config struct {
	Node       string
	GraphURL   string
	Actor      string
	Permission string
	Key        string
	Debug      bool
}

// Authorization is the signer list of the configured actor, or an empty list
// when no actor is set.
func (c config) Authorization() []types.Authorization {
	if c.Actor == "" {
		return []types.Authorization{}
	}
	return []types.Authorization{{Actor: c.Actor, Permission: c.Permission}}
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String(cfgConfigFile, "", "config file (yaml, json or toml)")
	flags.String(cfgNode, defaultNode, "chain API node address")
	flags.String(cfgGraphURL, "", "GraphQL endpoint")
	flags.String(cfgActor, "", "account signing transactions")
	flags.String(cfgPermission, "active", "permission of the signing account")
	flags.Bool(cfgDebug, false, "enable debug logging")
}

// newViper binds flags and PREDIQT_* environment variables. The signing key
// is only read from the environment or the config file, never from a flag.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// loadConfig loads .env files, then the config file when one is set.
func loadConfig(v *viper.Viper, envFiles ...string) (config, error) {
	// Missing .env files are fine.
	_ = godotenv.Load(envFiles...)

	if file := v.GetString(cfgConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, types.InvalidArgumentf("config file %s: %v", file, err)
		}
	}

	cfg := config{
		Node:       v.GetString(cfgNode),
		GraphURL:   v.GetString(cfgGraphURL),
		Actor:      v.GetString(cfgActor),
		Permission: v.GetString(cfgPermission),
		Key:        v.GetString(cfgKey),
		Debug:      v.GetBool(cfgDebug),
	}
	if cfg.Actor != "" && cfg.Permission == "" {
		return config{}, types.InvalidArgumentf("permission is required with --actor")
	}
	return cfg, nil
}
