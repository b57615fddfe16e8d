package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/prediqt/sdk-go/core/graphclient"
	"github.com/prediqt/sdk-go/core/logging"
	"github.com/prediqt/sdk-go/core/prediqtclient"
	"github.com/prediqt/sdk-go/core/types"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config
	logger *zap.Logger
}

// newRootCmd builds the command tree. Configuration is resolved before any
// subcommand runs.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "prediqt",
		Short:         "PredIQt market operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	registerFlags(rootCmd.PersistentFlags())

	v, err := newViper(rootCmd.PersistentFlags())
	if err != nil {
		// Flag names are static; binding cannot fail at runtime.
		panic(err)
	}
	a.v = v

	rootCmd.AddCommand(
		newSyncCmd(a),
		newMarketsCmd(a),
		newMarketCmd(a),
		newChainInfoCmd(a),
	)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	a.logger = logger
	logging.SetLogger(logger)
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapCfg.Build()
}

// prediqtClient creates a transaction client signing with PREDIQT_KEY as the
// configured actor.
func (a *app) prediqtClient(ctx context.Context) (*prediqtclient.Client, error) {
	if a.cfg.Key == "" {
		return nil, types.InvalidArgumentf("%s_KEY is required", envPrefix)
	}
	if a.cfg.Actor == "" {
		return nil, types.InvalidArgumentf("--actor is required")
	}
	return prediqtclient.NewClient(ctx, a.cfg.Node,
		prediqtclient.WithSigningKeys(a.cfg.Key),
		prediqtclient.WithAuthorization(a.cfg.Authorization()),
		prediqtclient.WithLogger(a.logger),
	)
}

func (a *app) graphClient() (*graphclient.Client, error) {
	if a.cfg.GraphURL == "" {
		return nil, types.InvalidArgumentf("--graph-url is required")
	}
	return graphclient.NewClient(a.cfg.GraphURL, graphclient.WithLogger(a.logger))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
