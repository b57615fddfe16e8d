package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prediqt/sdk-go/core/types"
)

func newSyncCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Short:   "Sync the PredIQt bank",
		Long:    "Submits the bank sync action once, or every --interval until interrupted.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := a.prediqtClient(ctx)
			if err != nil {
				return err
			}

			syncOnce := func() error {
				result, err := client.SyncBank(ctx)
				if err != nil {
					return err
				}
				a.logger.Info("bank synced", zap.String("transaction_id", result.TransactionID))
				return writeJSON(cmd.OutOrStdout(), result)
			}

			if interval <= 0 {
				return syncOnce()
			}

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				// A failed sync is logged and retried on the next tick only.
				if err := syncOnce(); err != nil {
					a.logger.Error("bank sync failed", zap.Error(err))
				}
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "repeat the sync at this interval (0 runs once)")
	return cmd
}

func newMarketsCmd(a *app) *cobra.Command {
	var (
		input       types.ListMarketsInput
		filterName  string
		filterValue string
	)

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List markets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.graphClient()
			if err != nil {
				return err
			}
			if filterName != "" {
				input.Filter = &types.FilterParam{ParamName: filterName, ParamValue: filterValue}
			}
			markets, err := client.ListMarkets(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), markets)
		},
	}
	cmd.Flags().IntVar(&input.Skip, "skip", 0, "number of markets to skip")
	cmd.Flags().IntVar(&input.Count, "count", 25, "number of markets to return")
	cmd.Flags().StringVar(&input.Creator, "creator", "", "only markets created by this account")
	cmd.Flags().BoolVar(&input.ExcludeInvalidIpfs, "exclude-invalid-ipfs", true, "skip markets with unreadable IPFS data")
	cmd.Flags().StringVar(&filterName, "filter", "", "name of an extra filter argument, e.g. category")
	cmd.Flags().StringVar(&filterValue, "filter-value", "", "value of the --filter argument")
	return cmd
}

func newMarketCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "market <id>",
		Short: "Show one market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return types.InvalidArgumentf("market id %q: %v", args[0], err)
			}
			client, err := a.graphClient()
			if err != nil {
				return err
			}
			market, err := client.GetMarket(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), market)
		},
	}
}

func newChainInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chain-info",
		Short: "Show how far the indexer is behind the chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.graphClient()
			if err != nil {
				return err
			}
			info, err := client.GetChainInfo(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}

