package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/cache"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/engine"
)

var market bool

func init() { //nolint: gochecknoinits
	settingCmd.PersistentFlags().BoolVar(&market, "market", false, "Use the marketplace settings")

	settingCmd.AddCommand(settingGetCmd, settingSetCmd)
	rootCmd.AddCommand(settingCmd)
}

var (
	settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Read and write site settings",
	}

	settingGetCmd = &cobra.Command{
		Use:   "get <name> [default]",
		Short: "Print a setting, or the default when it is not stored",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolver()
			if err != nil {
				return err
			}

			def := ""
			if len(args) > 1 {
				def = args[1]
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Get(args[0], def))

			return err
		},
	}

	settingSetCmd = &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := resolver()
			if err != nil {
				return err
			}

			// strict write: the operator wants to know when the store is down
			return r.Repository().Set(args[0], args[1])
		},
	}
)

func resolver() (*setting.Resolver, error) {
	db, err := engine.Open(&cfg)
	if err != nil {
		return nil, err
	}

	// writes go through the cache so the daemon does not serve a stale value
	if err = cache.Init(cfg.Cache); err != nil {
		return nil, err
	}

	if market {
		return setting.NewResolver(cache.Settings(setting.NewMarketStore(db))), nil
	}

	return setting.NewResolver(cache.Settings(setting.NewSiteStore(db))), nil
}
