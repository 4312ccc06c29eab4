package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var balancesConfigPath string
var balancesTradable bool

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Shows positive account balances (authenticated)",
	Run: func(ccmd *cobra.Command, args []string) {
		exchange := makeTradingExchange(balancesConfigPath)

		fetch := exchange.GetAccountBalances
		if balancesTradable {
			fetch = exchange.GetTradableBalances
		}

		balances, e := fetch()
		if e != nil {
			log.Fatal(e)
		}

		for asset, amount := range balances {
			fmt.Printf("%s: %s\n", asset, amount.AsString())
		}
	},
}

func init() {
	balancesCmd.Flags().StringVarP(&balancesConfigPath, "config", "c", "config.toml", "path to the toml config file")
	balancesCmd.Flags().BoolVar(&balancesTradable, "tradable", false, "show only the amounts free to trade")
}
