package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// build flags
var version string
var buildDate string
var gitHash string

const rootShort = "yobit is a command-line client for the Yobit exchange adapter."
const rootLong = `yobit is a command-line client for the Yobit exchange adapter.

It exposes the adapter's normalized view of the exchange: symbol discovery,
tickers, order books, trades, and account balances. Authenticated commands
need a config file with API credentials, see sample_config.toml.`

// RootCmd is the main command for this repo
var RootCmd = &cobra.Command{
	Use:   "yobit",
	Short: rootShort,
	Long:  rootLong,
	Run: func(ccmd *cobra.Command, args []string) {
		e := ccmd.Help()
		if e != nil {
			log.Fatal(e)
		}

		fmt.Println("version:", version)
		fmt.Println("build date:", buildDate)
		fmt.Println("git hash:", gitHash)
	},
}

func init() {
	RootCmd.AddCommand(symbolsCmd)
	RootCmd.AddCommand(tickerCmd)
	RootCmd.AddCommand(depthCmd)
	RootCmd.AddCommand(tradesCmd)
	RootCmd.AddCommand(balancesCmd)
	RootCmd.AddCommand(versionCmd)
}
