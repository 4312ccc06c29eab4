package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var tickerCmd = &cobra.Command{
	Use:   "ticker [symbol]",
	Short: "Shows the ticker for one pair",
	Args:  cobra.ExactArgs(1),
	Run: func(ccmd *cobra.Command, args []string) {
		ticker, e := makePublicExchange().GetTicker(args[0])
		if e != nil {
			log.Fatal(e)
		}
		if ticker == nil {
			log.Fatalf("exchange has no data for pair '%s'", args[0])
		}

		fmt.Println(ticker)
	},
}
