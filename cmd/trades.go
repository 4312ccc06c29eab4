package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var tradesCmd = &cobra.Command{
	Use:   "trades [symbol]",
	Short: "Shows recent trades for one pair",
	Args:  cobra.ExactArgs(1),
	Run: func(ccmd *cobra.Command, args []string) {
		trades, e := makePublicExchange().GetRecentTrades(args[0])
		if e != nil {
			log.Fatal(e)
		}

		for _, trade := range trades {
			fmt.Println(trade)
		}
	},
}
