package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Lists the exchange's native pair identifiers",
	Run: func(ccmd *cobra.Command, args []string) {
		symbols, e := makePublicExchange().GetMarketSymbols()
		if e != nil {
			log.Fatal(e)
		}

		for _, symbol := range symbols {
			fmt.Println(symbol)
		}
	},
}
