package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var depthLimit int32

var depthCmd = &cobra.Command{
	Use:   "depth [symbol]",
	Short: "Shows the order book for one pair",
	Args:  cobra.ExactArgs(1),
	Run: func(ccmd *cobra.Command, args []string) {
		ob, e := makePublicExchange().GetOrderBook(args[0], depthLimit)
		if e != nil {
			log.Fatal(e)
		}

		fmt.Printf("order book for %s\n", ob.Pair())
		fmt.Println("asks:")
		for _, level := range ob.Asks() {
			fmt.Printf("  %s\n", level)
		}
		fmt.Println("bids:")
		for _, level := range ob.Bids() {
			fmt.Printf("  %s\n", level)
		}
	},
}

func init() {
	depthCmd.Flags().Int32Var(&depthLimit, "limit", 20, "number of levels per side")
}
