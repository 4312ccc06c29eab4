package main

import (
	"log"

	"github.com/tradeforge/yobit/cmd"
)

func main() {
	e := cmd.RootCmd.Execute()
	if e != nil {
		log.Fatal(e)
	}
}
