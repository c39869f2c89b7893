package main

import (
	"fmt"
	"os"

	"rsgrecovery/statement-analyzer/cmd/analyze"
	"rsgrecovery/statement-analyzer/cmd/batch"
	"rsgrecovery/statement-analyzer/cmd/exclusions"
	"rsgrecovery/statement-analyzer/cmd/merchants"
	"rsgrecovery/statement-analyzer/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(merchants.Cmd)
	root.Cmd.AddCommand(exclusions.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
