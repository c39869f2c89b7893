// Package merchants handles merchant list maintenance commands
package merchants

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsgrecovery/statement-analyzer/cmd/root"
)

// Cmd represents the merchants command
var Cmd = &cobra.Command{
	Use:   "merchants",
	Short: "Manage the known merchant list",
	Long:  `List, import, and export known payment processors, and approve suggested ones.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known processors",
	Run:   listFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export merchants to CSV",
	Args:  cobra.ExactArgs(1),
	Run:   exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import merchants from CSV",
	Args:  cobra.ExactArgs(1),
	Run:   importFunc,
}

var approveCmd = &cobra.Command{
	Use:   "approve <name>...",
	Short: "Promote suggested processors to merchants",
	Args:  cobra.MinimumNArgs(1),
	Run:   approveFunc,
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List pending processor suggestions",
	Run:   suggestionsFunc,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(approveCmd)
	Cmd.AddCommand(suggestionsCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	known, err := root.GetStore().KnownProcessors()
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load merchants: %v", err))
	}
	for _, name := range known {
		fmt.Println(name)
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if err := root.GetStore().ExportMerchantsCSV(args[0]); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to export merchants: %v", err))
	}
	root.Log.Infof("Merchants exported to %s", args[0])
}

func importFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	added, err := root.GetStore().ImportMerchantsCSV(args[0])
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to import merchants: %v", err))
	}
	root.Log.Infof("Imported %d new merchants from %s", added, args[0])
}

func approveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if err := root.GetStore().ApproveSuggestions(args); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to approve suggestions: %v", err))
	}
	root.Log.Infof("Approved %d suggestions", len(args))
}

func suggestionsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	suggestions, err := root.GetStore().LoadSuggestions()
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load suggestions: %v", err))
	}
	for _, s := range suggestions {
		fmt.Printf("%s\t(found %s in %s)\n", s.Name, s.DateFound, s.FoundInFile)
	}
}
