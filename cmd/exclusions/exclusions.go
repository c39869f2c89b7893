// Package exclusions handles exclusion list maintenance commands
package exclusions

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rsgrecovery/statement-analyzer/cmd/root"
	"rsgrecovery/statement-analyzer/internal/store"
)

// Cmd represents the exclusions command
var Cmd = &cobra.Command{
	Use:   "exclusions",
	Short: "Manage the exclusion list",
	Long:  `List, add, import, and export entities that must never be counted as processors.`,
}

var reason string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List excluded entities",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <entity>",
	Short: "Add an excluded entity",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export exclusions to CSV",
	Args:  cobra.ExactArgs(1),
	Run:   exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import exclusions from CSV",
	Args:  cobra.ExactArgs(1),
	Run:   importFunc,
}

func init() {
	addCmd.Flags().StringVarP(&reason, "reason", "r", "", "Why the entity is excluded")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	entities, err := root.GetStore().ExclusionEntities()
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load exclusions: %v", err))
	}
	for _, name := range entities {
		fmt.Println(name)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	st := root.GetStore()

	exclusions, err := st.LoadExclusions()
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load exclusions: %v", err))
	}
	exclusions = append(exclusions, store.Exclusion{
		Entity:    args[0],
		Reason:    reason,
		DateAdded: time.Now().Format(time.RFC3339),
	})
	if err := st.SaveExclusions(exclusions); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to save exclusions: %v", err))
	}
	root.Log.Infof("Excluded %s", args[0])
}

func exportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	if err := root.GetStore().ExportExclusionsCSV(args[0]); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to export exclusions: %v", err))
	}
	root.Log.Infof("Exclusions exported to %s", args[0])
}

func importFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	added, err := root.GetStore().ImportExclusionsCSV(args[0])
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to import exclusions: %v", err))
	}
	root.Log.Infof("Imported %d new exclusions from %s", added, args[0])
}
