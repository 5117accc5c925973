package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jikime/jmem/pkg/vecstore"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show all collections and document counts",
	Long:  `Display every collection in the vector store along with its document count.`,
	Args:  cobra.NoArgs,
	RunE:  statusCmdFunc,
}

var statusFormat string

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", FormatText, "Output format (json or text)")
}

func statusCmdFunc(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	stats, err := store.Collections()
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	switch statusFormat {
	case FormatJSON:
		if err := printStatusJSONOutput(store.Path(), stats); err != nil {
			return err
		}
	default:
		printStatusTextOutput(store.Path(), stats)
	}

	// The listing is printed in full either way, but a store without the
	// memory collection is not healthy.
	for _, stat := range stats {
		if stat.Name == vecstore.CollectionName {
			return nil
		}
	}
	return collectionNotFound(fmt.Errorf("collection not found: %s", vecstore.CollectionName))
}

func printStatusJSONOutput(path string, stats []vecstore.CollectionStat) error {
	type collectionOutput struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
		Error string `json:"error,omitempty"`
	}

	output := struct {
		DataDirectory string             `json:"data_directory"`
		Collections   []collectionOutput `json:"collections"`
	}{
		DataDirectory: path,
		Collections:   make([]collectionOutput, 0, len(stats)),
	}
	for _, stat := range stats {
		co := collectionOutput{Name: stat.Name, Count: stat.Count}
		if stat.Err != nil {
			co.Error = stat.Err.Error()
		}
		output.Collections = append(output.Collections, co)
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func printStatusTextOutput(path string, stats []vecstore.CollectionStat) {
	printHeader("📊 Chroma Status")
	fmt.Printf("📁 Data Directory: %s\n", path)

	fmt.Printf("\n📚 Collections (%d):\n", len(stats))
	for _, stat := range stats {
		if stat.Err != nil {
			fmt.Printf("   • %s: (error)\n", stat.Name)
			continue
		}
		fmt.Printf("   • %s: %d documents\n", stat.Name, stat.Count)
	}
}
