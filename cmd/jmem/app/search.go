package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jikime/jmem/pkg/embeddings"
	"github.com/jikime/jmem/pkg/vecstore"
)

var searchCmd = &cobra.Command{
	Use:   "search \"query\" [n]",
	Short: "Semantic search for similar documents",
	Long: `Embed the query text and print the closest documents by cosine distance (default 10 results).

The query is embedded with the backend configured through the JMEM_EMBEDDING_*
environment variables. It must be the same model that embedded the stored
documents, otherwise distances are meaningless.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: searchCmdFunc,
}

var searchFormat string

func init() {
	searchCmd.Flags().StringVar(&searchFormat, "format", FormatText, "Output format (json or text)")
}

func searchCmdFunc(cmd *cobra.Command, args []string) error {
	query := args[0]
	limit := defaultResultCount
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid result count %q: %w", args[1], err)
		}
		limit = n
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	backend, err := embeddings.NewBackend(embeddings.ConfigFromEnv())
	if err != nil {
		return fmt.Errorf("failed to configure embedding backend: %w", err)
	}
	defer backend.Close()

	col, err := store.Collection(vecstore.CollectionName, backend.Embed)
	if err != nil {
		return collectionNotFound(err)
	}

	results, err := col.Search(cmd.Context(), query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch searchFormat {
	case FormatJSON:
		return printSearchJSONOutput(query, results)
	default:
		printSearchTextOutput(query, results)
		return nil
	}
}

// similarityPercent converts a cosine distance in [0, 2] to a similarity
// percentage in [0, 100].
func similarityPercent(distance float32) float64 {
	pct := (1 - float64(distance)/2) * 100
	if pct < 0 {
		return 0
	}
	return pct
}

func printSearchJSONOutput(query string, results []vecstore.Result) error {
	type resultOutput struct {
		ID         string  `json:"id"`
		DocType    string  `json:"doc_type"`
		Similarity float64 `json:"similarity_percent"`
		Content    string  `json:"content"`
	}

	output := struct {
		Query   string         `json:"query"`
		Results []resultOutput `json:"results"`
	}{
		Query:   query,
		Results: make([]resultOutput, 0, len(results)),
	}
	for _, res := range results {
		output.Results = append(output.Results, resultOutput{
			ID:         res.ID,
			DocType:    metaValue(res.Metadata, metaDocType),
			Similarity: similarityPercent(res.Distance),
			Content:    res.Content,
		})
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func printSearchTextOutput(query string, results []vecstore.Result) {
	printHeader(fmt.Sprintf("🔍 Search: \"%s\"", query))

	if len(results) == 0 {
		fmt.Println("   (no results)")
		return
	}

	for i, res := range results {
		docType := metaValue(res.Metadata, metaDocType)

		fmt.Printf("\n%s [%d] %.1f%% match\n", typeEmoji(docType), i+1, similarityPercent(res.Distance))
		fmt.Printf("   ID: %s\n", res.ID)
		fmt.Printf("   Type: %s\n", docType)
		fmt.Printf("   Content: %s\n", preview(res.Content, searchPreviewLen))
	}
}
