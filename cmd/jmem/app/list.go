package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jikime/jmem/pkg/vecstore"
)

var listCmd = &cobra.Command{
	Use:   "list [n]",
	Short: "List sample documents",
	Long:  `Print up to n documents from the memory collection in store order (default 10).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  listCmdFunc,
}

var listFormat string

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", FormatText, "Output format (json or text)")
}

func listCmdFunc(_ *cobra.Command, args []string) error {
	limit := defaultResultCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid document count %q: %w", args[0], err)
		}
		limit = n
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	count, err := store.Count(vecstore.CollectionName)
	if err != nil {
		return collectionNotFound(err)
	}

	// Peek at most count documents, never a negative number.
	if limit > count {
		limit = count
	}
	if limit < 0 {
		limit = 0
	}

	docs, err := store.Peek(vecstore.CollectionName, limit)
	if err != nil {
		return fmt.Errorf("failed to read documents: %w", err)
	}

	switch listFormat {
	case FormatJSON:
		return printListJSONOutput(count, docs)
	default:
		printListTextOutput(limit, count, docs)
		return nil
	}
}

func printListJSONOutput(count int, docs []vecstore.Document) error {
	type docOutput struct {
		ID        string `json:"id"`
		DocType   string `json:"doc_type"`
		SessionID string `json:"session_id"`
		Content   string `json:"content"`
	}

	output := struct {
		Total     int         `json:"total"`
		Documents []docOutput `json:"documents"`
	}{
		Total:     count,
		Documents: make([]docOutput, 0, len(docs)),
	}
	for _, doc := range docs {
		output.Documents = append(output.Documents, docOutput{
			ID:        doc.ID,
			DocType:   metaValue(doc.Metadata, metaDocType),
			SessionID: metaValue(doc.Metadata, metaSessionID),
			Content:   doc.Content,
		})
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func printListTextOutput(limit, count int, docs []vecstore.Document) {
	printHeader(fmt.Sprintf("📄 Documents (showing %d of %d)", limit, count))

	if count == 0 {
		fmt.Println("   (no documents)")
		return
	}

	for i, doc := range docs {
		docType := metaValue(doc.Metadata, metaDocType)
		sessionID := metaValue(doc.Metadata, metaSessionID)

		fmt.Printf("\n%s [%d] %s\n", typeEmoji(docType), i+1, doc.ID)
		fmt.Printf("   Type: %s | Session: %s...\n", docType, firstN(sessionID, listSessionLen))
		fmt.Printf("   Content: %s\n", preview(doc.Content, listPreviewLen))
	}
}
