package app

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jikime/jmem/pkg/vecstore"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Show document type and session statistics",
	Long:  `Tally every stored document by doc_type and by session_id.`,
	Args:  cobra.NoArgs,
	RunE:  typesCmdFunc,
}

var typesFormat string

func init() {
	typesCmd.Flags().StringVar(&typesFormat, "format", FormatText, "Output format (json or text)")
}

func typesCmdFunc(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	count, err := store.Count(vecstore.CollectionName)
	if err != nil {
		return collectionNotFound(err)
	}

	docs, err := store.Documents(vecstore.CollectionName)
	if err != nil {
		return fmt.Errorf("failed to read documents: %w", err)
	}

	typeTallies := tallyMeta(docs, metaDocType)
	sessionTallies := tallyMeta(docs, metaSessionID)

	switch typesFormat {
	case FormatJSON:
		return printTypesJSONOutput(count, typeTallies, sessionTallies)
	default:
		printTypesTextOutput(count, typeTallies, sessionTallies)
		return nil
	}
}

// tally is one value of a metadata key and how many documents carry it.
type tally struct {
	value string
	count int
}

// tallyMeta counts the values of a metadata key across docs, sorted by count
// descending. Ties are broken by value so the order is stable.
func tallyMeta(docs []vecstore.Document, key string) []tally {
	counts := make(map[string]int)
	for _, doc := range docs {
		counts[metaValue(doc.Metadata, key)]++
	}

	tallies := make([]tally, 0, len(counts))
	for value, count := range counts {
		tallies = append(tallies, tally{value: value, count: count})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		return tallies[i].value < tallies[j].value
	})
	return tallies
}

func printTypesJSONOutput(count int, typeTallies, sessionTallies []tally) error {
	type tallyOutput struct {
		Value string `json:"value"`
		Count int    `json:"count"`
	}

	toOutput := func(tallies []tally, max int) []tallyOutput {
		out := make([]tallyOutput, 0, len(tallies))
		for i, tl := range tallies {
			if max > 0 && i >= max {
				break
			}
			out = append(out, tallyOutput{Value: tl.value, Count: tl.count})
		}
		return out
	}

	output := struct {
		Total       int           `json:"total"`
		Types       []tallyOutput `json:"types"`
		TopSessions []tallyOutput `json:"top_sessions"`
	}{
		Total:       count,
		Types:       toOutput(typeTallies, 0),
		TopSessions: toOutput(sessionTallies, topSessionCount),
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func printTypesTextOutput(count int, typeTallies, sessionTallies []tally) {
	printHeader("📈 Document Types Statistics")

	if count == 0 {
		fmt.Println("   (no documents)")
		return
	}

	fmt.Printf("\n📊 By Type (Total: %d):\n", count)
	for _, tl := range typeTallies {
		fmt.Printf("   %s %s: %d\n", typeEmoji(tl.value), tl.value, tl.count)
	}

	fmt.Printf("\n📊 By Session (Top %d):\n", topSessionCount)
	for i, tl := range sessionTallies {
		if i >= topSessionCount {
			break
		}
		shortID := tl.value
		if len([]rune(shortID)) > typesSessionLen {
			shortID = firstN(shortID, typesSessionLen) + "..."
		}
		fmt.Printf("   📁 %s: %d documents\n", shortID, tl.count)
	}
}
