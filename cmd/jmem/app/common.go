package app

import (
	"fmt"
	"strings"

	"github.com/jikime/jmem/pkg/vecstore"
)

// openStore opens the jikime-mem vector store at its fixed location.
func openStore() (*vecstore.Store, error) {
	return vecstore.New(&vecstore.Config{})
}

// collectionNotFound reports a collection that could not be retrieved. The
// message goes to stdout; the returned error makes the command exit non-zero.
func collectionNotFound(err error) error {
	fmt.Printf("❌ Collection '%s' not found\n", vecstore.CollectionName)
	fmt.Printf("   Error: %v\n", err)
	return err
}

// printHeader prints a section title framed by rules.
func printHeader(title string) {
	rule := strings.Repeat("=", headerWidth)
	fmt.Println(rule)
	fmt.Println(title)
	fmt.Println(rule)
}

// preview flattens newlines and truncates content to limit characters,
// appending "..." only when content was actually cut.
func preview(content string, limit int) string {
	runes := []rune(strings.ReplaceAll(content, "\n", " "))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}

// firstN returns at most the first n characters of s.
func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// typeEmoji returns the display emoji for a document type.
func typeEmoji(docType string) string {
	switch docType {
	case "prompt":
		return "📝"
	case "response":
		return "💬"
	default:
		return "📄"
	}
}

// metaValue returns the metadata value for key, or "unknown" when the key
// is absent.
func metaValue(meta map[string]string, key string) string {
	if v, ok := meta[key]; ok {
		return v
	}
	return "unknown"
}
