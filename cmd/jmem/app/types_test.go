package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jikime/jmem/pkg/vecstore"
)

func TestTallyMeta(t *testing.T) {
	t.Parallel()

	t.Run("counts and sorts by frequency", func(t *testing.T) {
		t.Parallel()
		docs := []vecstore.Document{
			{Metadata: map[string]string{metaDocType: "prompt"}},
			{Metadata: map[string]string{metaDocType: "response"}},
			{Metadata: map[string]string{metaDocType: "prompt"}},
		}

		got := tallyMeta(docs, metaDocType)
		require.Len(t, got, 2)
		assert.Equal(t, tally{value: "prompt", count: 2}, got[0])
		assert.Equal(t, tally{value: "response", count: 1}, got[1])
	})

	t.Run("missing metadata counts as unknown", func(t *testing.T) {
		t.Parallel()
		docs := []vecstore.Document{
			{Metadata: map[string]string{metaDocType: "prompt"}},
			{Metadata: nil},
			{Metadata: map[string]string{"other": "value"}},
		}

		got := tallyMeta(docs, metaDocType)
		require.Len(t, got, 2)
		assert.Equal(t, tally{value: "unknown", count: 2}, got[0])
		assert.Equal(t, tally{value: "prompt", count: 1}, got[1])
	})

	t.Run("ties break by value", func(t *testing.T) {
		t.Parallel()
		docs := []vecstore.Document{
			{Metadata: map[string]string{metaDocType: "zeta"}},
			{Metadata: map[string]string{metaDocType: "alpha"}},
		}

		got := tallyMeta(docs, metaDocType)
		require.Len(t, got, 2)
		assert.Equal(t, "alpha", got[0].value)
		assert.Equal(t, "zeta", got[1].value)
	})

	t.Run("counts sum to the document total", func(t *testing.T) {
		t.Parallel()
		docs := []vecstore.Document{
			{Metadata: map[string]string{metaSessionID: "a"}},
			{Metadata: map[string]string{metaSessionID: "b"}},
			{Metadata: map[string]string{metaSessionID: "a"}},
			{Metadata: nil},
		}

		sum := 0
		for _, tl := range tallyMeta(docs, metaSessionID) {
			sum += tl.count
		}
		assert.Equal(t, len(docs), sum)
	})
}

func TestPrintTypesTextOutput(t *testing.T) { //nolint:paralleltest // Redirects stdout
	t.Run("empty collection", func(t *testing.T) {
		out := captureStdout(t, func() {
			printTypesTextOutput(0, nil, nil)
		})

		assert.Contains(t, out, "📈 Document Types Statistics")
		assert.Contains(t, out, "   (no documents)")
	})

	t.Run("tallies", func(t *testing.T) {
		typeTallies := []tally{
			{value: "prompt", count: 2},
			{value: "response", count: 1},
			{value: "unknown", count: 1},
		}
		sessionTallies := []tally{
			{value: "alphasession12345678", count: 3},
			{value: "short", count: 2},
			{value: "sess-3", count: 1},
			{value: "sess-4", count: 1},
			{value: "sess-5", count: 1},
			{value: "sess-6-over-the-cap", count: 1},
		}

		out := captureStdout(t, func() {
			printTypesTextOutput(4, typeTallies, sessionTallies)
		})

		assert.Contains(t, out, "📊 By Type (Total: 4):")
		assert.Contains(t, out, "   📝 prompt: 2")
		assert.Contains(t, out, "   💬 response: 1")
		assert.Contains(t, out, "   📄 unknown: 1")

		assert.Contains(t, out, "📊 By Session (Top 5):")
		assert.Contains(t, out, "   📁 alphasession...: 3 documents", "long session ids are truncated")
		assert.Contains(t, out, "   📁 short: 2 documents", "short session ids are kept whole")
		assert.NotContains(t, out, "sess-6-over-the-cap", "only the top sessions are listed")
	})
}

func TestTypesCmdCollectionMissing(t *testing.T) { //nolint:paralleltest // Uses environment variables
	seedMemoryHome(t, "some_other_collection", []docSpec{
		{docType: "prompt", sessionID: "session-1", content: "first"},
	})

	var err error
	out := captureStdout(t, func() {
		err = typesCmdFunc(nil, nil)
	})

	require.Error(t, err)
	assert.Contains(t, out, "❌ Collection '"+vecstore.CollectionName+"' not found")
	assert.Contains(t, out, "   Error: ")
}

func TestTypesCmdEndToEnd(t *testing.T) { //nolint:paralleltest // Uses environment variables
	seedMemoryHome(t, vecstore.CollectionName, []docSpec{
		{docType: "prompt", sessionID: "session-1", content: "first"},
		{docType: "prompt", sessionID: "session-1", content: "second"},
		{docType: "response", sessionID: "session-2", content: "third"},
		{content: "no metadata at all"},
	})

	var err error
	out := captureStdout(t, func() {
		err = typesCmdFunc(nil, nil)
	})
	require.NoError(t, err)

	assert.Contains(t, out, "📈 Document Types Statistics")
	assert.Contains(t, out, "📊 By Type (Total: 4):")
	assert.Contains(t, out, "   📝 prompt: 2")
	assert.Contains(t, out, "   💬 response: 1")
	assert.Contains(t, out, "   📄 unknown: 1")
	assert.Contains(t, out, "   📁 session-1: 2 documents")
}
