// SPDX-FileCopyrightText: Copyright 2025 jikime
// SPDX-License-Identifier: Apache-2.0

package app

// Output format constants
const (
	// FormatJSON is the JSON output format
	FormatJSON = "json"
	// FormatText is the text output format
	FormatText = "text"
)

// Display constants
const (
	// headerWidth is the width of the rule framing section titles
	headerWidth = 50

	// defaultResultCount is how many documents list and search show by default
	defaultResultCount = 10

	// listPreviewLen caps content previews in list output
	listPreviewLen = 80
	// searchPreviewLen caps content previews in search output
	searchPreviewLen = 100

	// listSessionLen is how many session id characters list output shows
	listSessionLen = 8
	// typesSessionLen is the session id length above which types output truncates
	typesSessionLen = 12
	// topSessionCount caps the per-session tally in types output
	topSessionCount = 5
)

// Metadata keys written by the jikime-mem memory hooks.
const (
	metaDocType   = "doc_type"
	metaSessionID = "session_id"
)
