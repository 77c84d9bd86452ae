// Package transform implements the data processing applied by POST /process.
package transform

import (
	"strings"
	"unicode/utf8"
)

// Metadata keys computed for every processed request. Caller-supplied options
// overlay these, so a caller can overwrite either value.
const (
	KeyOriginalLength  = "original_length"
	KeyProcessedLength = "processed_length"
)

// Result contains the processed output and its computed metadata.
type Result struct {
	Output   string
	Metadata map[string]any
}

// Process uppercases data and builds the metadata overlay. It is a pure
// function of its inputs: length fields are character (rune) counts, and
// every key in options is copied over them, options winning on collision.
func Process(data string, options map[string]any) Result {
	output := strings.ToUpper(data)

	metadata := make(map[string]any, len(options)+2)
	metadata[KeyOriginalLength] = utf8.RuneCountInString(data)
	metadata[KeyProcessedLength] = utf8.RuneCountInString(output)
	for k, v := range options {
		metadata[k] = v
	}

	return Result{Output: output, Metadata: metadata}
}
