// Package data provides the embedded game content document.
package data

import "embed"

// DefaultFile is the name of the bundled content document.
const DefaultFile = "data.json"

// dataFS embeds the content document at build time.
//
//go:embed data.json
var dataFS embed.FS

// Default returns the raw bytes of the bundled content document.
func Default() ([]byte, error) {
	return dataFS.ReadFile(DefaultFile)
}
