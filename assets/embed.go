// Package assets embeds the exhibit's default content: the vocabulary, the
// layer model catalog and the language rules text.
package assets

import "embed"

// Default file names inside FS.
const (
	VocabularyFile = "vocabulary.csv"
	ModelsFile     = "models.yaml"
)

// FS holds the embedded content files.
//
//go:embed vocabulary.csv models.yaml
var FS embed.FS
