package tourpipe

// Converter converts HTML to Markdown-ish plain text suitable as language
// model input. The input should be clean HTML (e.g., from an Extractor).
type Converter interface {
	Convert(html string) (string, error)
}
