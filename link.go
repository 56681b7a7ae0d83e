package linkpreview

// Link is a URL found in message text together with its position.
// It is an immutable value constructed by a LinkScanner.
type Link struct {
	// URL is the matched span, exactly as it appeared in the text.
	URL string

	// Position is the byte offset of the span's first character in the
	// source text.
	Position int
}
