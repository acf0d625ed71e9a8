package tui

// UI Text Constants
const (
	TextTitle   = "Hacker Stories"
	TextLoading = "Loading ..."
	TextError   = "Something went wrong ..."
	TextNoMatch = "No stories match the search."

	// Footer
	TextFooterBrowse  = "j/k move | x dismiss | t/a/c/p sort (again to reverse) | n unsorted | 1-6 feed | r refresh | v preview | / search | q quit"
	TextFooterSearch  = "type to filter | enter search again | esc done"
	TextFooterPreview = "esc close preview"
)
