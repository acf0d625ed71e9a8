package tui

import (
	"fmt"
	"strings"
	"time"

	"hackerstories/types"
)

const (
	defaultListRows = 20
	titleWidth      = 60
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(m.headerLine())
	b.WriteString("\n\n")

	// the error notice and the loading indicator are independent
	if m.State.IsError {
		b.WriteString(ErrorStyle.Render(TextError))
		b.WriteString("\n")
	}
	if m.State.IsLoading {
		b.WriteString(LoadingStyle.Render(TextLoading))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}
	b.WriteString("\n")

	if m.PreviewID != 0 {
		b.WriteString(PreviewBoxStyle.Render(m.renderPreview()))
		b.WriteString("\n\n")
	}

	if len(m.Logs) > 0 {
		b.WriteString(MetaStyle.Render("Recent Activity:"))
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(MetaStyle.Render("   " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.Mode == ModeSearch:
		b.WriteString(MetaStyle.Render(TextFooterSearch))
	case m.PreviewID != 0:
		b.WriteString(MetaStyle.Render(TextFooterPreview + " | " + TextFooterBrowse))
	default:
		b.WriteString(MetaStyle.Render(TextFooterBrowse))
	}
	return b.String()
}

func (m Model) headerLine() string {
	search := fmt.Sprintf("Search: %s", m.Query)
	if m.Mode == ModeSearch {
		search = SearchInputStyle.Render(search + "_")
	}
	order := m.Sort.Key.String()
	if m.Sort.Reverse {
		order += " (reversed)"
	}
	return fmt.Sprintf("%s   %s   %s",
		MetaStyle.Render("Feed: "+m.feedLabel()),
		search,
		MetaStyle.Render("Sort: "+order),
	)
}

func (m Model) renderList() string {
	visible := m.Visible()
	if len(visible) == 0 {
		if len(m.State.Data) == 0 {
			return ""
		}
		return MetaStyle.Render(TextNoMatch) + "\n"
	}

	rows := defaultListRows
	if m.Height > 0 {
		rows = max(m.Height-16, 5)
	}
	start := 0
	if m.Cursor >= rows {
		start = m.Cursor - rows + 1
	}
	end := min(start+rows, len(visible))

	var b strings.Builder
	for i := start; i < end; i++ {
		line := formatStory(visible[i])
		if i == m.Cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(visible) > rows {
		b.WriteString(MetaStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(visible))))
		b.WriteString("\n")
	}
	return b.String()
}

func formatStory(s types.Story) string {
	return fmt.Sprintf("%-*s  %-15s %5d comments %5d points  %s",
		titleWidth, clip(s.Title, titleWidth), clip(s.By, 15), s.Descendants, s.Score, age(s.PostedAt()))
}

func (m Model) renderPreview() string {
	switch {
	case m.PreviewLoading:
		return LoadingStyle.Render("Extracting article ...")
	case m.PreviewErr != nil:
		return ErrorStyle.Render(fmt.Sprintf("Preview unavailable: %v", m.PreviewErr))
	case m.Preview == nil:
		return ""
	}

	var b strings.Builder
	b.WriteString(PreviewTitleStyle.Render(m.Preview.Title))
	b.WriteString("\n")
	if m.Preview.Byline != "" {
		b.WriteString(MetaStyle.Render(m.Preview.Byline))
		b.WriteString("\n")
	}
	b.WriteString(MetaStyle.Render(m.Preview.URL))
	b.WriteString("\n\n")

	width := 80
	if m.Width > 10 {
		width = m.Width - 10
	}
	text := m.Preview.Text
	if m.Preview.Truncated {
		text += " ..."
	}
	b.WriteString(wrap(text, width))
	return b.String()
}

// clip shortens s to n runes
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// wrap breaks text into lines of at most width runes on word boundaries
func wrap(text string, width int) string {
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(text) {
		n := len([]rune(word))
		if lineLen > 0 && lineLen+1+n > width {
			b.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += n
	}
	return b.String()
}

// age renders how long ago t was, e.g. "3h ago"
func age(t time.Time) string {
	if t.Unix() <= 0 {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
