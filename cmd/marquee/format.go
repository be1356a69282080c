package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmunix/marquee/internal/browse"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
)

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func printBanner(w io.Writer, b *browse.Banner) {
	if b == nil {
		fmt.Fprintln(w, dimStyle.Render("Nothing trending right now"))
		return
	}
	fmt.Fprintf(w, "%s  (%s #%d)\n", titleStyle.Render(b.Title), b.Kind, b.ID)
	fmt.Fprintf(w, "%s\n", b.Overview)
	fmt.Fprintf(w, "%s\n", dimStyle.Render(b.BackdropURL))
}

func printCards(w io.Writer, cards []browse.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  No content available"))
		return
	}

	fmt.Fprintf(w, "  # │ %-40s │ %-5s │ %-6s │ %s\n", "TITLE", "KIND", "RATING", "ID")
	fmt.Fprintln(w, "────┼──────────────────────────────────────────┼───────┼────────┼─────────")
	for i, c := range cards {
		fmt.Fprintf(w, " %2d │ %-40s │ %-5s │ %-6s │ %d\n", i+1, truncate(c.Title, 40), c.Kind, c.Rating, c.ID)
		if len(c.Genres) > 0 {
			fmt.Fprintf(w, "    │ %s\n", dimStyle.Render(strings.Join(c.Genres, ", ")))
		}
	}
}

func printRows(w io.Writer, rows []browse.Row) {
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", titleStyle.Render(string(row.Category)), len(row.Cards))
		printCards(w, row.Cards)
	}
}

func printDetail(w io.Writer, v browse.DetailView) {
	status := dimStyle.Render("loading")
	if v.Complete {
		status = okStyle.Render("complete")
	}
	fmt.Fprintf(w, "%s  [%s]\n", titleStyle.Render(v.Title), status)
	fmt.Fprintf(w, "  Kind:      %s #%d\n", v.Kind, v.ID)
	fmt.Fprintf(w, "  Rating:    %s\n", v.Rating)
	if v.Complete {
		fmt.Fprintf(w, "  Year:      %s\n", v.Year)
		lang := v.Language
		if v.LanguageName != "" {
			lang = fmt.Sprintf("%s (%s)", v.Language, v.LanguageName)
		}
		fmt.Fprintf(w, "  Language:  %s\n", lang)
		fmt.Fprintf(w, "  Genres:    %s\n", v.Genres)
	}
	fmt.Fprintf(w, "  Poster:    %s\n", v.PosterURL)
	fmt.Fprintf(w, "  Backdrop:  %s\n", v.BackdropURL)
	fmt.Fprintf(w, "\n  %s\n", v.Overview)
}
