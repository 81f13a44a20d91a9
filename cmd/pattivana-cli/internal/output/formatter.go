package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/pattivana/internal/domain"
)

// EntryDisplay represents a menu entry for display purposes.
type EntryDisplay struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	Show        bool   `json:"show"`
	Image       string `json:"image,omitempty"`
}

// EntriesTable writes entries as an aligned table.
func EntriesTable(w io.Writer, entries []domain.MenuEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTITLE\tLINK\tSHOW\tDESCRIPTION")
	fmt.Fprintln(tw, "--\t-----\t----\t----\t-----------")

	if len(entries) == 0 {
		fmt.Fprintln(tw, "No menu entries found")
	}
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
			e.ID,
			e.Title,
			orDash(e.Link),
			e.Show,
			truncateString(e.Description, 40))
	}
	return tw.Flush()
}

// EntriesJSON writes entries as an indented JSON array.
func EntriesJSON(w io.Writer, entries []domain.MenuEntry) error {
	displays := make([]EntryDisplay, len(entries))
	for i, e := range entries {
		displays[i] = EntryDisplay{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Link:        e.Link,
			Show:        e.Show,
			Image:       e.Image.URL,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(displays)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateString truncates a string to the specified length, counting runes.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
