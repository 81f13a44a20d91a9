// Package menu turns CMS menu content into render-ready tiles.
package menu

import (
	"sort"
	"strings"

	"github.com/nfrund/pattivana/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Deriver is the signature of DeriveEntries. Handlers take one so the
// derivation can be observed in tests.
type Deriver func(images domain.MenuImageSet, narrow bool) []domain.MenuEntry

// DeriveEntries resolves every slot of images into a MenuEntry, ordered by
// slot Order and then slot name. The result is deterministic for a given
// input and is never nil. A nil set yields no entries.
//
// An entry is shown when its visibility rule allows the layout and it has a
// link to navigate to.
func DeriveEntries(images domain.MenuImageSet, narrow bool) []domain.MenuEntry {
	names := make([]string, 0, len(images))
	for name := range images {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, b := images[names[i]], images[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return names[i] < names[j]
	})

	entries := make([]domain.MenuEntry, 0, len(names))
	for _, name := range names {
		slot := images[name]
		link := strings.TrimSpace(slot.Link)
		entries = append(entries, domain.MenuEntry{
			ID:          name,
			Image:       slot.Image,
			Title:       titleFor(name, slot.Title),
			Description: strings.TrimSpace(slot.Description),
			Show:        link != "" && slot.Visibility.Allows(narrow),
			Link:        link,
		})
	}
	return entries
}

// Visible returns the shown entries, keeping their relative order.
func Visible(entries []domain.MenuEntry) []domain.MenuEntry {
	out := make([]domain.MenuEntry, 0, len(entries))
	for _, e := range entries {
		if e.Show {
			out = append(out, e)
		}
	}
	return out
}

func titleFor(slot, title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(slot))
}
