package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Visibility is the per-slot rule deciding on which layout a menu tile appears.
type Visibility string

const (
	VisibleAlways  Visibility = "always"
	VisibleDesktop Visibility = "desktop"
	VisibleMobile  Visibility = "mobile"
	VisibleHidden  Visibility = "hidden"
)

// Allows reports whether a tile with this rule is shown for the given layout.
// The empty rule behaves like VisibleAlways.
func (v Visibility) Allows(narrow bool) bool {
	switch Visibility(strings.ToLower(string(v))) {
	case "", VisibleAlways:
		return true
	case VisibleDesktop:
		return !narrow
	case VisibleMobile:
		return narrow
	default:
		return false
	}
}

// MenuSlot is one configured tile of the menu section.
type MenuSlot struct {
	Image       MediaDescriptor `yaml:"image" json:"image"`
	Title       string          `yaml:"title" json:"title"`
	Description string          `yaml:"description" json:"description"`
	Link        string          `yaml:"link" json:"link" validate:"omitempty,menulink"`
	Visibility  Visibility      `yaml:"visibility" json:"visibility" validate:"omitempty,visibility"`
	Order       int             `yaml:"order" json:"order"`
}

// MenuImageSet maps a slot name to its content. A nil set means the content
// has not been loaded; it is handled exactly like an empty one.
type MenuImageSet map[string]MenuSlot

// MenuEntry is the render-ready form of a slot. ID is the slot name and is
// stable across renders, so it is used as the element key.
type MenuEntry struct {
	ID          string
	Image       MediaDescriptor
	Title       string
	Description string
	Show        bool
	Link        string
}

var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("visibility", validateVisibility)
	_ = validatorInstance.RegisterValidation("menulink", validateMenuLink)
}

func validateVisibility(fl validator.FieldLevel) bool {
	switch Visibility(strings.ToLower(fl.Field().String())) {
	case VisibleAlways, VisibleDesktop, VisibleMobile, VisibleHidden:
		return true
	}
	return false
}

// validateMenuLink accepts site-relative paths and absolute http(s) URLs.
func validateMenuLink(fl validator.FieldLevel) bool {
	link := fl.Field().String()
	switch {
	case strings.HasPrefix(link, "//"):
		return false
	case strings.HasPrefix(link, "/"):
		return true
	case strings.HasPrefix(link, "https://"), strings.HasPrefix(link, "http://"):
		return true
	}
	return false
}

// SlotKey reduces a slot name to the characters allowed in an element id.
// Tiles are keyed by it, so two slots of a set must not share a key.
func SlotKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// Validate checks every slot of the set. Images without a URL are allowed;
// a tile may be text-only. Slot names whose keys collide are rejected.
func (s MenuImageSet) Validate() error {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	keys := make(map[string]string, len(s))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty slot name", ErrInvalidContent)
		}
		if err := validatorInstance.Struct(s[name]); err != nil {
			return fmt.Errorf("%w: slot %q: %v", ErrInvalidContent, name, err)
		}
		key := SlotKey(name)
		if other, ok := keys[key]; ok {
			return fmt.Errorf("%w: slots %q and %q share the key %q", ErrInvalidContent, other, name, key)
		}
		keys[key] = name
	}
	return nil
}
