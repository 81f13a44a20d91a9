package domain_test

import (
	"testing"

	"github.com/nfrund/pattivana/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility_Allows(t *testing.T) {
	cases := []struct {
		rule         domain.Visibility
		wide, narrow bool
	}{
		{"", true, true},
		{domain.VisibleAlways, true, true},
		{domain.VisibleDesktop, true, false},
		{domain.VisibleMobile, false, true},
		{domain.VisibleHidden, false, false},
		{"Desktop", true, false},
		{"bogus", false, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.wide, c.rule.Allows(false), "rule %q on wide", c.rule)
		assert.Equal(t, c.narrow, c.rule.Allows(true), "rule %q on narrow", c.rule)
	}
}

func TestMenuImageSet_Validate(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		set := domain.MenuImageSet{
			"food":   {Title: "Food", Link: "/menu/food", Visibility: domain.VisibleAlways},
			"events": {Title: "Events", Link: "https://events.example.com", Visibility: "desktop"},
			"text":   {Title: "Text only"},
		}
		require.NoError(t, set.Validate())
	})

	t.Run("nil set", func(t *testing.T) {
		var set domain.MenuImageSet
		require.NoError(t, set.Validate())
	})

	t.Run("unknown visibility", func(t *testing.T) {
		set := domain.MenuImageSet{"food": {Link: "/food", Visibility: "sometimes"}}
		err := set.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})

	t.Run("protocol-relative link", func(t *testing.T) {
		set := domain.MenuImageSet{"food": {Link: "//evil.example"}}
		assert.ErrorIs(t, set.Validate(), domain.ErrInvalidContent)
	})

	t.Run("javascript link", func(t *testing.T) {
		set := domain.MenuImageSet{"food": {Link: "javascript:alert(1)"}}
		assert.ErrorIs(t, set.Validate(), domain.ErrInvalidContent)
	})

	t.Run("blank slot name", func(t *testing.T) {
		set := domain.MenuImageSet{" ": {Link: "/food"}}
		assert.ErrorIs(t, set.Validate(), domain.ErrInvalidContent)
	})

	t.Run("slot names sharing a key", func(t *testing.T) {
		set := domain.MenuImageSet{
			"happy hour": {Link: "/happy"},
			"happy-hour": {Link: "/happy"},
		}
		err := set.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
		assert.ErrorContains(t, err, `"happy hour" and "happy-hour"`)
	})

	t.Run("case only differences collide", func(t *testing.T) {
		set := domain.MenuImageSet{"Food": {Link: "/a"}, "food": {Link: "/b"}}
		assert.ErrorIs(t, set.Validate(), domain.ErrInvalidContent)
	})
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "private-dining", domain.SlotKey("Private Dining"))
	assert.Equal(t, "bar_1", domain.SlotKey("bar_1"))
	assert.Equal(t, "caf-", domain.SlotKey("café"))
}
