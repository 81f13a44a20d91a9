package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/pattivana/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []domain.MenuEntry {
	return []domain.MenuEntry{
		{ID: "dinner", Title: "Dinner", Description: "Served from six", Link: "/menu/dinner", Show: true,
			Image: domain.MediaDescriptor{URL: "https://images.ctfassets.net/s/dinner.jpg"}},
		{ID: "drinks", Title: "Drinks", Show: false},
	}
}

func TestEntriesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EntriesTable(&buf, sampleEntries()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[2], "/menu/dinner")
	assert.Contains(t, lines[3], "drinks")
	assert.Contains(t, lines[3], "-")
	assert.Contains(t, lines[3], "false")
}

func TestEntriesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EntriesTable(&buf, nil))
	assert.Contains(t, buf.String(), "No menu entries found")
}

func TestEntriesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EntriesJSON(&buf, sampleEntries()))

	var got []EntryDisplay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "dinner", got[0].ID)
	assert.Equal(t, "https://images.ctfassets.net/s/dinner.jpg", got[0].Image)
	assert.False(t, got[1].Show)
}

func TestEntriesJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EntriesJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}
