package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListWith(ids ...TabID) *TabList {
	tl := NewTabList()
	for _, id := range ids {
		tl.Add(NewTab(id, "about:blank"))
	}
	return tl
}

func TestTabList_RemoveActivePicksFirstRemaining(t *testing.T) {
	tl := newListWith("a", "b", "c")
	tl.ActiveTabID = "b"

	require.True(t, tl.Remove("b"))

	assert.Equal(t, TabID("a"), tl.ActiveTabID)
	assert.Equal(t, 1, tl.Find("c").Position)
}

func TestTabList_RemoveInactiveKeepsActive(t *testing.T) {
	tl := newListWith("a", "b")
	tl.ActiveTabID = "b"

	require.True(t, tl.Remove("a"))

	assert.Equal(t, TabID("b"), tl.ActiveTabID)
	assert.Equal(t, 0, tl.Find("b").Position)
}

func TestTabList_RemoveLastClearsActive(t *testing.T) {
	tl := newListWith("a")
	tl.ActiveTabID = "a"

	require.True(t, tl.Remove("a"))

	assert.Empty(t, tl.ActiveTabID)
	assert.Nil(t, tl.ActiveTab())
	assert.Zero(t, tl.Count())
}

func TestTabList_RemoveUnknown(t *testing.T) {
	tl := newListWith("a")
	assert.False(t, tl.Remove("zzz"))
	assert.Equal(t, 1, tl.Count())
}

func TestTab_ApplyOnlyTouchesSetFields(t *testing.T) {
	tab := NewTab("a", "https://example.com")
	title := "Example"
	loading := false

	tab.Apply(TabUpdate{ID: "a", Title: &title, IsLoading: &loading})

	assert.Equal(t, "Example", tab.Title)
	assert.False(t, tab.IsLoading)
	assert.Equal(t, "https://example.com", tab.URL)
}

func TestNewTab_Defaults(t *testing.T) {
	info := NewTab("a", "https://example.com").Info()
	assert.Equal(t, DefaultTabTitle, info.Title)
	assert.True(t, info.IsLoading)
	assert.False(t, info.CanGoBack)
}
