package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// DefaultTabTitle is shown until the page reports its own title.
const DefaultTabTitle = "Loading"

// Tab holds the last known navigation state of one page surface.
// Only surface event handlers mutate these fields.
type Tab struct {
	ID           TabID
	URL          string
	Title        string
	CanGoBack    bool
	CanGoForward bool
	IsLoading    bool
	Position     int // Insertion order among live tabs (0-indexed)
	CreatedAt    time.Time
}

// NewTab creates a tab that is about to start loading url.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		Title:     DefaultTabTitle,
		IsLoading: true,
		CreatedAt: time.Now(),
	}
}

// Info returns the UI snapshot of the tab.
func (t *Tab) Info() TabInfo {
	return TabInfo{
		ID:           t.ID,
		URL:          t.URL,
		Title:        t.Title,
		CanGoBack:    t.CanGoBack,
		CanGoForward: t.CanGoForward,
		IsLoading:    t.IsLoading,
	}
}

// Apply merges the non-nil fields of u into the tab.
func (t *Tab) Apply(u TabUpdate) {
	if u.URL != nil {
		t.URL = *u.URL
	}
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.CanGoBack != nil {
		t.CanGoBack = *u.CanGoBack
	}
	if u.CanGoForward != nil {
		t.CanGoForward = *u.CanGoForward
	}
	if u.IsLoading != nil {
		t.IsLoading = *u.IsLoading
	}
}

// TabInfo is the payload of tab:created, tab:switched and tab:getAll.
type TabInfo struct {
	ID           TabID  `json:"id"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	CanGoBack    bool   `json:"canGoBack"`
	CanGoForward bool   `json:"canGoForward"`
	IsLoading    bool   `json:"isLoading"`
}

// TabUpdate is the payload of tab:updated: the id plus only the changed fields.
type TabUpdate struct {
	ID           TabID   `json:"id"`
	URL          *string `json:"url,omitempty"`
	Title        *string `json:"title,omitempty"`
	CanGoBack    *bool   `json:"canGoBack,omitempty"`
	CanGoForward *bool   `json:"canGoForward,omitempty"`
	IsLoading    *bool   `json:"isLoading,omitempty"`
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list. Activation is left to the caller.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
}

// Remove removes a tab by ID and reindexes positions.
// When the removed tab was active, the first remaining tab becomes active,
// or none if the list is now empty.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID != id {
			continue
		}
		tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
		for j := i; j < len(tl.Tabs); j++ {
			tl.Tabs[j].Position = j
		}
		if tl.ActiveTabID == id {
			tl.ActiveTabID = ""
			if len(tl.Tabs) > 0 {
				tl.ActiveTabID = tl.Tabs[0].ID
			}
		}
		return true
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	if tl.ActiveTabID == "" {
		return nil
	}
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Infos returns snapshots of every tab in insertion order.
func (tl *TabList) Infos() []TabInfo {
	out := make([]TabInfo, 0, len(tl.Tabs))
	for _, tab := range tl.Tabs {
		out = append(out, tab.Info())
	}
	return out
}
