package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/domain/entity"
)

type call struct {
	op  string
	id  string
	url string
}

type fakeTabs struct {
	calls     []call
	createErr error
	active    entity.TabID
}

func (f *fakeTabs) Create(_ context.Context, url string) (entity.TabID, error) {
	f.calls = append(f.calls, call{op: "create", url: url})
	if f.createErr != nil {
		return "", f.createErr
	}
	return "tab-new", nil
}
func (f *fakeTabs) SwitchTo(_ context.Context, id entity.TabID) {
	f.calls = append(f.calls, call{op: "switch", id: string(id)})
}
func (f *fakeTabs) Close(_ context.Context, id entity.TabID) {
	f.calls = append(f.calls, call{op: "close", id: string(id)})
}
func (f *fakeTabs) Navigate(_ context.Context, id entity.TabID, url string) {
	f.calls = append(f.calls, call{op: "navigate", id: string(id), url: url})
}
func (f *fakeTabs) Back(_ context.Context, id entity.TabID) {
	f.calls = append(f.calls, call{op: "back", id: string(id)})
}
func (f *fakeTabs) Forward(_ context.Context, id entity.TabID) {
	f.calls = append(f.calls, call{op: "forward", id: string(id)})
}
func (f *fakeTabs) Reload(_ context.Context, id entity.TabID) {
	f.calls = append(f.calls, call{op: "reload", id: string(id)})
}
func (f *fakeTabs) GetAll() []entity.TabInfo {
	return []entity.TabInfo{{ID: "tab-1", URL: "https://example.com", Title: "Example"}}
}
func (f *fakeTabs) Active() entity.TabID { return f.active }

type fakeDownloads struct {
	calls []call
}

func (f *fakeDownloads) GetAll() []entity.DownloadStatus {
	return []entity.DownloadStatus{{ID: "dl-1", Filename: "a.bin", State: entity.DownloadCompleted}}
}
func (f *fakeDownloads) Open(_ context.Context, id entity.DownloadID) {
	f.calls = append(f.calls, call{op: "open", id: string(id)})
}
func (f *fakeDownloads) ShowInFolder(_ context.Context, id entity.DownloadID) {
	f.calls = append(f.calls, call{op: "show", id: string(id)})
}
func (f *fakeDownloads) Remove(_ context.Context, id entity.DownloadID) {
	f.calls = append(f.calls, call{op: "remove", id: string(id)})
}
func (f *fakeDownloads) ClearCompleted(context.Context) []entity.DownloadID {
	f.calls = append(f.calls, call{op: "clear"})
	return []entity.DownloadID{"dl-1"}
}
func (f *fakeDownloads) Cancel(_ context.Context, id entity.DownloadID) {
	f.calls = append(f.calls, call{op: "cancel", id: string(id)})
}

type fakePanel struct {
	hides, toggles int
}

func (p *fakePanel) Hide(context.Context)   { p.hides++ }
func (p *fakePanel) Toggle(context.Context) { p.toggles++ }

func handle(t *testing.T, r *messaging.Router, request string) string {
	t.Helper()
	return string(r.Handle(context.Background(), []byte(request)))
}

func TestRegisterTabs(t *testing.T) {
	tabs := &fakeTabs{}
	router := messaging.NewRouter()
	RegisterTabs(router, tabs, "about:blank")

	assert.JSONEq(t,
		`{"id":1,"result":[{"id":"tab-1","url":"https://example.com","title":"Example","canGoBack":false,"canGoForward":false,"isLoading":false}]}`,
		handle(t, router, `{"id":1,"command":"tab:getAll"}`))

	assert.JSONEq(t, `{"id":1,"result":null}`, handle(t, router, `{"id":1,"command":"tab:getActive"}`))
	tabs.active = "tab-1"
	assert.JSONEq(t, `{"id":1,"result":"tab-1"}`, handle(t, router, `{"id":1,"command":"tab:getActive"}`))

	for _, cmd := range []string{"switch", "close", "back", "forward", "reload"} {
		assert.JSONEq(t, `{"id":2,"result":null}`,
			handle(t, router, `{"id":2,"command":"tab:`+cmd+`","args":["tab-1"]}`))
	}
	assert.JSONEq(t, `{"id":3,"result":null}`,
		handle(t, router, `{"id":3,"command":"tab:navigate","args":["tab-1","go.dev"]}`))

	assert.Equal(t, []call{
		{op: "switch", id: "tab-1"},
		{op: "close", id: "tab-1"},
		{op: "back", id: "tab-1"},
		{op: "forward", id: "tab-1"},
		{op: "reload", id: "tab-1"},
		{op: "navigate", id: "tab-1", url: "https://go.dev"},
	}, tabs.calls)
}

func TestRegisterTabs_BadArguments(t *testing.T) {
	tabs := &fakeTabs{}
	router := messaging.NewRouter()
	RegisterTabs(router, tabs, "about:blank")

	reply := handle(t, router, `{"id":1,"command":"tab:navigate","args":["tab-1"]}`)
	assert.Contains(t, reply, "bad arguments")

	reply = handle(t, router, `{"id":2,"command":"tab:switch"}`)
	assert.Contains(t, reply, "bad arguments")
	assert.Empty(t, tabs.calls)
}

func TestRegisterTabs_Create(t *testing.T) {
	tabs := &fakeTabs{}
	router := messaging.NewRouter()
	RegisterTabs(router, tabs, "https://start.example")

	assert.JSONEq(t, `{"id":1,"result":"tab-new"}`,
		handle(t, router, `{"id":1,"command":"tab:create"}`))
	assert.JSONEq(t, `{"id":2,"result":"tab-new"}`,
		handle(t, router, `{"id":2,"command":"tab:create","args":["go.dev"]}`))

	require.Len(t, tabs.calls, 4)
	assert.Equal(t, call{op: "create", url: "https://start.example"}, tabs.calls[0])
	assert.Equal(t, call{op: "switch", id: "tab-new"}, tabs.calls[1])
	assert.Equal(t, call{op: "create", url: "https://go.dev"}, tabs.calls[2])

	tabs.createErr = errors.New("no surface")
	assert.JSONEq(t, `{"id":3,"result":null,"error":"no surface"}`,
		handle(t, router, `{"id":3,"command":"tab:create"}`))
}

func TestRegisterDownloads(t *testing.T) {
	downloads := &fakeDownloads{}
	panel := &fakePanel{}
	router := messaging.NewRouter()
	RegisterDownloads(router, downloads, panel)

	reply := handle(t, router, `{"id":1,"command":"download:getAll"}`)
	assert.Contains(t, reply, `"filename":"a.bin"`)
	assert.Contains(t, reply, `"state":"completed"`)

	for _, cmd := range []string{"open", "show", "remove", "cancel"} {
		assert.JSONEq(t, `{"id":2,"result":null}`,
			handle(t, router, `{"id":2,"command":"download:`+cmd+`","args":["dl-1"]}`))
	}
	assert.JSONEq(t, `{"id":3,"result":["dl-1"]}`,
		handle(t, router, `{"id":3,"command":"download:clear"}`))
	assert.JSONEq(t, `{"id":4,"result":["dl-1"]}`,
		handle(t, router, `{"id":4,"command":"download:clearCompleted"}`))

	handle(t, router, `{"id":5,"command":"download:togglePanel"}`)
	handle(t, router, `{"id":6,"command":"download:hide"}`)

	assert.Equal(t, []call{
		{op: "open", id: "dl-1"},
		{op: "show", id: "dl-1"},
		{op: "remove", id: "dl-1"},
		{op: "cancel", id: "dl-1"},
		{op: "clear"},
		{op: "clear"},
	}, downloads.calls)
	assert.Equal(t, 1, panel.toggles)
	assert.Equal(t, 1, panel.hides)
}

func TestRegisterDownloads_NilPanel(t *testing.T) {
	router := messaging.NewRouter()
	RegisterDownloads(router, &fakeDownloads{}, nil)

	assert.JSONEq(t, `{"id":1,"result":null}`,
		handle(t, router, `{"id":1,"command":"download:togglePanel"}`))
}
