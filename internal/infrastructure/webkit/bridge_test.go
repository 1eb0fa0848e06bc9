package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/viewshell/internal/domain/entity"
)

func TestEventScript(t *testing.T) {
	script, err := EventScript("tab:closed", entity.TabID("tab-1"))
	require.NoError(t, err)
	assert.Equal(t, `window.viewshell && window.viewshell.__emit("tab:closed", "tab-1");`, script)

	script, err = EventScript("download:changed", nil)
	require.NoError(t, err)
	assert.Equal(t, `window.viewshell && window.viewshell.__emit("download:changed", null);`, script)
}

func TestEventScript_EscapesMarkup(t *testing.T) {
	title := "</script><script>alert(1)</script>"
	script, err := EventScript("tab:updated", entity.TabUpdate{ID: "tab-1", Title: &title})
	require.NoError(t, err)
	assert.NotContains(t, script, "</script>")
	assert.Contains(t, script, `\u003c/script\u003e`)
}

func TestEventScript_UnencodablePayload(t *testing.T) {
	_, err := EventScript("tab:updated", func() {})
	assert.Error(t, err)
}

func TestReplyScript(t *testing.T) {
	assert.Equal(t,
		`window.viewshell && window.viewshell.__reply({"id":1,"result":null});`,
		ReplyScript([]byte(`{"id":1,"result":null}`)))
	assert.Empty(t, ReplyScript(nil))
	assert.Empty(t, ReplyScript([]byte(`{"id":`)))
}
