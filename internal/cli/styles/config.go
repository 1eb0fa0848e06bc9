package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/viewshell/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render(IconCheck + " exists")
	if !exists {
		status = r.theme.WarningStyle.Render(IconX + " not created yet")
	}
	return fmt.Sprintf("\n  %s Config %s  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderSchemaWritten renders the path of a generated schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("\n  %s Schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

type configEntry struct {
	key   string
	value string
}

type configSection struct {
	name    string
	entries []configEntry
}

// RenderConfig renders the effective configuration grouped by section.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n",
		r.theme.Title.Render("Effective configuration"),
		r.theme.Subtle.Render(path),
	))

	for _, section := range sectionsOf(cfg) {
		sb.WriteString("\n  " + r.theme.Badge.Render(section.name) + "\n")
		width := 0
		for _, e := range section.entries {
			width = max(width, len(e.key))
		}
		for _, e := range section.entries {
			sb.WriteString(fmt.Sprintf("    %s %s %s\n",
				r.theme.Subtle.Render(IconCursor),
				r.theme.Normal.Render(fmt.Sprintf("%-*s", width, e.key)),
				r.theme.Highlight.Render(e.value),
			))
		}
	}
	return sb.String()
}

func sectionsOf(cfg *config.Config) []configSection {
	itoa := strconv.Itoa
	startup := strings.Join(cfg.Tabs.StartupURLs, ", ")
	if startup == "" {
		startup = "(none)"
	}
	return []configSection{
		{name: "logging", entries: []configEntry{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
			{"enable_file_log", strconv.FormatBool(cfg.Logging.EnableFileLog)},
			{"log_dir", cfg.Logging.LogDir},
		}},
		{name: "window", entries: []configEntry{
			{"title", cfg.Window.Title},
			{"width", itoa(cfg.Window.Width)},
			{"height", itoa(cfg.Window.Height)},
		}},
		{name: "tabs", entries: []configEntry{
			{"header_height", itoa(cfg.Tabs.HeaderHeight)},
			{"startup_urls", startup},
			{"new_tab_url", cfg.Tabs.NewTabURL},
		}},
		{name: "session", entries: []configEntry{
			{"data_dir", cfg.Session.DataDir},
			{"cache_dir", cfg.Session.CacheDir},
		}},
		{name: "downloads", entries: []configEntry{
			{"temp_dir", cfg.Downloads.TempDir},
			{"max_concurrent_copies", itoa(cfg.Downloads.MaxConcurrentCopies)},
			{"panel_width", itoa(cfg.Downloads.PanelWidth)},
			{"panel_height", itoa(cfg.Downloads.PanelHeight)},
			{"panel_offset_right", itoa(cfg.Downloads.PanelOffsetRight)},
			{"panel_offset_top", itoa(cfg.Downloads.PanelOffsetTop)},
			{"hide_panel_on_blur", strconv.FormatBool(cfg.Downloads.HidePanelOnBlur)},
		}},
	}
}
