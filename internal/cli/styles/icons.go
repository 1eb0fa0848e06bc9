package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconInfo      = "\uf05a" // info
	IconFolder    = "\uf07b" // folder
	IconConfig    = "\ue615" // config
	IconCursor    = "\uf105" // angle right
)
