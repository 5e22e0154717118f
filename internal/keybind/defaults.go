package keybind

// DefaultBindings returns the built-in binding table for a platform,
// keyed by canonical trigger with the secondary alias already resolved.
// The map is freshly allocated so callers may mutate it.
func DefaultBindings(goos string) map[string]Action {
	defaults := map[string]Action{
		"secondary-q":       ActionQuit,
		"secondary-,":       ActionOpenSettings,
		"secondary-p":       ActionToggleCommandPalette,
		"secondary-t":       ActionNewTab,
		"secondary-w":       ActionCloseTab,
		"secondary-=":       ActionZoomIn,
		"secondary-+":       ActionZoomIn,
		"secondary--":       ActionZoomOut,
		"secondary-0":       ActionZoomReset,
		"secondary-f":       ActionOpenSearch,
		"secondary-g":       ActionSearchNext,
		"secondary-shift-g": ActionSearchPrevious,
	}

	switch goos {
	case "darwin", "windows":
		defaults["secondary-c"] = ActionCopy
		defaults["secondary-v"] = ActionPaste
	default:
		defaults["ctrl-shift-c"] = ActionCopy
		defaults["ctrl-shift-v"] = ActionPaste
	}
	if goos == "darwin" {
		defaults["secondary-m"] = ActionMinimizeWindow
	}

	resolved := make(map[string]Action, len(defaults))
	for trigger, action := range defaults {
		resolved[ResolveSecondary(trigger, goos)] = action
	}
	return resolved
}
