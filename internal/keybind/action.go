// Package keybind resolves keyboard shortcut bindings: a built-in default
// table replayed against the ordered keybind directives from the config
// file yields the final trigger-to-action map.
package keybind

import "strings"

// Action is one of the fixed set of commands a shortcut can invoke.
type Action string

const (
	ActionQuit                      Action = "quit"
	ActionOpenConfig                Action = "open_config"
	ActionOpenSettings              Action = "open_settings"
	ActionToggleCommandPalette      Action = "toggle_command_palette"
	ActionNewTab                    Action = "new_tab"
	ActionCloseTab                  Action = "close_tab"
	ActionRenameTab                 Action = "rename_tab"
	ActionCopy                      Action = "copy"
	ActionPaste                     Action = "paste"
	ActionZoomIn                    Action = "zoom_in"
	ActionZoomOut                   Action = "zoom_out"
	ActionZoomReset                 Action = "zoom_reset"
	ActionOpenSearch                Action = "open_search"
	ActionCloseSearch               Action = "close_search"
	ActionSearchNext                Action = "search_next"
	ActionSearchPrevious            Action = "search_previous"
	ActionToggleSearchCaseSensitive Action = "toggle_search_case_sensitive"
	ActionToggleSearchRegex         Action = "toggle_search_regex"
	ActionImportColors              Action = "import_colors"
	ActionSwitchTheme               Action = "switch_theme"
	ActionAppInfo                   Action = "app_info"
	ActionRestartApp                Action = "restart_app"
	ActionCheckForUpdates           Action = "check_for_updates"
	ActionMinimizeWindow            Action = "minimize_window"
)

var allActions = []Action{
	ActionQuit,
	ActionOpenConfig,
	ActionOpenSettings,
	ActionToggleCommandPalette,
	ActionNewTab,
	ActionCloseTab,
	ActionRenameTab,
	ActionCopy,
	ActionPaste,
	ActionZoomIn,
	ActionZoomOut,
	ActionZoomReset,
	ActionOpenSearch,
	ActionCloseSearch,
	ActionSearchNext,
	ActionSearchPrevious,
	ActionToggleSearchCaseSensitive,
	ActionToggleSearchRegex,
	ActionImportColors,
	ActionSwitchTheme,
	ActionAppInfo,
	ActionRestartApp,
	ActionCheckForUpdates,
	ActionMinimizeWindow,
}

// Actions returns every action in declaration order.
func Actions() []Action {
	return allActions
}

// ActionNames returns the config names of all actions.
func ActionNames() []string {
	names := make([]string, len(allActions))
	for i, action := range allActions {
		names[i] = string(action)
	}
	return names
}

// ActionFromName parses a config action name. Dashes are accepted in
// place of underscores.
func ActionFromName(name string) (Action, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, action := range allActions {
		if string(action) == normalized {
			return action, true
		}
	}
	return "", false
}
