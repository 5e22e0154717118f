// Package shellenv derives the environment variables termy exports to
// child shells.
package shellenv

import (
	"fmt"

	"github.com/termyhq/termy/internal/config"
)

// TermProgram is the TERM_PROGRAM value child shells see.
const TermProgram = "termy"

// Environ returns the KEY=VALUE pairs exported to a child shell, in a
// fixed order suitable for appending to os.Environ().
func Environ(opts config.Options) []string {
	env := []string{
		"TERM=" + opts.Term,
	}
	if opts.Colorterm != "" {
		env = append(env, "COLORTERM="+opts.Colorterm)
	}
	env = append(env, "TERM_PROGRAM="+TermProgram)

	if opts.TabTitleShellIntegration {
		env = append(env, "TERMY_SHELL_INTEGRATION=1")
		if opts.TabTitleExplicitPrefix != "" {
			env = append(env, fmt.Sprintf("TERMY_TAB_TITLE_PREFIX=%s", opts.TabTitleExplicitPrefix))
		}
	} else {
		env = append(env, "TERMY_SHELL_INTEGRATION=0")
	}
	return env
}
