package keybind

import (
	"strings"

	"github.com/termyhq/termy/internal/config"
	"github.com/termyhq/termy/internal/diag"
)

// DirectiveKind discriminates the three keybind directive forms.
type DirectiveKind int

const (
	// DirectiveClear empties the binding table, defaults included.
	DirectiveClear DirectiveKind = iota
	// DirectiveBind sets or overwrites the binding for a trigger.
	DirectiveBind
	// DirectiveUnbind removes the binding for a trigger if present.
	DirectiveUnbind
)

// Directive is one parsed keybind instruction, in config file order.
type Directive struct {
	Kind    DirectiveKind
	Trigger string // canonical, secondary alias preserved
	Action  Action // set for DirectiveBind only
}

// ParseDirectives turns the raw keybind lines collected by the config
// parser into ordered directives. Lines that fail the grammar are dropped
// with a diagnostic; parsing always continues.
//
// Grammar per line: `clear`, `<trigger>=<action>`, or `<trigger>=unbind`.
func ParseDirectives(lines []config.KeybindLine) ([]Directive, []diag.Diagnostic) {
	var directives []Directive
	var diags []diag.Diagnostic

	for _, line := range lines {
		value := strings.TrimSpace(line.Value)
		if value == "" {
			diags = append(diags, diag.Newf(diag.ParseWarning, line.Number, "empty keybind value"))
			continue
		}

		if strings.EqualFold(value, "clear") {
			directives = append(directives, Directive{Kind: DirectiveClear})
			continue
		}

		sep := strings.LastIndex(value, "=")
		if sep < 0 {
			diags = append(diags, diag.Newf(diag.ParseWarning, line.Number,
				"expected `keybind = <trigger>=<action>` or `keybind = clear`"))
			continue
		}

		triggerRaw := strings.TrimSpace(value[:sep])
		actionRaw := strings.TrimSpace(value[sep+1:])
		if triggerRaw == "" || actionRaw == "" {
			diags = append(diags, diag.Newf(diag.ParseWarning, line.Number,
				"keybind trigger and action must both be non-empty"))
			continue
		}

		// `=` separates trigger from action, so `cmd-=zoom_in` means the
		// equals key. A trailing single dash stands for it; `cmd--` is
		// still the minus key.
		if strings.HasSuffix(triggerRaw, "-") && !strings.HasSuffix(triggerRaw, "--") {
			triggerRaw += "="
		}

		if strings.EqualFold(actionRaw, "unbind") {
			trigger, err := CanonicalizeTrigger(triggerRaw)
			if err != nil {
				diags = append(diags, diag.Newf(diag.UnknownTrigger, line.Number, "%v", err))
				continue
			}
			directives = append(directives, Directive{Kind: DirectiveUnbind, Trigger: trigger})
			continue
		}

		action, ok := ActionFromName(actionRaw)
		if !ok {
			diags = append(diags, diag.Newf(diag.UnknownAction, line.Number,
				"unknown keybind action %q; expected one of: %s",
				actionRaw, strings.Join(ActionNames(), ", ")))
			continue
		}

		trigger, err := CanonicalizeTrigger(triggerRaw)
		if err != nil {
			diags = append(diags, diag.Newf(diag.UnknownTrigger, line.Number, "%v", err))
			continue
		}

		directives = append(directives, Directive{Kind: DirectiveBind, Trigger: trigger, Action: action})
	}

	return directives, diags
}
