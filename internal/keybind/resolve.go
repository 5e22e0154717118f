package keybind

import "sort"

// Resolve folds the ordered directives over a fresh copy of the platform
// defaults. Clear empties the table, bind overwrites, unbind removes and
// is a no-op for absent triggers. The result depends only on the
// directive list and the platform.
func Resolve(directives []Directive, goos string) map[string]Action {
	bindings := DefaultBindings(goos)

	for _, d := range directives {
		switch d.Kind {
		case DirectiveClear:
			bindings = make(map[string]Action)
		case DirectiveBind:
			bindings[ResolveSecondary(d.Trigger, goos)] = d.Action
		case DirectiveUnbind:
			delete(bindings, ResolveSecondary(d.Trigger, goos))
		}
	}

	return bindings
}

// SortedTriggers returns the binding table's triggers in lexical order,
// for stable listing output.
func SortedTriggers(bindings map[string]Action) []string {
	triggers := make([]string, 0, len(bindings))
	for trigger := range bindings {
		triggers = append(triggers, trigger)
	}
	sort.Strings(triggers)
	return triggers
}
