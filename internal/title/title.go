// Package title computes per-tab display titles. Each tab owns an
// Engine: a small state machine fed by rename requests, shell
// integration payloads, and plain OSC titles, resolving the visible
// title under a configurable source priority.
package title

import (
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/termyhq/termy/internal/config"
)

const (
	// commandTitleDelay holds back command titles so commands that
	// finish quickly never flash the tab title.
	commandTitleDelay = 250 * time.Millisecond

	// maxTitleCells caps rendered titles at 96 terminal cells.
	maxTitleCells = 96

	// DefaultFallback is used when the configured fallback is blank.
	DefaultFallback = "Terminal"
)

// Source identifies one of a tab's four title sources.
type Source string

const (
	SourceManual   Source = "manual"
	SourceExplicit Source = "explicit"
	SourceShell    Source = "shell"
	SourceFallback Source = "fallback"
)

// Settings is the title-related slice of the configuration.
type Settings struct {
	Mode           config.TitleMode
	Priority       []Source // overrides Mode's preset when non-empty
	Fallback       string
	ExplicitPrefix string
	PromptFormat   string
	CommandFormat  string
}

// SettingsFromOptions extracts title settings from parsed options.
func SettingsFromOptions(opts config.Options) Settings {
	priority := make([]Source, 0, len(opts.TabTitlePriority))
	for _, name := range opts.TabTitlePriority {
		priority = append(priority, Source(name))
	}
	return Settings{
		Mode:           opts.TabTitleMode,
		Priority:       priority,
		Fallback:       opts.TabTitleFallback,
		ExplicitPrefix: opts.TabTitleExplicitPrefix,
		PromptFormat:   opts.TabTitlePromptFormat,
		CommandFormat:  opts.TabTitleCommandFormat,
	}
}

// priority returns the effective source order.
func (s Settings) priority() []Source {
	if len(s.Priority) > 0 {
		return s.Priority
	}
	switch s.Mode {
	case config.TitleShell:
		return []Source{SourceManual, SourceShell, SourceFallback}
	case config.TitleExplicit:
		return []Source{SourceManual, SourceExplicit, SourceFallback}
	case config.TitleStatic:
		return []Source{SourceManual, SourceFallback}
	default: // smart
		return []Source{SourceManual, SourceExplicit, SourceShell, SourceFallback}
	}
}

func (s Settings) fallbackTitle() string {
	if fallback := strings.TrimSpace(s.Fallback); fallback != "" {
		return fallback
	}
	return DefaultFallback
}

// SourceState is a snapshot of one title source.
type SourceState struct {
	Value   string
	Updated time.Time
}

// Engine is the per-tab title state machine. All methods are safe for
// concurrent use, though events for one tab normally arrive serialized.
type Engine struct {
	mu       sync.Mutex
	settings Settings

	manual   SourceState
	explicit SourceState
	shell    SourceState
	lastCwd  string
	running  bool

	// A pending command title is promoted only if no newer event bumped
	// the token while the timer ran.
	pendingToken  uint64
	pendingTitle  string
	pendingTarget Source

	delay    time.Duration
	now      func() time.Time
	onChange func(string)
}

// NewEngine builds an engine for one tab. onChange, when non-nil, is
// called with the resolved title after every visible change, including
// debounce expiry; it runs without the engine lock held.
func NewEngine(settings Settings, onChange func(string)) *Engine {
	return &Engine{
		settings: settings,
		delay:    commandTitleDelay,
		now:      time.Now,
		onChange: onChange,
	}
}

// Title returns the currently resolved title. It is total: the fallback
// guarantees a non-empty result.
func (e *Engine) Title() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolveLocked()
}

func (e *Engine) resolveLocked() string {
	for _, source := range e.settings.priority() {
		var candidate string
		switch source {
		case SourceManual:
			candidate = e.manual.Value
		case SourceExplicit:
			candidate = e.explicit.Value
		case SourceShell:
			candidate = e.shell.Value
		case SourceFallback:
			candidate = e.settings.fallbackTitle()
		}
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return truncateTitle(candidate)
		}
	}
	return truncateTitle(e.settings.fallbackTitle())
}

// Rename sets the manual title. An empty or blank text clears the
// manual source, falling through to the next priority.
func (e *Engine) Rename(text string) {
	e.mu.Lock()
	e.manual = SourceState{Value: truncateTitle(text), Updated: e.now()}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

// HandleTitle ingests an OSC window title. Titles carrying the explicit
// prefix are parsed as shell-integration payloads; anything else
// updates the shell source directly.
func (e *Engine) HandleTitle(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if prefix := strings.TrimSpace(e.settings.ExplicitPrefix); prefix != "" {
		if payload, ok := strings.CutPrefix(text, prefix); ok {
			e.handlePayload(strings.TrimSpace(payload))
			return
		}
	}

	e.mu.Lock()
	e.shell = SourceState{Value: truncateTitle(text), Updated: e.now()}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

func (e *Engine) handlePayload(payload string) {
	if payload == "" {
		return
	}
	if cwd, ok := strings.CutPrefix(payload, "prompt:"); ok {
		e.ExplicitPrompt(strings.TrimSpace(cwd))
		return
	}
	if cmdline, ok := strings.CutPrefix(payload, "command:"); ok {
		e.ExplicitCommand(strings.TrimSpace(cmdline))
		return
	}
	text, _ := strings.CutPrefix(payload, "title:")
	e.ExplicitTitle(strings.TrimSpace(text))
}

// ExplicitPrompt records a shell prompt: the command (if any) finished,
// so any pending command title is cancelled and the prompt template
// becomes the explicit title immediately.
func (e *Engine) ExplicitPrompt(cwd string) {
	if cwd == "" {
		return
	}
	e.mu.Lock()
	e.lastCwd = cwd
	e.running = false
	e.cancelPendingLocked()
	e.explicit = SourceState{
		Value:   truncateTitle(e.renderLocked(e.settings.PromptFormat, cwd, "")),
		Updated: e.now(),
	}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

// ExplicitCommand records a started command. The rendered title is not
// surfaced until the promotion delay elapses; a prompt arriving first
// cancels it.
func (e *Engine) ExplicitCommand(cmdline string) {
	if cmdline == "" {
		return
	}
	e.mu.Lock()
	e.running = true
	e.schedulePendingLocked(SourceExplicit,
		truncateTitle(e.renderLocked(e.settings.CommandFormat, e.lastCwd, cmdline)))
	e.mu.Unlock()
}

// ExplicitTitle sets the explicit title verbatim.
func (e *Engine) ExplicitTitle(text string) {
	if text == "" {
		return
	}
	e.mu.Lock()
	e.cancelPendingLocked()
	e.explicit = SourceState{Value: truncateTitle(text), Updated: e.now()}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

// ShellPrompt records a prompt reported by shell integration against
// the shell source.
func (e *Engine) ShellPrompt(cwd string) {
	if cwd == "" {
		return
	}
	e.mu.Lock()
	e.lastCwd = cwd
	e.running = false
	e.cancelPendingLocked()
	e.shell = SourceState{
		Value:   truncateTitle(e.renderLocked(e.settings.PromptFormat, cwd, "")),
		Updated: e.now(),
	}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

// ShellCommand records a started command against the shell source,
// debounced like ExplicitCommand.
func (e *Engine) ShellCommand(cmdline string) {
	if cmdline == "" {
		return
	}
	e.mu.Lock()
	e.running = true
	e.schedulePendingLocked(SourceShell,
		truncateTitle(e.renderLocked(e.settings.CommandFormat, e.lastCwd, cmdline)))
	e.mu.Unlock()
}

// ClearTitles drops the shell and explicit sources and any pending
// promotion. The manual title survives; clearing is not a rename.
func (e *Engine) ClearTitles() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.running = false
	e.shell = SourceState{}
	e.explicit = SourceState{}
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

// RunningProcess reports whether a shell command is believed to be
// running (a command event arrived after the last prompt).
func (e *Engine) RunningProcess() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Sources returns a snapshot of the manual, explicit, and shell
// sources.
func (e *Engine) Sources() map[Source]SourceState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return map[Source]SourceState{
		SourceManual:   e.manual,
		SourceExplicit: e.explicit,
		SourceShell:    e.shell,
	}
}

// Close cancels any pending promotion timer.
func (e *Engine) Close() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.mu.Unlock()
}

func (e *Engine) renderLocked(template, cwd, command string) string {
	out := strings.ReplaceAll(template, "{cwd}", cwd)
	return strings.ReplaceAll(out, "{command}", command)
}

func (e *Engine) schedulePendingLocked(target Source, rendered string) {
	e.pendingToken++
	e.pendingTitle = rendered
	e.pendingTarget = target
	token := e.pendingToken
	time.AfterFunc(e.delay, func() { e.promote(token) })
}

// cancelPendingLocked bumps the token so an already-fired timer applies
// nothing.
func (e *Engine) cancelPendingLocked() {
	e.pendingToken++
	e.pendingTitle = ""
}

func (e *Engine) promote(token uint64) {
	e.mu.Lock()
	if token != e.pendingToken || e.pendingTitle == "" {
		e.mu.Unlock()
		return
	}
	state := SourceState{Value: e.pendingTitle, Updated: e.now()}
	switch e.pendingTarget {
	case SourceShell:
		e.shell = state
	default:
		e.explicit = state
	}
	e.pendingTitle = ""
	title := e.resolveLocked()
	e.mu.Unlock()
	e.notify(title)
}

func (e *Engine) notify(title string) {
	if e.onChange != nil {
		e.onChange(title)
	}
}

// truncateTitle collapses all whitespace to single spaces and caps the
// result at maxTitleCells display cells, so multi-line or very long
// shell titles cannot break the tab layout.
func truncateTitle(title string) string {
	normalized := strings.Join(strings.Fields(title), " ")
	return runewidth.Truncate(normalized, maxTitleCells, "")
}
