package title

import "sync"

// Manager owns one Engine per open tab. Tabs are fully independent;
// the manager only guards its own map, never individual engines.
type Manager struct {
	mu       sync.RWMutex
	settings Settings
	tabs     map[string]*Engine
	onChange func(tabID, title string)
}

// NewManager builds a manager. onChange, when non-nil, receives every
// visible title change with the owning tab's id.
func NewManager(settings Settings, onChange func(tabID, title string)) *Manager {
	return &Manager{
		settings: settings,
		tabs:     make(map[string]*Engine),
		onChange: onChange,
	}
}

// Tab returns the engine for a tab id, creating it on first use.
func (m *Manager) Tab(id string) *Engine {
	m.mu.RLock()
	engine, ok := m.tabs[id]
	m.mu.RUnlock()
	if ok {
		return engine
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if engine, ok := m.tabs[id]; ok {
		return engine
	}
	var notify func(string)
	if m.onChange != nil {
		onChange := m.onChange
		notify = func(title string) { onChange(id, title) }
	}
	engine = NewEngine(m.settings, notify)
	m.tabs[id] = engine
	return engine
}

// CloseTab discards a tab's engine and cancels its pending timer.
func (m *Manager) CloseTab(id string) {
	m.mu.Lock()
	engine, ok := m.tabs[id]
	delete(m.tabs, id)
	m.mu.Unlock()
	if ok {
		engine.Close()
	}
}

// Reconfigure replaces the settings for tabs created after the call.
// Existing tabs keep their settings until closed; a config reload
// recreates tab engines wholesale.
func (m *Manager) Reconfigure(settings Settings) {
	m.mu.Lock()
	m.settings = settings
	m.mu.Unlock()
}

// Reset closes every tab engine.
func (m *Manager) Reset() {
	m.mu.Lock()
	tabs := m.tabs
	m.tabs = make(map[string]*Engine)
	m.mu.Unlock()
	for _, engine := range tabs {
		engine.Close()
	}
}
