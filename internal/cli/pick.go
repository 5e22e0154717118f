package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newThemesPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a theme interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdoutIsTTY() {
				return fmt.Errorf("themes pick needs an interactive terminal (use `termy themes set`)")
			}

			infos, err := listThemes()
			if err != nil {
				return err
			}

			items := make([]list.Item, len(infos))
			initial := 0
			for i, info := range infos {
				items[i] = themeItem{info: info}
				if info.Current {
					initial = i
				}
			}

			model := newPickerModel(items, initial)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}

			picked := final.(pickerModel)
			if picked.choice == "" {
				return nil
			}
			return setTheme(picked.choice)
		},
	}
}

type themeItem struct {
	info themeInfo
}

func (t themeItem) Title() string { return t.info.ID }

func (t themeItem) Description() string {
	switch {
	case t.info.Current:
		return "current theme"
	case t.info.Builtin:
		return "built-in"
	default:
		return "user theme"
	}
}

func (t themeItem) FilterValue() string { return t.info.ID }

type pickerModel struct {
	list   list.Model
	choice string
}

func newPickerModel(items []list.Item, initial int) pickerModel {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pick a theme"
	l.SetShowStatusBar(false)
	l.Select(initial)
	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frame := lipgloss.NewStyle().Margin(1, 2)
		h, v := frame.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(themeItem); ok {
				m.choice = item.info.ID
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View())
}
