package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binary-swipes/internal/config"
	"github.com/vovakirdan/binary-swipes/internal/core"
	"github.com/vovakirdan/binary-swipes/internal/registry"
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	GameID    string
	Title     string
	PickLevel bool // Opens the level picker before starting
}

// menuItems builds the menu from the registered modes.
func menuItems() []MenuItem {
	var items []MenuItem
	for _, g := range registry.List() {
		switch g.ID {
		case "swipes":
			items = append(items,
				MenuItem{GameID: g.ID, Title: "Campaign"},
				MenuItem{GameID: g.ID, Title: "Campaign from level...", PickLevel: true},
			)
		case "swipes_practice":
			items = append(items, MenuItem{GameID: g.ID, Title: "Practice a level...", PickLevel: true})
		default:
			items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
		}
	}
	return items
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	table          *config.LevelTable
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	level          int  // 0 means the mode's default start level
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. table supplies the rows shown
// in the level picker; nil means the default table.
func NewMenuModel(table *config.LevelTable, cfg core.RuntimeConfig) MenuModel {
	if table == nil {
		t := config.DefaultLevelTable()
		table = &t
	}
	return MenuModel{
		items:     menuItems(),
		table:     table,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		if m.items[m.cursor].PickLevel {
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < m.table.Len()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		m.level = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B I N A R Y   S W I P E S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("smaller ◀   find the number   ▶ larger", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i := range m.table.Len() {
		row := m.table.Get(i + 1)
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d.  depth %d  %4d-%-5d %4dms",
			cursor, row.Level, row.TreeDepth, row.MinValue, row.MaxValue, row.ApproachDuration)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Level returns the picked start level, 0 when none was picked.
func (m MenuModel) Level() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes what the user picked.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.quitting || m.selected == nil:
		result.Quit = true
	default:
		result.GameID = m.selected.GameID
		result.Level = m.level
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(table *config.LevelTable, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(table, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
