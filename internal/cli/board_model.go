package cli

import (
	"context"

	"github.com/alexanderramin/weekboard/internal/cli/formatter"
	"github.com/alexanderramin/weekboard/internal/domain"
	"github.com/alexanderramin/weekboard/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type boardKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	NextWeek  key.Binding
	PrevWeek  key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		MoveLeft:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "move left")),
		MoveRight: key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "move right")),
		MoveUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		NextWeek:  key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n", "next week")),
		PrevWeek:  key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p", "prev week")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is the bubbletea model for the interactive board. The cursor
// follows a task across moves so repeated presses keep dragging it.
type boardModel struct {
	app     *App
	keys    boardKeyMap
	columns []string

	col    int
	row    int
	status string
}

func newBoardModel(app *App) boardModel {
	return boardModel{
		app:     app,
		keys:    defaultBoardKeyMap(),
		columns: store.WeekdayColumns,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.col < len(m.columns)-1 {
			m.col++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.columnTasks())-1 {
			m.row++
		}

	case key.Matches(keyMsg, m.keys.MoveUp):
		m = m.moveWithin(-1)
	case key.Matches(keyMsg, m.keys.MoveDown):
		m = m.moveWithin(+1)
	case key.Matches(keyMsg, m.keys.MoveLeft):
		m = m.moveAcross(-1)
	case key.Matches(keyMsg, m.keys.MoveRight):
		m = m.moveAcross(+1)

	case key.Matches(keyMsg, m.keys.Toggle):
		if task, ok := m.selectedTask(); ok {
			m.status = errText(m.app.Coordinator.ToggleComplete(context.Background(), task.ID))
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			m.status = errText(m.app.Coordinator.DeleteTask(context.Background(), task.ID))
		}

	case key.Matches(keyMsg, m.keys.NextWeek):
		m.app.Coordinator.NextWeek()
	case key.Matches(keyMsg, m.keys.PrevWeek):
		m.app.Coordinator.PreviousWeek()
	case key.Matches(keyMsg, m.keys.Today):
		m.app.Coordinator.ThisWeek()
	}

	m = m.clampCursor()
	return m, nil
}

// moveWithin drags the selected task one slot up or down its column.
func (m boardModel) moveWithin(delta int) boardModel {
	task, ok := m.selectedTask()
	if !ok {
		return m
	}
	tasks := m.columnTasks()
	over := m.row + delta
	if over < 0 || over >= len(tasks) {
		return m
	}
	err := m.app.Coordinator.HandleDrop(context.Background(), task.ID, tasks[over].ID, m.columns)
	m.status = errText(err)
	if err == nil {
		m.row = over
	}
	return m
}

// moveAcross drags the selected task to the adjacent column, keeping its
// vertical position where possible.
func (m boardModel) moveAcross(delta int) boardModel {
	task, ok := m.selectedTask()
	if !ok {
		return m
	}
	target := m.col + delta
	if target < 0 || target >= len(m.columns) {
		return m
	}
	err := m.app.Coordinator.MoveTask(context.Background(), task.ID, m.columns[target], m.row)
	m.status = errText(err)
	if err == nil {
		m.col = target
	}
	return m
}

func (m boardModel) View() string {
	st := m.app.Store.State()

	selectedID := ""
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}

	out := formatter.RenderBoard(st.Tasks, st.CurrentWeek, m.columns, selectedID)
	out += "\n" + formatter.Dim("h/j/k/l move cursor · H/J/K/L drag task · space toggle · x delete · n/p/t week · q quit")
	if m.status != "" {
		out += "\n" + formatter.StyleRed.Render(m.status)
	} else if st.Err != "" {
		out += "\n" + formatter.StyleRed.Render(st.Err)
	}
	return out + "\n"
}

func (m boardModel) columnTasks() []domain.Task {
	return m.app.Store.State().ColumnTasks(m.columns[m.col])
}

func (m boardModel) selectedTask() (domain.Task, bool) {
	tasks := m.columnTasks()
	if m.row < 0 || m.row >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.row], true
}

func (m boardModel) clampCursor() boardModel {
	if m.col < 0 {
		m.col = 0
	}
	if m.col >= len(m.columns) {
		m.col = len(m.columns) - 1
	}
	if n := len(m.columnTasks()); m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	return m
}

func errText(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
