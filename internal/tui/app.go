package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	mouse   bool
}

// New creates a new TUI application
func New(opts Options) *App {
	return &App{
		model: NewModel(opts),
		mouse: opts.Mouse,
	}
}

// Run starts the TUI application and returns the selection it ended with.
func (a *App) Run() (facet.Selection, error) {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	a.program = tea.NewProgram(a.model, progOpts...)

	// Set up signal handling so the terminal is restored on termination
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)

	// The store is shared with every copy of the model, so the initial model
	// sees the final selection.
	return a.model.Selection(), err
}

// Render returns a single frame with the drawer open, for output that is not
// a terminal. A zero width leaves lines at their natural width.
func Render(opts Options, width int) string {
	m := NewModel(opts)
	m.width = width
	m.panel.SetFrame(m.frame())
	m.panel, _ = m.panel.Dispatch(facet.OpenDrawer{})
	return m.View()
}
