package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/hrpulse/internal/cli/formatter"
	"github.com/alexanderramin/hrpulse/internal/domain"
	"github.com/alexanderramin/hrpulse/internal/intelligence"
	"github.com/alexanderramin/hrpulse/internal/llm"
	"github.com/alexanderramin/hrpulse/internal/seed"
)

// App holds everything the commands read from. Main fills it in through
// Setup once the global flags are parsed; tests populate it directly.
type App struct {
	Dataset   *seed.Dataset
	Assistant *intelligence.Assistant
	Rationale *intelligence.RationaleService
	Messages  *intelligence.MessageService

	LLM    llm.LLMConfig
	Client llm.LLMClient
	Logger *slog.Logger

	// Now is the clock every tenure and potential calculation uses.
	Now func() time.Time

	IsInteractive func() bool

	Setup func(ctx context.Context, opts Options) error
}

// Options are the global flags.
type Options struct {
	ConfigPath  string
	DatasetPath string
	LogLevel    string
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) employee(id string) (*domain.Employee, error) {
	if a.Dataset == nil {
		return nil, errNoDataset
	}
	return a.Dataset.Employee(id)
}

func (a *App) employees() []*domain.Employee {
	if a.Dataset == nil {
		return nil
	}
	return a.Dataset.Employees()
}

// spin shows a spinner on w while a model call may be in flight. It is a
// no-op without a client or a terminal.
func (a *App) spin(w io.Writer, message string) func() {
	if a.Client == nil || !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(w, message)
}

var errNoDataset = errors.New("no dataset loaded")
