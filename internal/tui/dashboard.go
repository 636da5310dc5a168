package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
)

func RunDashboard(ctx context.Context, svc *engine.Service, today string, out io.Writer) error {
	m := newDashModel(ctx, svc, today)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
