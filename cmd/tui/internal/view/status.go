package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khawla-14/markyticket/internal/ticket"
)

type StatusModel struct {
	CommonModel
	ticketService *ticket.Service

	codeInput textinput.Model
	ticket    *ticket.Ticket
	err       error
}

func NewStatusModel(svc *ticket.Service) StatusModel {
	ti := textinput.New()
	ti.Placeholder = "ticket code"
	ti.Width = 40
	ti.Focus()

	return StatusModel{
		ticketService: svc,
		codeInput:     ti,
	}
}

func (m StatusModel) Title() string { return "Ticket Status" }

func (m StatusModel) ShortHelp() string { return "Enter: look up | Esc: back" }

func (m StatusModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			if code := strings.TrimSpace(m.codeInput.Value()); code != "" {
				return m, m.lookupCmd(code)
			}
		}

	case statusResultMsg:
		m.ticket = msg.ticket
		m.err = msg.err

		return m, nil
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)

	return m, cmd
}

func (m StatusModel) View() string {
	lines := []string{headerStyle.Render("Ticket status"), "", m.codeInput.View(), ""}

	switch {
	case m.err != nil:
		lines = append(lines, errorStyle.Render("Error: "+describeError(m.err)))
	case m.ticket != nil:
		t := m.ticket
		lines = append(lines,
			fmt.Sprintf("Code:    %s", t.Code),
			fmt.Sprintf("Status:  %s", t.Status.Label()),
			fmt.Sprintf("Client:  %d", t.ClientID),
			fmt.Sprintf("Trajet:  %d", t.TrajetID),
			fmt.Sprintf("Price:   %s", FormatAmount(t.Price)),
			fmt.Sprintf("Issued:  %s", FormatTime(t.CreatedAt)),
		)

		if t.UpdatedAt != nil {
			lines = append(lines, fmt.Sprintf("Updated: %s", FormatTime(*t.UpdatedAt)))
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

type statusResultMsg struct {
	ticket *ticket.Ticket
	err    error
}

func (m StatusModel) lookupCmd(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		t, err := m.ticketService.GetStatus(ctx, code)

		return statusResultMsg{ticket: t, err: err}
	}
}
