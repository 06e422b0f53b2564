package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khawla-14/markyticket/internal/ticket"
)

// ValidateModel scans ticket codes at boarding.
type ValidateModel struct {
	CommonModel
	ticketService *ticket.Service
	receiverID    int64

	codeInput textinput.Model
	last      *ticket.Ticket
	status    string
	err       error
	count     int
}

func NewValidateModel(svc *ticket.Service, receiverID int64) ValidateModel {
	ti := textinput.New()
	ti.Placeholder = "ticket code"
	ti.Width = 40
	ti.Focus()

	return ValidateModel{
		ticketService: svc,
		receiverID:    receiverID,
		codeInput:     ti,
	}
}

func (m ValidateModel) Title() string { return "Validate Tickets" }

func (m ValidateModel) ShortHelp() string { return "Enter: validate | Esc: back" }

func (m ValidateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ValidateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			code := strings.TrimSpace(m.codeInput.Value())
			if code == "" {
				return m, nil
			}

			m.status = "Validating..."

			return m, m.validateCmd(code)
		}

	case validateResultMsg:
		m.last = msg.ticket
		m.err = msg.err
		m.status = ""

		if msg.err == nil {
			m.count++
			m.codeInput.Reset()
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)

	return m, cmd
}

func (m ValidateModel) View() string {
	lines := []string{
		headerStyle.Render("Validate ticket"),
		"",
		m.codeInput.View(),
		"",
	}

	switch {
	case m.status != "":
		lines = append(lines, m.status)
	case m.err != nil:
		lines = append(lines, errorStyle.Render("REFUSED: "+describeError(m.err)))
	case m.last != nil:
		lines = append(lines, successStyle.Render(fmt.Sprintf("OK %s: client %d, trajet %d",
			m.last.Code, m.last.ClientID, m.last.TrajetID)))
	}

	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("Validated this session: %d", m.count)))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

type validateResultMsg struct {
	ticket *ticket.Ticket
	err    error
}

func (m ValidateModel) validateCmd(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		t, err := m.ticketService.Validate(ctx, code, m.receiverID)

		return validateResultMsg{ticket: t, err: err}
	}
}
