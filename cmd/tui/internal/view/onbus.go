package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/khawla-14/markyticket/internal/ticket"
)

type onBusState int

const (
	onBusStateLoading onBusState = iota
	onBusStateOffer
	onBusStateSell
	onBusStateSelling
	onBusStateResult
)

// OnBusModel shows the code of the receiver's running trajet and sells
// tickets on board against it.
type OnBusModel struct {
	CommonModel
	ticketService *ticket.Service
	receiverID    int64

	state   onBusState
	spinner spinner.Model
	offer   *ticket.OnBusOffer
	sold    *ticket.Ticket
	err     error

	form *huh.Form
}

func NewOnBusModel(svc *ticket.Service, receiverID int64) OnBusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return OnBusModel{
		ticketService: svc,
		receiverID:    receiverID,
		spinner:       s,
	}
}

func (m OnBusModel) Title() string { return "On-bus Sale" }

func (m OnBusModel) ShortHelp() string {
	switch m.state {
	case onBusStateOffer:
		return "s: sell to client | r: refresh | Esc: back"
	case onBusStateSell:
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back"
}

func (m OnBusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.offerCmd())
}

func (m OnBusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case offerResultMsg:
		m.state = onBusStateOffer
		m.offer = msg.offer
		m.err = msg.err

		if msg.err != nil {
			m.state = onBusStateResult
		}

		return m, nil

	case sellResultMsg:
		m.state = onBusStateResult
		m.sold = msg.ticket
		m.err = msg.err

		return m, nil
	}

	switch m.state {
	case onBusStateLoading, onBusStateSelling:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case onBusStateOffer:
		return m.updateOffer(msg)

	case onBusStateSell:
		return m.updateSell(msg)

	case onBusStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			if m.offer == nil {
				return m, Back
			}

			m.state = onBusStateOffer
			m.sold = nil
			m.err = nil
		}
	}

	return m, nil
}

func (m OnBusModel) updateOffer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.state = onBusStateLoading
		return m, tea.Batch(m.spinner.Tick, m.offerCmd())
	case "s":
		m.form = buildClientForm()
		m.state = onBusStateSell

		return m, m.form.Init()
	}

	return m, nil
}

func (m OnBusModel) updateSell(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = onBusStateOffer
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	clientID, _ := strconv.ParseInt(strings.TrimSpace(m.form.GetString("client")), 10, 64)
	m.state = onBusStateSelling

	return m, tea.Batch(m.spinner.Tick, m.sellCmd(m.offer.Token, clientID))
}

func buildClientForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("client").
				Title("Client ID").
				Description("Client boarding with the on-bus code").
				Validate(ValidateID),
		),
	).WithWidth(50).WithShowHelp(false)
}

// ValidateID accepts positive numeric identifiers typed by the operator.
func ValidateID(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return errors.New("enter a positive number")
	}

	return nil
}

func (m OnBusModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case onBusStateLoading:
		return style.Render(fmt.Sprintf("%s Looking up the running trajet...", m.spinner.View()))
	case onBusStateSelling:
		return style.Render(fmt.Sprintf("%s Issuing ticket...", m.spinner.View()))
	case onBusStateOffer:
		return style.Render(m.viewOffer())
	case onBusStateSell:
		return style.Render(m.viewOffer() + "\n\n" + m.form.View())
	case onBusStateResult:
		return style.Render(m.viewResult())
	}

	return ""
}

func (m OnBusModel) viewOffer() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("Trajet #%d %s", m.offer.Trajet.ID, m.offer.Trajet.Name)),
		fmt.Sprintf("Price: %s", FormatAmount(m.offer.Trajet.Price)),
		"",
		"On-bus code:",
		m.offer.Token,
	)
}

func (m OnBusModel) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %s", describeError(m.err))) +
			mutedStyle.Render("\n\n(Esc to go back)")
	}

	return successStyle.Render(fmt.Sprintf("Ticket %s issued to client %d (%s)",
		m.sold.Code, m.sold.ClientID, FormatAmount(m.sold.Price))) +
		mutedStyle.Render("\n\n(Esc to go back)")
}

type offerResultMsg struct {
	offer *ticket.OnBusOffer
	err   error
}

type sellResultMsg struct {
	ticket *ticket.Ticket
	err    error
}

func (m OnBusModel) offerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		offer, err := m.ticketService.OfferOnBusCode(ctx, m.receiverID)

		return offerResultMsg{offer: offer, err: err}
	}
}

func (m OnBusModel) sellCmd(token string, clientID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		t, err := m.ticketService.RedeemOnBusCode(ctx, token, clientID)

		return sellResultMsg{ticket: t, err: err}
	}
}
