package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/khawla-14/markyticket/cmd/tui/internal/view"
	"github.com/khawla-14/markyticket/internal/config"
	"github.com/khawla-14/markyticket/internal/database"
	"github.com/khawla-14/markyticket/internal/importer"
	"github.com/khawla-14/markyticket/internal/onbus"
	"github.com/khawla-14/markyticket/internal/ticket"
	ticketStore "github.com/khawla-14/markyticket/internal/ticket/store"
	"github.com/khawla-14/markyticket/internal/wallet"
	walletStore "github.com/khawla-14/markyticket/internal/wallet/store"
)

type model struct {
	ticketService *ticket.Service
	walletService *wallet.Service
	importService *importer.Service

	receiverID  int64
	receiverArg string
	loginForm   *huh.Form

	currentView View

	onBusView    view.OnBusModel
	validateView view.ValidateModel
	statusView   view.StatusModel
	topUpView    view.TopUpModel
}

type View int

const (
	ViewLogin    View = 0
	ViewMenu     View = 1
	ViewOnBus    View = 2
	ViewValidate View = 3
	ViewStatus   View = 4
	ViewTopUp    View = 5
)

func initialModel() *model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ticketSvc := ticket.NewService(
		ticketStore.New(db),
		onbus.NewCodec(cfg.OnBus.Secret),
		ticket.WithSettlement(cfg.OnBus.Settlement),
	)
	walletSvc := wallet.NewService(walletStore.New(db), nil)
	impSvc := importer.NewService()

	m := &model{
		ticketService: ticketSvc,
		walletService: walletSvc,
		importService: impSvc,
		receiverID:    cfg.Console.ReceiverID,
		currentView:   ViewMenu,
		topUpView:     view.NewTopUpModel(impSvc, walletSvc),
	}

	if m.receiverID == 0 {
		m.currentView = ViewLogin
		m.loginForm = m.buildLoginForm()
	}

	return m
}

func (m *model) buildLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("receiver").
				Title("Receiver ID").
				Description("Set CONSOLE_RECEIVER_ID to skip this prompt").
				Validate(view.ValidateID).
				Value(&m.receiverArg),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *model) Init() tea.Cmd {
	if m.loginForm != nil {
		return m.loginForm.Init()
	}

	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewOnBus
				m.onBusView = view.NewOnBusModel(m.ticketService, m.receiverID)

				return m, m.onBusView.Init()
			case "2":
				m.currentView = ViewValidate
				m.validateView = view.NewValidateModel(m.ticketService, m.receiverID)

				return m, m.validateView.Init()
			case "3":
				m.currentView = ViewStatus
				m.statusView = view.NewStatusModel(m.ticketService)

				return m, m.statusView.Init()
			case "4":
				m.currentView = ViewTopUp
				m.topUpView = view.NewTopUpModel(m.importService, m.walletService)

				return m, m.topUpView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		return m.updateLogin(msg)
	case ViewOnBus:
		var newModel tea.Model
		newModel, cmd = m.onBusView.Update(msg)
		m.onBusView = newModel.(view.OnBusModel)
	case ViewValidate:
		var newModel tea.Model
		newModel, cmd = m.validateView.Update(msg)
		m.validateView = newModel.(view.ValidateModel)
	case ViewStatus:
		var newModel tea.Model
		newModel, cmd = m.statusView.Update(msg)
		m.statusView = newModel.(view.StatusModel)
	case ViewTopUp:
		var newModel tea.Model
		newModel, cmd = m.topUpView.Update(msg)
		m.topUpView = newModel.(view.TopUpModel)
	}

	return m, cmd
}

func (m *model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	if m.loginForm.State != huh.StateCompleted {
		return m, cmd
	}

	m.receiverID, _ = strconv.ParseInt(strings.TrimSpace(m.receiverArg), 10, 64)
	m.currentView = ViewMenu

	return m, nil
}

func (m *model) View() string {
	switch m.currentView {
	case ViewLogin:
		return lipgloss.NewStyle().Padding(2).Render("MarkyTicket Console\n\n" + m.loginForm.View())
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("MarkyTicket Console (receiver %d)\n\n", m.receiverID) +
				"1. On-bus Sale\n" +
				"2. Validate Tickets\n" +
				"3. Ticket Status\n" +
				"4. Import Top-ups\n\n" +
				"q. Quit",
		)
	}

	active := m.activeView()
	if active == nil {
		return "Unknown View"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(active.Title()),
		active.View(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(1).Render(active.ShortHelp()),
	)
}

func (m *model) activeView() view.View {
	switch m.currentView {
	case ViewOnBus:
		return m.onBusView
	case ViewValidate:
		return m.validateView
	case ViewStatus:
		return m.statusView
	case ViewTopUp:
		return m.topUpView
	}

	return nil
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run console", "error", err)
		os.Exit(1)
	}
}
