package view

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khawla-14/markyticket/internal/importer"
	"github.com/khawla-14/markyticket/internal/money"
	"github.com/khawla-14/markyticket/internal/wallet"
)

const importTimeout = 2 * time.Minute

type topUpState int

const (
	topUpStateFilePick topUpState = iota
	topUpStateParsing
	topUpStatePreview
	topUpStateCrediting
	topUpStateResult
)

// TopUpModel imports a counter export and credits every row in one batch
// once the operator confirms the preview.
type TopUpModel struct {
	CommonModel
	importService *importer.Service
	walletService *wallet.Service

	state      topUpState
	filePicker filepicker.Model
	preview    table.Model

	topUps []wallet.TopUp
	total  money.Money

	status string
	err    error
}

func NewTopUpModel(impSvc *importer.Service, walletSvc *wallet.Service) TopUpModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return TopUpModel{
		importService: impSvc,
		walletService: walletSvc,
		filePicker:    fp,
	}
}

func (m TopUpModel) Title() string { return "Import Top-ups" }

func (m TopUpModel) ShortHelp() string {
	if m.state == topUpStatePreview {
		return "Enter: credit all | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m TopUpModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m TopUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == topUpStatePreview {
			return m.updatePreview(msg)
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = topUpStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		if len(msg.topUps) == 0 {
			m.state = topUpStateResult
			m.status = "No top-ups found in file."

			return m, nil
		}

		m.topUps = msg.topUps
		m.total = money.Zero

		for _, t := range msg.topUps {
			m.total = m.total.Add(t.Amount)
		}

		m.preview = newPreviewTable(msg.topUps)
		m.state = topUpStatePreview

		return m, nil

	case creditResultMsg:
		m.state = topUpStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v (nothing was credited)", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Credited %d wallets, %s in total.", msg.result.Credited, FormatAmount(msg.result.Total))

		return m, nil
	}

	if m.state != topUpStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = topUpStateParsing
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m TopUpModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case topUpStatePreview, topUpStateResult:
		m.state = topUpStateFilePick
		m.topUps = nil
		m.err = nil
		m.status = ""

		return m, nil
	case topUpStateParsing, topUpStateCrediting:
		return m, nil
	}

	return m, Back
}

func (m TopUpModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.state = topUpStateCrediting
		m.status = fmt.Sprintf("Crediting %d wallets...", len(m.topUps))

		return m, m.creditCmd(m.topUps)
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)

	return m, cmd
}

func newPreviewTable(topUps []wallet.TopUp) table.Model {
	columns := []table.Column{
		{Title: "Client", Width: 10},
		{Title: "Amount", Width: 14},
		{Title: "Reference", Width: 30},
	}

	rows := make([]table.Row, 0, len(topUps))
	for _, t := range topUps {
		rows = append(rows, table.Row{
			strconv.FormatInt(t.ClientID, 10),
			FormatAmount(t.Amount),
			t.Reference,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m TopUpModel) View() string {
	switch m.state {
	case topUpStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select top-up export:\n\n%s", m.filePicker.View()),
		)
	case topUpStateParsing, topUpStateCrediting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case topUpStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(fmt.Sprintf("%d top-ups, %s", len(m.topUps), FormatAmount(m.total))),
			"",
			m.preview.View(),
		))
	case topUpStateResult:
		style := errorStyle
		if m.err == nil {
			style = successStyle
		}

		return lipgloss.NewStyle().Padding(2).Render(style.Render(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

type parseResultMsg struct {
	topUps []wallet.TopUp
	err    error
}

type creditResultMsg struct {
	result *wallet.BatchResult
	err    error
}

func (m TopUpModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		topUps, err := m.importService.Import(importer.SourceTopUp, f)

		return parseResultMsg{topUps: topUps, err: err}
	}
}

func (m TopUpModel) creditCmd(topUps []wallet.TopUp) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		res, err := m.walletService.RechargeBatch(ctx, topUps)

		return creditResultMsg{result: res, err: err}
	}
}
