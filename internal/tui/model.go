// internal/tui/model.go
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ekthaa-chatbot/internal/models"
)

const terminalUserID = "terminal"

// ChatPort is the TUI-facing subset of the chat service.
type ChatPort interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Suggest(ctx context.Context) []string
}

// Model is the Bubble Tea model for the terminal chat client.
type Model struct {
	service    ChatPort
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	status     string
	ready      bool
}

// New creates the terminal chat model, seeded with example questions.
func New(service ChatPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about products..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	greeting := "Hi! I can help you find grocery and vegetable products. Try:"
	for _, q := range service.Suggest(context.Background()) {
		greeting += "\n  • " + q
	}

	return Model{
		service:    service,
		input:      ti,
		viewport:   vp,
		transcript: []string{botStyle.Render("bot: ") + greeting},
		status:     "Ready.",
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, qh := inputBoxStyle.GetFrameSize()
		_, th := transcriptStyle.GetFrameSize()
		vh := msg.Height - qh - th - 3
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m = m.send(text)
				m.input.SetValue("")
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send(text string) Model {
	m.transcript = append(m.transcript, userStyle.Render("you: ")+text)

	resp, err := m.service.Chat(context.Background(), models.ChatRequest{
		Message: text,
		UserID:  terminalUserID,
	})
	if err != nil {
		m.transcript = append(m.transcript, errStyle.Render("error: ")+err.Error())
		m.status = "Request failed."
	} else {
		m.transcript = append(m.transcript, botStyle.Render("bot: ")+resp.Response)
		m.status = "Intent: " + string(resp.Intent)
	}

	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
	return m
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Ekthaa Product Discovery Chatbot")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

var (
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
