// letterform is a terminal form client for the letter generation service.
// It follows The Elm Architecture: the App model holds all state, Update
// reacts to messages, and View renders the current screen.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adhya2325/letter-generation/internal/instructions"
	"github.com/Adhya2325/letter-generation/internal/letters"
)

// appState represents which screen the form client is on.
type appState int

const (
	stateTypeSelect appState = iota // letter type picker
	stateForm                      // claim detail entry
	stateGenerating                // waiting on the pipeline
	stateDone                      // letter saved
	stateError                     // terminal failure
)

// Form field indices, in display order.
const (
	fieldCompany = iota
	fieldInsured
	fieldPolicy
	fieldClaim
	fieldPhone
	fieldDeadline
	fieldNotes
	fieldCount
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6BCB77"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

var fieldLabels = [fieldCount]string{
	"Company name",
	"Insured name",
	"Policy number",
	"Claim number",
	"Contact phone (optional)",
	"Response deadline days (0 = none)",
	"Notes (optional)",
}

type typesMsg struct {
	types []instructions.LetterType
	err   error
}

type letterMsg struct {
	letter *letters.Letter
	path   string
	err    error
}

// typeItem implements list.Item for the letter type picker.
type typeItem struct {
	value instructions.LetterType
}

func (i typeItem) Title() string       { return i.value.Display() }
func (i typeItem) Description() string { return string(i.value) }
func (i typeItem) FilterValue() string { return string(i.value) }

// App is the form client model.
type App struct {
	state  appState
	config *ClientConfig
	client *Client

	typeMenu   list.Model
	letterType instructions.LetterType

	inputs  [fieldCount]textinput.Model
	focused int

	spin spinner.Model

	letter    *letters.Letter
	savedPath string
	errMsg    string
	formErr   string

	width  int
	height int
}

// NewApp creates the form client from a loaded configuration.
func NewApp(cfg *ClientConfig) *App {
	typeMenu := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	typeMenu.Title = "Select Letter Type"
	typeMenu.SetShowStatusBar(false)
	typeMenu.SetFilteringEnabled(false)

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldCompany].SetValue(cfg.CompanyName)
	inputs[fieldPhone].SetValue(cfg.Phone)
	inputs[fieldDeadline].SetValue("30")
	inputs[fieldNotes].CharLimit = 2048
	inputs[fieldCompany].Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		state:    stateTypeSelect,
		config:   cfg,
		client:   NewClient(cfg.ServerURL),
		typeMenu: typeMenu,
		inputs:   inputs,
		spin:     spin,
	}
}

// Init fetches the available letter types from the service.
func (a *App) Init() tea.Cmd {
	return a.fetchTypes()
}

func (a *App) fetchTypes() tea.Cmd {
	return func() tea.Msg {
		types, err := a.client.Types(context.Background())
		return typesMsg{types: types, err: err}
	}
}

func (a *App) generate(request letters.Request) tea.Cmd {
	return func() tea.Msg {
		letter, err := a.client.Generate(context.Background(), request)
		if err != nil {
			return letterMsg{err: err}
		}

		path := a.config.OutputPath(letter.Filename())
		if err := os.WriteFile(path, []byte(letter.Content), 0644); err != nil {
			return letterMsg{letter: letter, err: fmt.Errorf("save letter: %w", err)}
		}

		return letterMsg{letter: letter, path: path}
	}
}

// Update reacts to messages and advances the screen state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.typeMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		return a, nil

	case typesMsg:
		if msg.err != nil {
			a.state = stateError
			a.errMsg = msg.err.Error()
			return a, nil
		}
		items := make([]list.Item, len(msg.types))
		for i, t := range msg.types {
			items[i] = typeItem{value: t}
		}
		a.typeMenu.SetItems(items)
		return a, nil

	case letterMsg:
		if msg.err != nil {
			a.state = stateError
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.state = stateDone
		a.letter = msg.letter
		a.savedPath = msg.path
		return a, nil

	case spinner.TickMsg:
		if a.state == stateGenerating {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateActive(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		switch a.state {
		case stateForm:
			a.state = stateTypeSelect
			return a, nil
		case stateDone, stateError:
			return a, tea.Quit
		}
	case "q":
		if a.state == stateTypeSelect || a.state == stateDone || a.state == stateError {
			return a, tea.Quit
		}
	case "tab", "down":
		if a.state == stateForm {
			a.focusField((a.focused + 1) % fieldCount)
			return a, nil
		}
	case "shift+tab", "up":
		if a.state == stateForm {
			a.focusField((a.focused + fieldCount - 1) % fieldCount)
			return a, nil
		}
	case "enter":
		switch a.state {
		case stateTypeSelect:
			if item, ok := a.typeMenu.SelectedItem().(typeItem); ok {
				a.letterType = item.value
				a.state = stateForm
			}
			return a, nil
		case stateForm:
			if a.focused < fieldCount-1 {
				a.focusField(a.focused + 1)
				return a, nil
			}
			return a.submit()
		case stateDone, stateError:
			return a, tea.Quit
		}
	}

	return a.updateActive(msg)
}

func (a *App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateTypeSelect:
		var cmd tea.Cmd
		a.typeMenu, cmd = a.typeMenu.Update(msg)
		return a, cmd
	case stateForm:
		var cmd tea.Cmd
		a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) focusField(idx int) {
	a.inputs[a.focused].Blur()
	a.focused = idx
	a.inputs[a.focused].Focus()
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	request, err := a.buildRequest()
	if err != nil {
		a.formErr = err.Error()
		return a, nil
	}

	a.formErr = ""
	a.state = stateGenerating
	return a, tea.Batch(a.spin.Tick, a.generate(request))
}

func (a *App) buildRequest() (letters.Request, error) {
	deadline := 0
	if v := strings.TrimSpace(a.inputs[fieldDeadline].Value()); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return letters.Request{}, fmt.Errorf("deadline days must be a non-negative number")
		}
		deadline = parsed
	}

	request := letters.Request{
		LetterType:   a.letterType,
		CompanyName:  strings.TrimSpace(a.inputs[fieldCompany].Value()),
		InsuredName:  strings.TrimSpace(a.inputs[fieldInsured].Value()),
		PolicyNumber: strings.TrimSpace(a.inputs[fieldPolicy].Value()),
		ClaimNumber:  strings.TrimSpace(a.inputs[fieldClaim].Value()),
		ContactPhone: strings.TrimSpace(a.inputs[fieldPhone].Value()),
		DeadlineDays: deadline,
		Notes:        strings.TrimSpace(a.inputs[fieldNotes].Value()),
	}

	if err := request.Validate(); err != nil {
		return letters.Request{}, err
	}

	return request, nil
}

// View renders the current screen.
func (a *App) View() string {
	switch a.state {
	case stateTypeSelect:
		return a.viewTypeSelect()
	case stateForm:
		return a.viewForm()
	case stateGenerating:
		return boxStyle.Render(fmt.Sprintf(
			"%s Generating %s letter...\n\nDrafting, formatting, and compliance review run in sequence.",
			a.spin.View(), a.letterType.Display(),
		))
	case stateDone:
		return a.viewDone()
	case stateError:
		return boxStyle.Render(
			errorStyle.Render("Generation failed") + "\n\n" + a.errMsg +
				helpStyle.Render("\nenter/q quit"),
		)
	}
	return ""
}

func (a *App) viewTypeSelect() string {
	return a.typeMenu.View() + helpStyle.Render("\nenter select · q quit")
}

func (a *App) viewForm() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s Letter", a.letterType.Display())))
	sb.WriteString("\n")

	for i := range a.inputs {
		label := labelStyle
		if i == a.focused {
			label = focusedLabelStyle
		}
		sb.WriteString(label.Render(fieldLabels[i]))
		sb.WriteString("\n")
		sb.WriteString(a.inputs[i].View())
		sb.WriteString("\n")
	}

	if a.formErr != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(a.formErr))
	}

	sb.WriteString(helpStyle.Render("\ntab next field · enter submit on last field · esc back"))
	return boxStyle.Render(sb.String())
}

func (a *App) viewDone() string {
	var sb strings.Builder
	sb.WriteString(successStyle.Render("Letter generated"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Saved to %s\n", a.savedPath))
	sb.WriteString(fmt.Sprintf("Model: %s (%s)\n", a.letter.ModelName, a.letter.ProviderName))
	sb.WriteString("\n")
	sb.WriteString(a.letter.Content)
	sb.WriteString("\n")
	if len(a.letter.NoticesApplied) > 0 {
		sb.WriteString("\nNotices applied:\n")
		for _, notice := range a.letter.NoticesApplied {
			sb.WriteString("  - ")
			sb.WriteString(notice)
			sb.WriteString("\n")
		}
	}
	sb.WriteString(helpStyle.Render("\nenter/q quit"))
	return boxStyle.Render(sb.String())
}
