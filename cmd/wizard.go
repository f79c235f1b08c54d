package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/tui"
)

// wizardField is one prompt of the init wizard. An empty answer keeps the
// default shown in the placeholder.
type wizardField struct {
	label string
	input textinput.Model
	apply func(cfg *config.Config, val string)
}

type wizardModel struct {
	cfg     *config.Config
	fields  []wizardField
	index   int
	styles  tui.Styles
	aborted bool
}

func newWizard(cfg *config.Config, styles tui.Styles) wizardModel {
	mk := func(label, placeholder string, apply func(*config.Config, string)) wizardField {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = "> "
		ti.CharLimit = 200
		return wizardField{label: label, input: ti, apply: apply}
	}

	fields := []wizardField{
		mk("Reactive compiler command", cfg.Compiler, func(c *config.Config, v string) {
			c.Compiler = v
		}),
		mk("Install-root query flag", cfg.WhereFlag, func(c *config.Config, v string) {
			c.WhereFlag = v
		}),
		mk("Linker command", cfg.Linker, func(c *config.Config, v string) {
			c.Linker = v
		}),
		mk("Runtime libraries, in link order (space-separated)", strings.Join(cfg.Libraries, " "),
			func(c *config.Config, v string) {
				c.Libraries = strings.Fields(v)
			}),
		mk("Transient-artifact extensions (space-separated)", strings.Join(cfg.Clean.Extensions, " "),
			func(c *config.Config, v string) {
				c.Clean.Extensions = strings.Fields(v)
			}),
	}
	fields[0].input.Focus()

	return wizardModel{cfg: cfg, fields: fields, styles: styles}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.aborted || m.index >= len(m.fields) {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			f := &m.fields[m.index]
			if val := strings.TrimSpace(f.input.Value()); val != "" {
				f.apply(m.cfg, val)
			}
			f.input.Blur()
			m.index++
			if m.index >= len(m.fields) {
				return m, tea.Quit
			}
			return m, m.fields[m.index].input.Focus()
		}
	}

	var cmd tea.Cmd
	m.fields[m.index].input, cmd = m.fields[m.index].input.Update(msg)
	return m, cmd
}

func (m wizardModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("reactrust init"))
	b.WriteString("\n\n")

	for i := 0; i < m.index && i < len(m.fields); i++ {
		f := m.fields[i]
		val := strings.TrimSpace(f.input.Value())
		if val == "" {
			val = f.input.Placeholder
		}
		b.WriteString(m.styles.Dim.Render(f.label+": ") + val + "\n")
	}

	if m.index < len(m.fields) {
		f := m.fields[m.index]
		b.WriteString(f.label + "\n")
		b.WriteString(f.input.View() + "\n")
		b.WriteString(m.styles.Dim.Render("enter accepts, empty keeps the default, esc cancels"))
		b.WriteString("\n")
	}

	return b.String()
}

// runWizard prompts for each config value in turn and returns the filled-in
// config, or an error if the user cancelled.
func runWizard(cfg *config.Config, styles tui.Styles) (*config.Config, error) {
	out, err := tea.NewProgram(newWizard(cfg, styles)).Run()
	if err != nil {
		return nil, fmt.Errorf("running init wizard: %w", err)
	}
	final, ok := out.(wizardModel)
	if !ok || final.aborted {
		return nil, fmt.Errorf("init cancelled")
	}
	return cfg, nil
}
