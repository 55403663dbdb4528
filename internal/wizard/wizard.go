// Package wizard implements the interactive prompt flow: DNS address,
// interface name (Windows only), then a yes/no confirmation. Nothing is
// written or launched unless the user confirms with "y".
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dnshell/internal/config"
	"dnshell/internal/netinfo"
	"dnshell/internal/platform"
	"dnshell/internal/providers"
	"dnshell/internal/validate"
)

type step int

const (
	stepDNS step = iota
	stepInterface
	stepConfirm
	stepDone
)

// Result is what the flow produced. Confirmed is false on any cancellation.
type Result struct {
	DNS       string
	Interface string
	Confirmed bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ADD8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Model is the Bubble Tea model for the prompt flow.
type Model struct {
	platform platform.Platform
	defaults *config.Config
	adapters []netinfo.Adapter

	dnsInput   textinput.Model
	ifaceInput textinput.Model

	step   step
	errMsg string
	result Result
}

// New builds the flow. adapters may be empty; the interface step then
// falls back to the configured placeholder alone.
func New(p platform.Platform, cfg *config.Config, adapters []netinfo.Adapter) Model {
	dnsDefault := cfg.DefaultDNS
	if cfg.LastDNS != "" {
		dnsDefault = cfg.LastDNS
	}
	ifaceDefault := cfg.DefaultInterface
	if cfg.LastInterface != "" {
		ifaceDefault = cfg.LastInterface
	}

	di := textinput.New()
	di.Prompt = "┃ "
	di.Placeholder = dnsDefault
	di.CharLimit = 64
	di.Width = 40
	di.Focus()

	ii := textinput.New()
	ii.Prompt = "┃ "
	ii.Placeholder = ifaceDefault
	ii.CharLimit = 64
	ii.Width = 40

	return Model{
		platform:   p,
		defaults:   cfg,
		adapters:   adapters,
		dnsInput:   di,
		ifaceInput: ii,
		step:       stepDNS,
	}
}

// Result returns the outcome after the program has finished.
func (m Model) Result() Result {
	return m.result
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.result.Confirmed = false
		m.step = stepDone
		return m, tea.Quit
	}

	switch m.step {
	case stepDNS:
		if key.Type == tea.KeyEnter {
			return m.submitDNS()
		}
	case stepInterface:
		if key.Type == tea.KeyEnter {
			return m.submitInterface()
		}
	case stepConfirm:
		// Only an explicit y confirms; anything else cancels.
		if strings.EqualFold(key.String(), "y") {
			m.result.Confirmed = true
		} else {
			m.result.Confirmed = false
		}
		m.step = stepDone
		return m, tea.Quit
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepDNS:
		m.dnsInput, cmd = m.dnsInput.Update(msg)
	case stepInterface:
		m.ifaceInput, cmd = m.ifaceInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitDNS() (tea.Model, tea.Cmd) {
	v := strings.TrimSpace(m.dnsInput.Value())
	if v == "" {
		v = m.dnsInput.Placeholder
	}
	if err := validate.DNSAddress(v); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.result.DNS = v

	if m.platform == platform.Windows {
		m.step = stepInterface
		m.dnsInput.Blur()
		return m, m.ifaceInput.Focus()
	}
	m.step = stepConfirm
	m.dnsInput.Blur()
	return m, nil
}

func (m Model) submitInterface() (tea.Model, tea.Cmd) {
	v := strings.TrimSpace(m.ifaceInput.Value())
	if v == "" {
		v = m.ifaceInput.Placeholder
	}
	if err := validate.InterfaceName(v); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.result.Interface = v
	m.step = stepConfirm
	m.ifaceInput.Blur()
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dnshell — DNS terminal launcher"))
	b.WriteString("\n\n")

	switch m.step {
	case stepDNS:
		b.WriteString(labelStyle.Render("DNS server address (enter for default):"))
		b.WriteString("\n")
		b.WriteString(m.dnsInput.View())
		b.WriteString("\n\n")
		b.WriteString(providerTable())
	case stepInterface:
		b.WriteString(labelStyle.Render("Network interface (enter for default):"))
		b.WriteString("\n")
		b.WriteString(m.ifaceInput.View())
		if len(m.adapters) > 0 {
			b.WriteString("\n\n")
			b.WriteString(labelStyle.Render("Detected adapters:"))
			b.WriteString("\n")
			for _, a := range m.adapters {
				marker := "  "
				if a.Default {
					marker = markerStyle.Render("* ")
				}
				state := "down"
				if a.Up {
					state = "up"
				}
				b.WriteString(fmt.Sprintf("  %s%s (%s)\n", marker, a.Name, state))
			}
		}
	case stepConfirm, stepDone:
		b.WriteString(labelStyle.Render("DNS server:  "))
		b.WriteString(valueStyle.Render(m.result.DNS))
		b.WriteString("\n")
		if m.platform == platform.Windows {
			b.WriteString(labelStyle.Render("Interface:   "))
			b.WriteString(valueStyle.Render(m.result.Interface))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString("Apply and open a terminal? (y/n) ")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

func providerTable() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Well-known public DNS servers:"))
	b.WriteString("\n")
	for _, p := range providers.Table() {
		b.WriteString(fmt.Sprintf("  %-16s %-16s %s\n", p.Name, p.Primary, p.Secondary))
	}
	return b.String()
}

// Run executes the flow on the controlling terminal.
func Run(p platform.Platform, cfg *config.Config, adapters []netinfo.Adapter) (Result, error) {
	final, err := tea.NewProgram(New(p, cfg, adapters)).Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result(), nil
}
