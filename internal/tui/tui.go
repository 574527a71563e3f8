// Package tui is the interactive converter: a small form for the fields the
// postal lookup cannot supply, and a live preview of the converted label for
// the selected site.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/addrconv/internal/address"
	"github.com/jusunglee/addrconv/internal/preferences"
	"github.com/jusunglee/addrconv/internal/transliteration"
)

type field int

const (
	fieldName field = iota
	fieldPhone
	fieldDetail
	fieldPccc
	fieldCount
)

var fieldLabels = []string{
	"Name",
	"Phone",
	"Detail address",
	"PCCC",
}

var fieldPlaceholders = []string{
	"홍길동",
	"010-1234-5678",
	"101동 1501호",
	"P123456789012",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// Saver persists the customs code preference.
type Saver interface {
	Save(ctx context.Context, value string, autoSave bool) error
}

type Options struct {
	Address *address.KoreanAddress
	Site    string
	Name    string
	Phone   string
	Detail  string
	Pccc    preferences.Pccc

	// Store is optional; without it the customs code is never remembered.
	Store Saver
	// Copy writes to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error
}

type savedMsg struct{ err error }

type model struct {
	ctx      context.Context
	address  *address.KoreanAddress
	sites    []string
	site     int
	inputs   []textinput.Model
	focus    field
	autoSave bool
	store    Saver
	copy     func(string) error

	result address.ConvertedAddress
	ok     bool
	status string
	err    error
	width  int
}

func New(ctx context.Context, opts Options) model {
	sites := address.PresetIDs()
	site := slices.Index(sites, opts.Site)
	if site < 0 {
		site = slices.Index(sites, address.DefaultPreset)
	}

	initial := []string{opts.Name, opts.Phone, opts.Detail, opts.Pccc.Value}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 128
		ti.Width = 40
		ti.SetValue(initial[i])
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := model{
		ctx:      ctx,
		address:  opts.Address,
		sites:    sites,
		site:     site,
		inputs:   inputs,
		autoSave: opts.Pccc.AutoSave,
		store:    opts.Store,
		copy:     copyFn,
	}
	m.convert()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case savedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+n":
			m.cycleSite(1)
			return m, nil
		case "ctrl+p":
			m.cycleSite(-1)
			return m, nil
		case "ctrl+a":
			m.autoSave = !m.autoSave
			return m, m.savePccc()
		case "ctrl+y":
			return m.copyAll()
		}
		if n, ok := copyShortcut(msg.String()); ok {
			return m.copyField(n)
		}
	}

	before := m.inputs[fieldPccc].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.convert()

	if m.autoSave && m.inputs[fieldPccc].Value() != before {
		return m, tea.Batch(cmd, m.savePccc())
	}
	return m, cmd
}

func (m *model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	return m.inputs[m.focus].Focus()
}

func (m *model) cycleSite(delta int) {
	m.site = (m.site + delta + len(m.sites)) % len(m.sites)
	m.status = ""
	m.convert()
}

func (m *model) convert() {
	m.result, m.ok = address.ConvertAddress(address.ConvertParams{
		KoreanAddress: m.address,
		DetailAddress: m.inputs[fieldDetail].Value(),
		UserName:      m.inputs[fieldName].Value(),
		Phone:         m.inputs[fieldPhone].Value(),
		Pccc:          m.inputs[fieldPccc].Value(),
		SitePreset:    m.sites[m.site],
	})
}

func (m model) savePccc() tea.Cmd {
	if m.store == nil {
		return nil
	}
	ctx, store, autoSave := m.ctx, m.store, m.autoSave
	value := strings.ToUpper(strings.TrimSpace(m.inputs[fieldPccc].Value()))
	return func() tea.Msg {
		return savedMsg{err: store.Save(ctx, value, autoSave)}
	}
}

func (m model) copyAll() (tea.Model, tea.Cmd) {
	if !m.ok {
		m.err = fmt.Errorf("nothing to copy yet")
		return m, nil
	}
	if err := m.copy(address.FormatForCopy(m.result)); err != nil {
		m.err = fmt.Errorf("copying to clipboard: %w", err)
		return m, nil
	}
	m.err = nil
	m.status = "Copied all fields"
	return m, nil
}

func (m model) copyField(n int) (tea.Model, tea.Cmd) {
	fields := m.result.Fields()
	if !m.ok || n < 1 || n > len(fields) {
		return m, nil
	}
	f := fields[n-1]
	if err := m.copy(f.Value); err != nil {
		m.err = fmt.Errorf("copying to clipboard: %w", err)
		return m, nil
	}
	m.err = nil
	m.status = "Copied " + f.Label
	return m, nil
}

// copyShortcut maps alt+1 … alt+9 to a 1-based field position.
func copyShortcut(key string) (int, bool) {
	digit, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return 0, false
	}
	return int(digit[0] - '0'), true
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Korean Address Converter"))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("From: ") + valueStyle.Render(m.sourceLine()))
	s.WriteString("\n\n")

	s.WriteString(m.renderSites())
	s.WriteString("\n\n")

	for i := field(0); i < fieldCount; i++ {
		style := labelStyle
		if i == m.focus {
			style = activeLabelStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%-15s", fieldLabels[i])))
		s.WriteString(m.inputs[i].View())
		s.WriteString("\n")
	}
	autoSave := "off"
	if m.autoSave {
		autoSave = "on"
	}
	s.WriteString(dimStyle.Render("Remember PCCC: " + autoSave))
	s.WriteString("\n\n")

	s.WriteString(m.renderResult())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	} else if m.status != "" {
		s.WriteString(successStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(dimStyle.Render("tab: next field  ctrl+n/p: site  ctrl+a: remember PCCC  ctrl+y: copy all  alt+1-9: copy field  esc: quit"))
	s.WriteString("\n")
	return s.String()
}

func (m model) sourceLine() string {
	if m.address == nil {
		return "(no address)"
	}
	parts := []string{m.address.Zonecode, m.address.RoadAddress}
	if m.address.EnglishAddress != "" {
		parts = append(parts, "/ "+m.address.EnglishAddress)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func (m model) renderSites() string {
	tabs := make([]string, len(m.sites))
	for i, id := range m.sites {
		preset, _ := address.LookupPreset(id)
		if i == m.site {
			tabs[i] = activeLabelStyle.Render("[" + preset.Name + "]")
		} else {
			tabs[i] = labelStyle.Render(" " + preset.Name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m model) renderResult() string {
	if !m.ok {
		msg := "Enter a name to see the converted address."
		if m.address == nil {
			msg = "No address loaded."
		}
		return boxStyle.Render(dimStyle.Render(msg))
	}

	var s strings.Builder
	for i, f := range m.result.Fields() {
		line := fmt.Sprintf("%d %-15s %s", i+1, f.Label, valueStyle.Render(f.Value))
		switch f.Label {
		case "Address Line 1":
			line += m.lengthNote(f.Value, m.result.AddressLine1Max, m.result.AddressLine1Warning)
		case "Address Line 2":
			line += m.lengthNote(f.Value, m.result.AddressLine2Max, m.result.AddressLine2Warning)
		case "PCCC":
			if !m.result.PcccValid {
				line += " " + errorStyle.Render("expected P followed by 12 digits")
			}
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	if m.result.ShowPccc && m.result.Pccc == "" {
		s.WriteString(warnStyle.Render("This site asks for a PCCC (personal customs clearance code)."))
		s.WriteString("\n")
	}
	if transliteration.ContainsHangul(m.inputs[fieldName].Value()) {
		s.WriteString(dimStyle.Render("Name romanized from Hangul; check the spelling on your passport."))
		s.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(s.String(), "\n"))
}

func (m model) lengthNote(value string, limit int, warn bool) string {
	note := fmt.Sprintf(" (%d/%d)", utf8.RuneCountInString(value), limit)
	if warn {
		return " " + warnStyle.Render(note+" shortened")
	}
	return dimStyle.Render(note)
}

// Run shows the converter until the user quits and returns the last
// conversion result.
func Run(ctx context.Context, opts Options) (address.ConvertedAddress, bool, error) {
	p := tea.NewProgram(New(ctx, opts), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return address.ConvertedAddress{}, false, fmt.Errorf("running converter: %w", err)
	}

	m := final.(model)
	return m.result, m.ok, nil
}
