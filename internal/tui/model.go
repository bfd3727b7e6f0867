// Package tui is the terminal conversion widget: a Metric tab and a Currency tab, each a
// pair of fields kept in sync as either one is edited.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/convertly/internal/core/domain"
	portssvc "github.com/SscSPs/convertly/internal/core/ports/services"
	"github.com/SscSPs/convertly/internal/core/services"
	"github.com/SscSPs/convertly/internal/utils"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabMetric tab = iota
	tabCurrency
)

func (t tab) String() string {
	if t == tabCurrency {
		return "Currency"
	}
	return "Metric"
}

type field int

const (
	fieldFrom field = iota
	fieldTo
)

type unitPair struct{ from, to string }

// defaultUnitPairs is the pair a category is reset to when it is selected.
var defaultUnitPairs = map[domain.UnitCategory]unitPair{
	domain.CategoryLength:      {"m", "cm"},
	domain.CategoryWeight:      {"kg", "g"},
	domain.CategoryTemperature: {"c", "f"},
	domain.CategoryVolume:      {"l", "ml"},
}

const (
	defaultAmount      = "1"
	fallbackToCurrency = "EUR"

	invalidTitle = "Invalid conversion"
	invalidBody  = "Please enter a valid number to convert."

	mockRatesCaption = "Using mock exchange rates for demonstration"
)

// Options selects the initial currency pair. Unknown codes fall back to USD and EUR.
type Options struct {
	FromCurrency string
	ToCurrency   string
}

// Model is the bubbletea model of the widget.
type Model struct {
	ctx     context.Context
	unitSvc portssvc.UnitConverterSvc
	rateSvc portssvc.ExchangeRateReaderSvc
	keys    keyMap
	help    help.Model

	active    tab
	focus     field
	fromInput textinput.Model
	toInput   textinput.Model

	categories []domain.UnitCategory
	category   int
	units      map[domain.UnitCategory][]domain.UnitDefinition
	metric     *services.FieldPair

	currencies []domain.Currency
	currency   *services.FieldPair

	quitting bool
}

// New loads the unit and currency catalogs and builds the widget with the default pairs.
func New(ctx context.Context, svc *portssvc.ServiceContainer, opts Options) (Model, error) {
	categories := svc.Unit.ListCategories(ctx)
	if len(categories) == 0 {
		return Model{}, fmt.Errorf("no unit categories available")
	}
	units := make(map[domain.UnitCategory][]domain.UnitDefinition, len(categories))
	for _, c := range categories {
		list, err := svc.Unit.ListUnits(ctx, c)
		if err != nil {
			return Model{}, fmt.Errorf("list %s units: %w", c, err)
		}
		if len(list) == 0 {
			return Model{}, fmt.Errorf("category %s has no units", c)
		}
		units[c] = list
	}

	currencies, err := svc.Currency.ListCurrencies(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("list currencies: %w", err)
	}
	if len(currencies) == 0 {
		return Model{}, fmt.Errorf("no currencies available")
	}

	m := Model{
		ctx:        ctx,
		unitSvc:    svc.Unit,
		rateSvc:    svc.Currency,
		keys:       defaultKeyMap(),
		help:       help.New(),
		categories: categories,
		units:      units,
		currencies: currencies,
		fromInput:  newInput(),
		toInput:    newInput(),
	}

	first := categories[0]
	p := m.defaultPair(first)
	m.metric = services.NewFieldPair(ctx, services.UnitConvertFunc(svc.Unit, first), p.from, p.to, defaultAmount)

	from := m.currencyCodeOr(opts.FromCurrency, domain.BaseCurrencyCode)
	to := m.currencyCodeOr(opts.ToCurrency, fallbackToCurrency)
	m.currency = services.NewFieldPair(ctx, services.CurrencyConvertFunc(svc.Currency), from, to, defaultAmount)

	m.loadInputs()
	m.fromInput.Focus()
	return m, nil
}

// Run starts the widget on the terminal and blocks until the user quits.
func Run(ctx context.Context, svc *portssvc.ServiceContainer, opts Options) error {
	m, err := New(ctx, svc, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func newInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "0"
	in.CharLimit = 32
	in.Width = 18
	return in
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab, m.keys.PrevTab):
			m.switchTab()
			return m, nil
		case key.Matches(msg, m.keys.FocusUp):
			return m, m.setFocus(fieldFrom)
		case key.Matches(msg, m.keys.FocusDown):
			return m, m.setFocus(fieldTo)
		case key.Matches(msg, m.keys.Category):
			m.nextCategory()
			return m, nil
		case key.Matches(msg, m.keys.CycleFrom):
			pair := m.activePair()
			pair.SetFromCode(m.ctx, m.nextCode(pair.FromCode()))
			m.loadInputs()
			return m, nil
		case key.Matches(msg, m.keys.CycleTo):
			pair := m.activePair()
			pair.SetToCode(m.ctx, m.nextCode(pair.ToCode()))
			m.loadInputs()
			return m, nil
		case key.Matches(msg, m.keys.Swap):
			m.swap()
			return m, nil
		}
	}
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused input and recomputes the other field when the
// text changed.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	pair := m.activePair()

	if m.focus == fieldFrom {
		before := m.fromInput.Value()
		m.fromInput, cmd = m.fromInput.Update(msg)
		if text := m.fromInput.Value(); text != before {
			pair.SetFromText(m.ctx, text)
			setInput(&m.toInput, pair.ToText())
		}
		return m, cmd
	}

	before := m.toInput.Value()
	m.toInput, cmd = m.toInput.Update(msg)
	if text := m.toInput.Value(); text != before {
		pair.SetToText(m.ctx, text)
		setInput(&m.fromInput, pair.FromText())
	}
	return m, cmd
}

func (m *Model) activePair() *services.FieldPair {
	if m.active == tabCurrency {
		return m.currency
	}
	return m.metric
}

func (m *Model) currentCategory() domain.UnitCategory {
	return m.categories[m.category]
}

func (m *Model) loadInputs() {
	pair := m.activePair()
	setInput(&m.fromInput, pair.FromText())
	setInput(&m.toInput, pair.ToText())
}

// setInput replaces the text of in and moves its cursor to the end.
func setInput(in *textinput.Model, text string) {
	in.SetValue(text)
	in.CursorEnd()
}

func (m *Model) switchTab() {
	if m.active == tabMetric {
		m.active = tabCurrency
	} else {
		m.active = tabMetric
	}
	m.loadInputs()
}

// swap reverses the active pair. Units trade places with their values; currencies keep
// the entered amount and convert it the other way.
func (m *Model) swap() {
	if m.active == tabCurrency {
		m.currency.SwapCodes(m.ctx)
	} else {
		m.metric.Swap(m.ctx)
	}
	m.loadInputs()
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldFrom {
		m.toInput.Blur()
		m.fromInput.CursorEnd()
		return m.fromInput.Focus()
	}
	m.fromInput.Blur()
	m.toInput.CursorEnd()
	return m.toInput.Focus()
}

// nextCategory selects the following category and resets the metric pair to its default
// units. Only the Metric tab has categories.
func (m *Model) nextCategory() {
	if m.active != tabMetric {
		return
	}
	m.category = (m.category + 1) % len(m.categories)
	c := m.currentCategory()
	p := m.defaultPair(c)
	m.metric.Rebind(m.ctx, services.UnitConvertFunc(m.unitSvc, c), p.from, p.to)
	m.loadInputs()
}

func (m *Model) defaultPair(c domain.UnitCategory) unitPair {
	list := m.units[c]
	if p, ok := defaultUnitPairs[c]; ok && findUnit(list, p.from) != nil && findUnit(list, p.to) != nil {
		return p
	}
	if len(list) > 1 {
		return unitPair{list[0].Code, list[1].Code}
	}
	return unitPair{list[0].Code, list[0].Code}
}

func (m *Model) codes() []string {
	if m.active == tabCurrency {
		codes := make([]string, len(m.currencies))
		for i, c := range m.currencies {
			codes[i] = c.CurrencyCode
		}
		return codes
	}
	list := m.units[m.currentCategory()]
	codes := make([]string, len(list))
	for i, u := range list {
		codes[i] = u.Code
	}
	return codes
}

// nextCode returns the code listed after current in the active tab, wrapping around.
func (m *Model) nextCode(current string) string {
	codes := m.codes()
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

func (m *Model) currencyCodeOr(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if m.findCurrency(code) != nil {
		return code
	}
	if m.findCurrency(fallback) != nil {
		return fallback
	}
	return m.currencies[0].CurrencyCode
}

func (m *Model) findCurrency(code string) *domain.Currency {
	for i := range m.currencies {
		if m.currencies[i].CurrencyCode == code {
			return &m.currencies[i]
		}
	}
	return nil
}

func findUnit(list []domain.UnitDefinition, code string) *domain.UnitDefinition {
	for i := range list {
		if list[i].Code == code {
			return &list[i]
		}
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	pair := m.activePair()
	var lines []string
	if m.active == tabMetric {
		lines = append(lines, labelStyle.Render("Category")+codeStyle.Render(m.currentCategory().Label()))
	} else {
		lines = append(lines, captionStyle.Render(mockRatesCaption))
	}
	lines = append(lines,
		m.renderField("From", m.fromInput, pair.FromCode()),
		m.renderField("To", m.toInput, pair.ToCode()),
	)
	if rate := m.rateLine(); rate != "" {
		lines = append(lines, mutedStyle.Render(rate))
	}
	b.WriteString(cardStyle().Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	if notice := m.notice(); notice != "" {
		b.WriteString(noticeStyle().Render(notice))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, t := range []tab{tabMetric, tabCurrency} {
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.String()))
		}
	}
	return strings.Join(tabs, mutedStyle.Render("│"))
}

// renderField draws one row. Currency rows carry the currency symbol in front of the amount.
func (m Model) renderField(label string, in textinput.Model, code string) string {
	if m.active == tabCurrency {
		c := m.findCurrency(code)
		if c == nil {
			return labelStyle.Render(label) + in.View() + " " + codeStyle.Render(code)
		}
		return labelStyle.Render(label) + c.Symbol + " " + in.View() + " " +
			codeStyle.Render(c.CurrencyCode) + " " + mutedStyle.Render(utils.CurrencyDisplayName(*c))
	}

	unitLabel := ""
	if u := findUnit(m.units[m.currentCategory()], code); u != nil {
		unitLabel = u.Label
	}
	return labelStyle.Render(label) + in.View() + " " + codeStyle.Render(code) + " " + mutedStyle.Render(unitLabel)
}

// rateLine quotes one unit of the source currency in the target currency. It is empty on
// the Metric tab and while the entered amount is not a number.
func (m Model) rateLine() string {
	if m.active != tabCurrency {
		return ""
	}
	if _, err := domain.ParseAmount(m.currency.FromText()); err != nil {
		return ""
	}
	from, to := m.currency.FromCode(), m.currency.ToCode()
	rate, err := m.rateSvc.GetExchangeRate(m.ctx, from, to)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("1 %s = %s %s", from, rate.StringFixed(services.CurrencyPrecision), to)
}

func (m Model) notice() string {
	err := m.activePair().Err()
	if err == nil {
		return ""
	}
	if services.IsUnconvertible(err) {
		return noticeTitleStyle.Render(invalidTitle) + "\n" + invalidBody
	}
	return noticeTitleStyle.Render("Conversion failed") + "\n" + err.Error()
}
