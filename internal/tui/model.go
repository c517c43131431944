package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockdeck/internal/domain"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const refreshInterval = 30 * time.Second

type QuoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]domain.QuoteSnapshot, bool)
}

type NewsSource interface {
	MarketNews(ctx context.Context, market string, count int) ([]domain.NewsItem, bool)
}

// Services bundles everything the dashboard model needs.
type Services struct {
	Quotes   QuoteSource
	News     NewsSource
	Symbols  []string
	Username string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	upStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	degradedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type refreshMsg struct {
	quotes    []domain.QuoteSnapshot
	headlines []domain.NewsItem
	degraded  bool
}

type tickMsg time.Time

// AppModel renders the watchlist and market headlines over SSH.
type AppModel struct {
	svc       Services
	table     table.Model
	headlines []domain.NewsItem
	degraded  bool
	updatedAt time.Time
	width     int
	height    int
	loading   bool
}

func NewAppModel(svc Services) *AppModel {
	if len(svc.Symbols) == 0 {
		svc.Symbols = domain.DefaultWatchSymbols
	}

	columns := []table.Column{
		{Title: "Symbol", Width: 12},
		{Title: "Name", Width: 24},
		{Title: "Price", Width: 12},
		{Title: "Change", Width: 10},
		{Title: "Change %", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(svc.Symbols)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	return &AppModel{svc: svc, table: t, loading: true}
}

func (m *AppModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		}

	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case refreshMsg:
		m.loading = false
		m.degraded = msg.degraded
		m.headlines = msg.headlines
		m.updatedAt = time.Now()
		m.table.SetRows(quoteRows(msg.quotes))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	title := "stockdeck"
	if m.svc.Username != "" {
		title += " — " + m.svc.Username
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Headlines"))
	b.WriteString("\n")
	if len(m.headlines) == 0 {
		b.WriteString(dimStyle.Render("no headlines yet"))
		b.WriteString("\n")
	}
	for i, it := range m.headlines {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("• %s %s\n", it.Title, dimStyle.Render("("+it.Publisher+")")))
	}

	b.WriteString("\n")
	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("refreshing..."))
	case m.degraded:
		b.WriteString(degradedStyle.Render("showing sample data — live source unavailable"))
	default:
		b.WriteString(dimStyle.Render("updated " + m.updatedAt.Format("15:04:05")))
	}
	b.WriteString(dimStyle.Render("  •  r refresh  •  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *AppModel) refreshCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		quotes, quotesDegraded := svc.Quotes.Quotes(ctx, svc.Symbols)
		headlines, newsDegraded := svc.News.MarketNews(ctx, "global", 5)
		return refreshMsg{
			quotes:    quotes,
			headlines: headlines,
			degraded:  quotesDegraded || newsDegraded,
		}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func quoteRows(quotes []domain.QuoteSnapshot) []table.Row {
	rows := make([]table.Row, 0, len(quotes))
	for _, q := range quotes {
		change := fmt.Sprintf("%+.2f", q.RegularMarketChange)
		pct := fmt.Sprintf("%+.2f%%", q.RegularMarketChangePercent)
		if q.RegularMarketChange >= 0 {
			change = upStyle.Render(change)
			pct = upStyle.Render(pct)
		} else {
			change = downStyle.Render(change)
			pct = downStyle.Render(pct)
		}
		rows = append(rows, table.Row{
			q.Symbol,
			q.ShortName,
			fmt.Sprintf("%s%.2f", domain.CurrencyGlyph(q.Symbol), q.RegularMarketPrice),
			change,
			pct,
		})
	}
	return rows
}
