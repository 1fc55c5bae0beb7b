// Package cli renders analyses for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fintrack-app/backend/internal/analysis"
	"github.com/shopspring/decimal"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGood   = lipgloss.Color("#879A39")
	colorWarn   = lipgloss.Color("#DA702C")
	colorOver   = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorBorder)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

// StatusStyle returns the style for a category status.
func StatusStyle(s analysis.Status) lipgloss.Style {
	switch s {
	case analysis.StatusOver:
		return lipgloss.NewStyle().Bold(true).Foreground(colorOver)
	case analysis.StatusWarning:
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorGood)
	}
}

// Table is a bordered table. All columns but the first are right aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// Style for a cell, defaults to the value style
	CellStyle func(row, col int) lipgloss.Style
}

// Render renders the table.
func (t Table) Render() string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	line := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}

	row := func(cells []string, style func(col int) lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(borderStyle.Render("│"))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			format := " %*s "
			if i == 0 {
				format = " %-*s "
			}
			b.WriteString(style(i).Render(fmt.Sprintf(format, w, cell)))
			b.WriteString(borderStyle.Render("│"))
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(line("╭", "┬", "╮"))
	b.WriteString(row(t.Headers, func(int) lipgloss.Style { return headerStyle }))
	b.WriteString(line("├", "┼", "┤"))
	for r, cells := range t.Rows {
		b.WriteString(row(cells, func(col int) lipgloss.Style {
			if t.CellStyle != nil {
				return t.CellStyle(r, col)
			}
			return valueStyle
		}))
	}
	b.WriteString(line("╰", "┴", "╯"))

	return b.String()
}

// RenderTitle renders a title in a box.
func RenderTitle(title string) string {
	return titleStyle.Render(title)
}

// RenderResult renders the full analysis: categories, trend and performance.
func RenderResult(title string, r analysis.Result) string {
	categories := Table{
		Title:   "Categories",
		Headers: []string{"Category", "Budgeted", "Spent", "Remaining", "Used", "Status"},
	}

	for _, c := range r.CategoryAnalysis {
		name := c.Category
		if c.Unbudgeted {
			name += " (unbudgeted)"
		}

		categories.Rows = append(categories.Rows, []string{
			name,
			FormatMoney(c.Budgeted),
			FormatMoney(c.Spent),
			FormatMoney(c.Remaining),
			FormatPercent(c.Percentage),
			string(c.Status),
		})
	}

	// The status column is coloured by the status of its row
	categories.CellStyle = func(row, col int) lipgloss.Style {
		if col == len(categories.Headers)-1 {
			return StatusStyle(r.CategoryAnalysis[row].Status)
		}
		return valueStyle
	}

	t := r.TrendAnalysis
	trend := Table{
		Title:   "Trend",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total budget", FormatMoney(t.TotalBudget)},
			{"Total spent", FormatMoney(t.TotalSpent)},
			{"Total income", FormatMoney(t.TotalIncome)},
			{"Average daily spending", FormatMoney(t.AverageDailySpending)},
			{"Projected spending", FormatMoney(t.ProjectedSpending)},
			{"Savings rate", FormatRate(t.SavingsRate)},
			{"Days elapsed", FormatDays(t.DaysElapsed)},
			{"Days remaining", FormatDays(t.DaysRemaining)},
			{"Total days", FormatDays(t.TotalDays)},
		},
	}

	p := r.PerformanceMetrics
	performance := Table{
		Title:   "Performance",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Categories", fmt.Sprint(p.TotalCategories)},
			{"On track", fmt.Sprint(p.OnTrackCategories)},
			{"Warning", fmt.Sprint(p.WarningCategories)},
			{"Over budget", fmt.Sprint(p.OverBudgetCategories)},
			{"Budget utilization", FormatPercent(decimal.NewNullDecimal(p.BudgetUtilization))},
		},
	}

	return strings.Join([]string{
		RenderTitle(title),
		categories.Render(),
		trend.Render(),
		performance.Render(),
	}, "\n")
}
