package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/xyloai/xylo/internal/invoice"
	"github.com/xyloai/xylo/internal/risk"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders an amount with its currency code.
func FormatAmount(amount decimal.Decimal, currency invoice.Currency) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

var (
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	reviewStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// DecisionLabel renders a decision with its status color.
func DecisionLabel(d risk.Decision) string {
	switch d {
	case risk.DecisionApproved:
		return approvedStyle.Render(string(d))
	case risk.DecisionRejected:
		return rejectedStyle.Render(string(d))
	default:
		return reviewStyle.Render(string(d))
	}
}
