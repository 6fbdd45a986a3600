package service

import (
	"context"
	"fmt"
	"stockscout/internal/domain"
	"stockscout/internal/repository"
	"strings"
	"time"
)

type EmailService interface {
	SendPicksReport(ctx context.Context, recipient string, picks []domain.Pick, date time.Time) error
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewEmailService(emailRepository repository.EmailRepository) EmailService {
	return emailServiceHandler{EmailRepository: emailRepository}
}

func (h emailServiceHandler) SendPicksReport(ctx context.Context, recipient string, picks []domain.Pick, date time.Time) error {
	if recipient == "" {
		return fmt.Errorf("no report recipient configured")
	}

	subject := fmt.Sprintf("Stock picks for %s", date.Format("Jan 2, 2006"))
	body := RenderPicksReport(picks, date)

	err := h.EmailRepository.SendEmail(recipient, subject, body, true)
	if err != nil {
		return fmt.Errorf("failed to send picks report: %w", err)
	}

	return nil
}

// RenderPicksReport builds the daily report as a self-contained HTML
// document. Keep it table-based; email clients cannot be trusted with
// anything fancier.
func RenderPicksReport(picks []domain.Pick, date time.Time) string {
	var b strings.Builder

	b.WriteString("<html><body style=\"font-family: sans-serif;\">")
	fmt.Fprintf(&b, "<h2>Stock picks for %s</h2>", date.Format("January 2, 2006"))

	if len(picks) == 0 {
		b.WriteString("<p>No candidates passed the screen today.</p>")
		b.WriteString("</body></html>")
		return b.String()
	}

	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Symbol</th><th>Score</th><th>P/E</th><th>Yield</th><th>Sentiment</th><th>30d Return</th><th>30d Volatility</th><th>Allocation</th></tr>")

	for _, p := range picks {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%.4f</td><td>%s</td><td>%s</td><td>%.2f</td><td>%s</td><td>%s</td><td>$%.2f</td></tr>",
			p.Symbol,
			p.Score,
			fmtNum(p.PeRatio),
			fmtPct(p.DividendYield),
			p.AvgSentiment,
			fmtPct(p.Return30D),
			fmtPct(p.Volatility30D),
			p.Allocation,
		)
	}
	b.WriteString("</table>")

	for _, p := range picks {
		fmt.Fprintf(&b, "<h3>%s</h3><p>%s</p>", p.Symbol, p.Explanation)
	}

	b.WriteString("</body></html>")

	return b.String()
}
