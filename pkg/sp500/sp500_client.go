package sp500_client

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const constituentsUrl = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"

type Constituent struct {
	Symbol   string
	Security string
	Sector   string
	Industry string
}

// GetConstituents scrapes the current S&P 500 membership table from
// Wikipedia. Tickers with '^' (share classes quoted as BRK.B style
// variants) are skipped since the price feed cannot resolve them.
func GetConstituents() ([]Constituent, error) {
	resp, err := http.Get(constituentsUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("constituents page returned status %d", resp.StatusCode)
	}

	return parseConstituents(resp.Body)
}

func parseConstituents(r io.Reader) ([]Constituent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse constituents page: %w", err)
	}

	out := []Constituent{}
	doc.Find("table#constituents tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		symbol := strings.TrimSpace(cells.Eq(0).Text())
		if symbol == "" || strings.Contains(symbol, "^") {
			return
		}

		out = append(out, Constituent{
			Symbol:   symbol,
			Security: strings.TrimSpace(cells.Eq(1).Text()),
			Sector:   strings.TrimSpace(cells.Eq(2).Text()),
			Industry: strings.TrimSpace(cells.Eq(3).Text()),
		})
	})

	if len(out) == 0 {
		return nil, fmt.Errorf("no constituents found, page layout may have changed")
	}

	return out, nil
}
