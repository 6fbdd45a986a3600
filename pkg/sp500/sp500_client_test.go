package sp500_client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePage = `
<html><body>
<table id="constituents">
<tbody>
<tr><th>Symbol</th><th>Security</th><th>GICS Sector</th><th>GICS Sub-Industry</th></tr>
<tr>
<td>MMM</td><td>3M</td><td>Industrials</td><td>Industrial Conglomerates</td><td>Saint Paul, Minnesota</td>
</tr>
<tr>
<td>AOS</td><td>A. O. Smith</td><td>Industrials</td><td>Building Products</td><td>Milwaukee, Wisconsin</td>
</tr>
<tr>
<td>BAD^A</td><td>Bad Ticker</td><td>Financials</td><td>Banks</td><td>Nowhere</td>
</tr>
</tbody>
</table>
</body></html>`

func Test_parseConstituents(t *testing.T) {
	out, err := parseConstituents(strings.NewReader(samplePage))
	require.NoError(t, err)

	require.Equal(t, []Constituent{
		{
			Symbol:   "MMM",
			Security: "3M",
			Sector:   "Industrials",
			Industry: "Industrial Conglomerates",
		},
		{
			Symbol:   "AOS",
			Security: "A. O. Smith",
			Sector:   "Industrials",
			Industry: "Building Products",
		},
	}, out)
}

func Test_parseConstituents_emptyPage(t *testing.T) {
	_, err := parseConstituents(strings.NewReader("<html><body></body></html>"))
	require.Error(t, err)
}
