// Package sentiment scores headline text on a [-1, 1] scale using a
// small valence lexicon. It is a lightweight stand-in for a full
// sentiment engine - good enough to tilt a stock score, nothing more.
package sentiment

import (
	"math"
	"strings"
)

// word valences, roughly on a [-4, 4] scale before normalization
var lexicon = map[string]float64{
	"beat":          1.9,
	"beats":         1.9,
	"best":          3.2,
	"bearish":       -2.6,
	"bullish":       2.6,
	"boom":          2.1,
	"breakthrough":  2.4,
	"buy":           1.3,
	"crash":         -3.3,
	"crisis":        -3.1,
	"cut":           -1.2,
	"cuts":          -1.2,
	"decline":       -1.7,
	"declines":      -1.7,
	"downgrade":     -2.3,
	"downgraded":    -2.3,
	"drop":          -1.6,
	"drops":         -1.6,
	"expand":        1.4,
	"expands":       1.4,
	"fall":          -1.6,
	"falls":         -1.6,
	"fear":          -2.2,
	"fraud":         -3.4,
	"gain":          1.8,
	"gains":         1.8,
	"grow":          1.6,
	"growth":        1.8,
	"high":          1.1,
	"jump":          1.7,
	"jumps":         1.7,
	"lawsuit":       -2.4,
	"layoff":        -2.5,
	"layoffs":       -2.5,
	"loss":          -2.1,
	"losses":        -2.1,
	"low":           -1.1,
	"miss":          -1.8,
	"misses":        -1.8,
	"opportunity":   1.7,
	"outperform":    2.2,
	"plunge":        -2.9,
	"plunges":       -2.9,
	"profit":        2.0,
	"profits":       2.0,
	"rally":         2.2,
	"rallies":       2.2,
	"rebound":       1.9,
	"record":        1.5,
	"recession":     -2.9,
	"recovery":      1.8,
	"rise":          1.5,
	"rises":         1.5,
	"risk":          -1.4,
	"sell":          -1.1,
	"selloff":       -2.5,
	"sink":          -2.0,
	"sinks":         -2.0,
	"slump":         -2.2,
	"soar":          2.6,
	"soars":         2.6,
	"strong":        1.9,
	"surge":         2.3,
	"surges":        2.3,
	"tumble":        -2.3,
	"tumbles":       -2.3,
	"underperform":  -2.2,
	"upgrade":       2.3,
	"upgraded":      2.3,
	"warn":          -1.9,
	"warns":         -1.9,
	"weak":          -1.8,
	"win":           2.0,
	"wins":          2.0,
	"worst":         -3.1,
}

var negators = map[string]bool{
	"not":   true,
	"no":    true,
	"never": true,
	"isnt":  true,
	"wont":  true,
	"cant":  true,
}

// normalization constant, same role as VADER's alpha
const alpha = 15.0

// Score returns a compound sentiment in [-1, 1] for the given text.
// Empty or fully neutral text scores 0.
func Score(text string) float64 {
	words := tokenize(text)

	total := 0.0
	for i, w := range words {
		valence, ok := lexicon[w]
		if !ok {
			continue
		}
		// a negator immediately before the word flips it
		if i > 0 && negators[words[i-1]] {
			valence = -valence
		}
		total += valence
	}

	if total == 0 {
		return 0
	}

	compound := total / math.Sqrt(total*total+alpha)
	return math.Round(compound*10000) / 10000
}

func tokenize(text string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		} else if r == '-' || r == '/' {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
