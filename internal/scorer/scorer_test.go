package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_HeuristicScorer(t *testing.T) {
	t.Run("linear formula", func(t *testing.T) {
		score, err := HeuristicScorer{}.Predict(Features{
			PeRatio:       20,
			DividendYield: 0.02,
			Sentiment:     0.5,
		})
		require.NoError(t, err)
		// 0.05*(1/20) + 0.1*0.02 + 0.5
		require.InDelta(t, 0.5045, score, 1e-9)
	})

	t.Run("zero P/E is an error", func(t *testing.T) {
		_, err := HeuristicScorer{}.Predict(Features{})
		require.Error(t, err)
	})
}

func writeModel(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func Test_ExpressionScorer(t *testing.T) {
	t.Run("evaluates expression over features", func(t *testing.T) {
		path := writeModel(t, `{"name": "primary-v1", "expression": "0.1 * dividendYield + sentiment - 0.01 * peRatio"}`)

		s, err := LoadModel(path)
		require.NoError(t, err)
		require.Equal(t, "primary-v1", s.Name())

		score, err := s.Predict(Features{
			PeRatio:       10,
			DividendYield: 0.5,
			Sentiment:     0.2,
		})
		require.NoError(t, err)
		require.InDelta(t, 0.15, score, 1e-9)
	})

	t.Run("supports ln and sqrt", func(t *testing.T) {
		path := writeModel(t, `{"name": "m", "expression": "ln(marketCap) + sqrt(peRatio)"}`)

		s, err := LoadModel(path)
		require.NoError(t, err)

		score, err := s.Predict(Features{PeRatio: 16, MarketCap: 1})
		require.NoError(t, err)
		require.InDelta(t, 4.0, score, 1e-9)
	})

	t.Run("NaN result is an error", func(t *testing.T) {
		path := writeModel(t, `{"name": "m", "expression": "sqrt(0 - peRatio)"}`)

		s, err := LoadModel(path)
		require.NoError(t, err)

		_, err = s.Predict(Features{PeRatio: 4})
		require.Error(t, err)
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		_, err := LoadModel("does-not-exist.json")
		require.Error(t, err)
	})

	t.Run("empty expression is a load error", func(t *testing.T) {
		path := writeModel(t, `{"name": "m"}`)
		_, err := LoadModel(path)
		require.Error(t, err)
	})
}

func Test_Set(t *testing.T) {
	primary := &ExpressionScorer{name: "primary", expression: "1"}
	refined := &ExpressionScorer{name: "refined", expression: "2"}

	t.Run("refined wins when present", func(t *testing.T) {
		s := Set{Primary: primary, Refined: refined}
		require.Equal(t, "refined", s.Authoritative().Name())
		require.Len(t, s.All(), 2)
	})

	t.Run("primary wins over heuristic", func(t *testing.T) {
		s := Set{Primary: primary}
		require.Equal(t, "primary", s.Authoritative().Name())
	})

	t.Run("heuristic is the floor", func(t *testing.T) {
		s := Set{}
		require.Equal(t, "heuristic", s.Authoritative().Name())
		require.Len(t, s.All(), 1)
	})
}
