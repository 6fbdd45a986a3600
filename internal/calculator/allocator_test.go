package calculator

import (
	"stockscout/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func candidate(symbol string, rawScore float64) domain.Candidate {
	return domain.Candidate{
		Symbol:   symbol,
		RawScore: rawScore,
	}
}

func Test_Allocate(t *testing.T) {
	t.Run("splits budget proportional to score", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 6),
			candidate("B", 3),
			candidate("C", 1),
		}

		picks := Allocate(ranked, 1000, 3)
		require.Len(t, picks, 3)

		require.Equal(t, "A", picks[0].Symbol)
		require.Equal(t, 600.0, picks[0].Allocation)
		require.Equal(t, "B", picks[1].Symbol)
		require.Equal(t, 300.0, picks[1].Allocation)
		require.Equal(t, "C", picks[2].Symbol)
		require.Equal(t, 100.0, picks[2].Allocation)
	})

	t.Run("takes at most topN", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 5),
			candidate("B", 4),
			candidate("C", 3),
		}

		picks := Allocate(ranked, 900, 2)
		require.Len(t, picks, 2)
		require.Equal(t, 500.0, picks[0].Allocation)
		require.Equal(t, 400.0, picks[1].Allocation)
	})

	t.Run("topN larger than list takes everything", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 1),
		}

		picks := Allocate(ranked, 100, 10)
		require.Len(t, picks, 1)
		require.Equal(t, 100.0, picks[0].Allocation)
	})

	t.Run("non-positive topN falls back to default", func(t *testing.T) {
		ranked := []domain.Candidate{}
		for _, s := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			ranked = append(ranked, candidate(s, 1))
		}

		picks := Allocate(ranked, 500, 0)
		require.Len(t, picks, DefaultTopN)
	})

	t.Run("non-positive score sum degrades instead of dividing by zero", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 0),
			candidate("B", 0),
		}

		picks := Allocate(ranked, 1000, 2)
		require.Len(t, picks, 2)
		require.Equal(t, 0.0, picks[0].Allocation)
		require.Equal(t, 0.0, picks[1].Allocation)
	})

	t.Run("negative score gets zero without inflating the rest", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 2),
			candidate("B", -1),
		}

		picks := Allocate(ranked, 100, 2)
		require.Equal(t, 100.0, picks[0].Allocation)
		require.Equal(t, 0.0, picks[1].Allocation)

		total := 0.0
		for _, p := range picks {
			total += p.Allocation
		}
		require.InDelta(t, 100.0, total, 0.02)
	})

	t.Run("mixed signs still sum to the budget", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 3),
			candidate("B", 1),
			candidate("C", -2),
		}

		picks := Allocate(ranked, 1000, 3)
		require.Equal(t, 750.0, picks[0].Allocation)
		require.Equal(t, 250.0, picks[1].Allocation)
		require.Equal(t, 0.0, picks[2].Allocation)
	})

	t.Run("allocations round to cents", func(t *testing.T) {
		ranked := []domain.Candidate{
			candidate("A", 1),
			candidate("B", 1),
			candidate("C", 1),
		}

		picks := Allocate(ranked, 100, 3)
		for _, p := range picks {
			require.Equal(t, 33.33, p.Allocation)
		}
	})

	t.Run("empty input yields no picks", func(t *testing.T) {
		picks := Allocate(nil, 1000, 5)
		require.Empty(t, picks)
	})
}
