package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Score(t *testing.T) {
	t.Run("positive headline", func(t *testing.T) {
		score := Score("Shares surge after record growth")
		require.Greater(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
	})

	t.Run("negative headline", func(t *testing.T) {
		score := Score("Stock plunges as lawsuit and layoffs mount")
		require.Less(t, score, 0.0)
		require.GreaterOrEqual(t, score, -1.0)
	})

	t.Run("neutral text scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, Score("Quarterly filing scheduled for Thursday"))
		require.Equal(t, 0.0, Score(""))
	})

	t.Run("negator flips valence", func(t *testing.T) {
		positive := Score("earnings beat expectations")
		negated := Score("earnings not beat expectations")
		require.Greater(t, positive, 0.0)
		require.Less(t, negated, 0.0)
	})

	t.Run("more signal moves further from zero", func(t *testing.T) {
		one := Score("shares gain")
		many := Score("shares gain surge soar rebound")
		require.Greater(t, many, one)
	})

	t.Run("punctuation and case are ignored", func(t *testing.T) {
		require.Equal(t, Score("STRONG growth!"), Score("strong growth"))
	})
}
