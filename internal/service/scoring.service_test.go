package service

import (
	"context"
	"stockscout/internal/domain"
	mock_repository "stockscout/internal/repository/mocks"
	"stockscout/internal/scorer"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func closesFor(symbol string, prices ...float64) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for i, p := range prices {
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Date(2026, 3, i+1, 0, 0, 0, 0, time.UTC),
			Price:  p,
		})
	}
	return out
}

func Test_Score(t *testing.T) {
	t.Run("filters, derives metrics, and ranks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		priceBarRepository.EXPECT().
			RecentCloses("AAPL", 30).
			Return(closesFor("AAPL", 100, 110), nil)
		priceBarRepository.EXPECT().
			RecentCloses("MSFT", 30).
			Return(closesFor("MSFT", 100, 102, 101), nil)

		handler := scoringServiceHandler{
			PriceBarRepository: priceBarRepository,
			Scorers:            scorer.Set{},
		}

		candidates := []domain.Candidate{
			{Symbol: "MSFT", PeRatio: floatPtr(40)},
			{Symbol: "AAPL", PeRatio: floatPtr(10), DividendYield: floatPtr(0.02), AvgSentiment: 0.5},
			{Symbol: "NOPE"}, // no P/E
		}

		scored, err := handler.Score(context.Background(), candidates)
		require.NoError(t, err)
		require.Len(t, scored, 2)

		require.Equal(t, "AAPL", scored[0].Symbol)
		// 0.05*(1/10) + 0.1*0.02 + 0.5
		require.Equal(t, 0.507, scored[0].Score)
		require.Contains(t, scored[0].ScoreDetails, "heuristic")
		require.NotNil(t, scored[0].Return30D)
		require.Equal(t, 10.0, *scored[0].Return30D)
		// one period change has no sample stdev
		require.Nil(t, scored[0].Volatility30D)

		require.Equal(t, "MSFT", scored[1].Symbol)
		require.NotNil(t, scored[1].Return30D)
		require.Equal(t, 1.0, *scored[1].Return30D)
		require.NotNil(t, scored[1].Volatility30D)
		require.InDelta(t, 2.11, *scored[1].Volatility30D, 0.01)
	})

	t.Run("sparse history yields nil metrics but keeps the candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		priceBarRepository.EXPECT().
			RecentCloses("AAPL", 30).
			Return(closesFor("AAPL", 100), nil)

		handler := scoringServiceHandler{
			PriceBarRepository: priceBarRepository,
			Scorers:            scorer.Set{},
		}

		scored, err := handler.Score(context.Background(), []domain.Candidate{
			{Symbol: "AAPL", PeRatio: floatPtr(15)},
		})
		require.NoError(t, err)
		require.Len(t, scored, 1)
		require.Nil(t, scored[0].Return30D)
		require.Nil(t, scored[0].Volatility30D)
	})
}

func Test_passesFilter(t *testing.T) {
	base := func() domain.Candidate {
		return domain.Candidate{
			Symbol:  "TEST",
			PeRatio: floatPtr(20),
		}
	}

	t.Run("missing P/E rejects", func(t *testing.T) {
		c := base()
		c.PeRatio = nil
		require.False(t, passesFilter(c))
	})

	t.Run("non-positive P/E rejects", func(t *testing.T) {
		c := base()
		c.PeRatio = floatPtr(0)
		require.False(t, passesFilter(c))

		c.PeRatio = floatPtr(-5)
		require.False(t, passesFilter(c))
	})

	t.Run("P/E above 40 rejects, exactly 40 passes", func(t *testing.T) {
		c := base()
		c.PeRatio = floatPtr(40.01)
		require.False(t, passesFilter(c))

		c.PeRatio = floatPtr(40)
		require.True(t, passesFilter(c))
	})

	t.Run("token dividend rejects but missing dividend passes", func(t *testing.T) {
		c := base()
		c.DividendYield = floatPtr(0.005)
		require.False(t, passesFilter(c))

		c.DividendYield = nil
		require.True(t, passesFilter(c))

		c.DividendYield = floatPtr(0.01)
		require.True(t, passesFilter(c))
	})
}
