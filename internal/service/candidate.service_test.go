package service

import (
	"context"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	mock_repository "stockscout/internal/repository/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Load(t *testing.T) {
	t.Run("joins fundamentals with sentiment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		fundamentalsRepository.EXPECT().
			List([]string{"AAPL", "MSFT"}).
			Return([]model.Fundamental{
				{Symbol: "AAPL", PeRatio: floatPtr(25), Sector: strPtr("Information Technology")},
				{Symbol: "MSFT", PeRatio: floatPtr(30)},
			}, nil)
		newsRepository.EXPECT().
			AverageSentiment().
			Return(map[string]float64{"AAPL": 0.4}, nil)

		handler := candidateServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			NewsRepository:         newsRepository,
		}

		candidates, err := handler.Load(context.Background(), []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		require.Equal(t, "AAPL", candidates[0].Symbol)
		require.Equal(t, 0.4, candidates[0].AvgSentiment)
		require.Equal(t, "Information Technology", *candidates[0].Sector)

		// no news rows means neutral, not missing
		require.Equal(t, "MSFT", candidates[1].Symbol)
		require.Equal(t, 0.0, candidates[1].AvgSentiment)
	})

	t.Run("sentiment failure degrades to neutral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fundamentalsRepository := mock_repository.NewMockFundamentalsRepository(ctrl)
		newsRepository := mock_repository.NewMockNewsRepository(ctrl)

		fundamentalsRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Fundamental{{Symbol: "AAPL"}}, nil)
		newsRepository.EXPECT().
			AverageSentiment().
			Return(nil, fmt.Errorf("db down"))

		handler := candidateServiceHandler{
			FundamentalsRepository: fundamentalsRepository,
			NewsRepository:         newsRepository,
		}

		candidates, err := handler.Load(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		require.Equal(t, 0.0, candidates[0].AvgSentiment)
	})
}
