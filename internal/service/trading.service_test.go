package service

import (
	"context"
	"stockscout/internal/domain"
	"stockscout/internal/repository"
	mock_repository "stockscout/internal/repository/mocks"
	"testing"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pick(symbol string, allocation float64) domain.Pick {
	return domain.Pick{
		Candidate:  domain.Candidate{Symbol: symbol},
		Allocation: allocation,
	}
}

func Test_MirrorPicks(t *testing.T) {
	t.Run("places whole-share orders and skips the unaffordable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"AAPL", "EXPE", "NOPX"}).
			Return(map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(100),
				"EXPE": decimal.NewFromInt(1000),
			}, nil)
		alpacaRepository.EXPECT().
			PlaceOrder(repository.AlpacaPlaceOrderRequest{
				Symbol:   "AAPL",
				Quantity: decimal.NewFromInt(3),
				Side:     alpaca.Buy,
			}).
			Return(&alpaca.Order{ID: "order-1", Symbol: "AAPL"}, nil)

		handler := tradingServiceHandler{AlpacaRepository: alpacaRepository}

		orders, err := handler.MirrorPicks(context.Background(), []domain.Pick{
			pick("AAPL", 350), // 3 shares at 100
			pick("EXPE", 350), // cannot afford one share
			pick("NOPX", 350), // no live price
		})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, "AAPL", orders[0].Symbol)
	})

	t.Run("failed order is skipped, not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().IsMarketOpen().Return(false, nil)
		alpacaRepository.EXPECT().
			GetLatestPrices(gomock.Any(), []string{"AAPL", "MSFT"}).
			Return(map[string]decimal.Decimal{
				"AAPL": decimal.NewFromInt(100),
				"MSFT": decimal.NewFromInt(100),
			}, nil)
		alpacaRepository.EXPECT().
			PlaceOrder(repository.AlpacaPlaceOrderRequest{
				Symbol:   "AAPL",
				Quantity: decimal.NewFromInt(2),
				Side:     alpaca.Buy,
			}).
			Return(nil, errUnavailable)
		alpacaRepository.EXPECT().
			PlaceOrder(repository.AlpacaPlaceOrderRequest{
				Symbol:   "MSFT",
				Quantity: decimal.NewFromInt(2),
				Side:     alpaca.Buy,
			}).
			Return(&alpaca.Order{ID: "order-2", Symbol: "MSFT"}, nil)

		handler := tradingServiceHandler{AlpacaRepository: alpacaRepository}

		orders, err := handler.MirrorPicks(context.Background(), []domain.Pick{
			pick("AAPL", 200),
			pick("MSFT", 200),
		})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Equal(t, "MSFT", orders[0].Symbol)
	})
}
