package service

import (
	"context"
	"database/sql"
	"errors"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/domain"
	"stockscout/internal/repository"
	mock_repository "stockscout/internal/repository/mocks"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errUnavailable = errors.New("data unavailable")

func Test_Buy(t *testing.T) {
	newDb := func(t *testing.T, txCount int) *sql.DB {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		for i := 0; i < txCount; i++ {
			mock.ExpectBegin()
			mock.ExpectCommit()
		}
		return db
	}

	buyDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("buys whole shares at the latest close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		priceBarRepository.EXPECT().
			LatestClose("AAPL").
			Return(&domain.AssetPrice{Symbol: "AAPL", Price: 100}, nil)
		positionRepository.EXPECT().
			Add(gomock.Any(), model.Position{
				Symbol:    "AAPL",
				Quantity:  3,
				CostBasis: 100,
				BuyDate:   buyDate,
			}).
			DoAndReturn(func(tx *sql.Tx, p model.Position) (*model.Position, error) {
				p.PositionID = uuid.New()
				return &p, nil
			})

		handler := portfolioServiceHandler{
			Db:                 newDb(t, 1),
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		bought, err := handler.Buy(context.Background(), []domain.Pick{
			pick("AAPL", 350),
		}, buyDate)
		require.NoError(t, err)
		require.Len(t, bought, 1)
		require.Equal(t, int32(3), bought[0].Quantity)
		require.Equal(t, 100.0, bought[0].CostBasis)
	})

	t.Run("skips picks with no stored price or sub-share allocations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		priceBarRepository.EXPECT().
			LatestClose("NOPE").
			Return(nil, nil)
		priceBarRepository.EXPECT().
			LatestClose("PRCY").
			Return(&domain.AssetPrice{Symbol: "PRCY", Price: 1000}, nil)

		handler := portfolioServiceHandler{
			Db:                 newDb(t, 1),
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		bought, err := handler.Buy(context.Background(), []domain.Pick{
			pick("NOPE", 500),
			pick("PRCY", 500),
		}, buyDate)
		require.NoError(t, err)
		require.Empty(t, bought)
	})

	t.Run("buying twice doubles the position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		priceBarRepository.EXPECT().
			LatestClose("AAPL").
			Return(&domain.AssetPrice{Symbol: "AAPL", Price: 100}, nil).
			Times(2)
		positionRepository.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, p model.Position) (*model.Position, error) {
				p.PositionID = uuid.New()
				return &p, nil
			}).
			Times(2)

		handler := portfolioServiceHandler{
			Db:                 newDb(t, 2),
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		picks := []domain.Pick{pick("AAPL", 200)}

		first, err := handler.Buy(context.Background(), picks, buyDate)
		require.NoError(t, err)
		second, err := handler.Buy(context.Background(), picks, buyDate)
		require.NoError(t, err)

		// each call is a fresh simulated purchase
		require.Equal(t, int32(2), first[0].Quantity)
		require.Equal(t, int32(2), second[0].Quantity)
	})
}

func Test_Snapshot(t *testing.T) {
	t.Run("joins aggregated positions with latest close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		firstBuy := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
		positionRepository.EXPECT().
			Aggregate().
			Return([]repository.AggregatedPosition{
				{Symbol: "AAPL", Quantity: 4, AvgCost: 100, FirstBuy: firstBuy},
			}, nil)
		priceBarRepository.EXPECT().
			LatestClose("AAPL").
			Return(&domain.AssetPrice{Symbol: "AAPL", Price: 110}, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		rows, err := handler.Snapshot(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		require.Equal(t, int64(4), row.Quantity)
		require.Equal(t, 100.0, row.AvgCost)
		require.Equal(t, firstBuy, row.FirstBuy)
		require.Equal(t, 110.0, *row.LatestPrice)
		require.Equal(t, 440.0, *row.MarketValue)
		require.Equal(t, 40.0, *row.Gain)
		require.Equal(t, 10.0, *row.ReturnPct)
	})

	t.Run("missing price leaves derived fields nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		positionRepository.EXPECT().
			Aggregate().
			Return([]repository.AggregatedPosition{
				{Symbol: "XYZ", Quantity: 1, AvgCost: 10},
			}, nil)
		priceBarRepository.EXPECT().
			LatestClose("XYZ").
			Return(nil, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		rows, err := handler.Snapshot(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Nil(t, rows[0].LatestPrice)
		require.Nil(t, rows[0].MarketValue)
		require.Nil(t, rows[0].Gain)
		require.Nil(t, rows[0].ReturnPct)
	})
}

func Test_Performance(t *testing.T) {
	t.Run("replays the ledger into a summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

		positionRepository.EXPECT().
			List().
			Return([]model.Position{
				{Symbol: "AAPL", Quantity: 1, BuyDate: d1},
				{Symbol: "AAPL", Quantity: 1, BuyDate: d2},
			}, nil)
		priceBarRepository.EXPECT().
			List("AAPL", time.Time{}, gomock.Any()).
			Return([]domain.AssetPrice{
				{Symbol: "AAPL", Date: d1, Price: 100},
				{Symbol: "AAPL", Date: d2, Price: 110},
			}, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		summary, err := handler.Performance(context.Background())
		require.NoError(t, err)
		require.NotNil(t, summary)

		// day 1: 1 * 100; day 2: 2 * 110
		require.Equal(t, 100.0, summary.StartValue)
		require.Equal(t, 220.0, summary.EndValue)
		require.Equal(t, 120.0, summary.TotalReturnPct)
	})

	t.Run("buy date before any bar is priced off the prior close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
		saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
		monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

		positionRepository.EXPECT().
			List().
			Return([]model.Position{
				{Symbol: "AAPL", Quantity: 1, BuyDate: saturday},
				{Symbol: "AAPL", Quantity: 1, BuyDate: monday},
			}, nil)
		priceBarRepository.EXPECT().
			List("AAPL", time.Time{}, gomock.Any()).
			Return([]domain.AssetPrice{
				{Symbol: "AAPL", Date: friday, Price: 100},
				{Symbol: "AAPL", Date: monday, Price: 110},
			}, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		summary, err := handler.Performance(context.Background())
		require.NoError(t, err)
		require.NotNil(t, summary)

		// saturday: 1 share at friday's close; monday: 2 * 110
		require.Equal(t, 100.0, summary.StartValue)
		require.Equal(t, 220.0, summary.EndValue)
		require.Equal(t, 120.0, summary.TotalReturnPct)
	})

	t.Run("empty ledger yields nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)

		positionRepository.EXPECT().
			List().
			Return([]model.Position{}, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
		}

		summary, err := handler.Performance(context.Background())
		require.NoError(t, err)
		require.Nil(t, summary)
	})

	t.Run("single buy date yields nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		priceBarRepository := mock_repository.NewMockPriceBarRepository(ctrl)

		d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		positionRepository.EXPECT().
			List().
			Return([]model.Position{
				{Symbol: "AAPL", Quantity: 1, BuyDate: d1},
			}, nil)
		priceBarRepository.EXPECT().
			List("AAPL", time.Time{}, gomock.Any()).
			Return([]domain.AssetPrice{
				{Symbol: "AAPL", Date: d1, Price: 100},
			}, nil)

		handler := portfolioServiceHandler{
			PositionRepository: positionRepository,
			PriceBarRepository: priceBarRepository,
		}

		summary, err := handler.Performance(context.Background())
		require.NoError(t, err)
		require.Nil(t, summary)
	})
}

func Test_LivePerformance(t *testing.T) {
	t.Run("no broker positions yields nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().
			GetPositions().
			Return([]alpaca.Position{}, nil)

		handler := portfolioServiceHandler{
			AlpacaRepository: alpacaRepository,
		}

		summary, err := handler.LivePerformance(context.Background())
		require.NoError(t, err)
		require.Nil(t, summary)
	})

	t.Run("sums aligned histories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

		alpacaRepository.EXPECT().
			GetPositions().
			Return([]alpaca.Position{
				{Symbol: "AAPL", Qty: decimal.NewFromInt(2)},
			}, nil)
		alpacaRepository.EXPECT().
			GetDailyBars("AAPL", 365).
			Return([]domain.AssetPrice{
				{Symbol: "AAPL", Date: d1, Price: 100},
				{Symbol: "AAPL", Date: d2, Price: 105},
			}, nil)

		handler := portfolioServiceHandler{
			AlpacaRepository: alpacaRepository,
			LiveHistoryDays:  365,
		}

		summary, err := handler.LivePerformance(context.Background())
		require.NoError(t, err)
		require.NotNil(t, summary)

		require.Equal(t, 200.0, summary.StartValue)
		require.Equal(t, 210.0, summary.EndValue)
		require.Equal(t, 5.0, summary.TotalReturnPct)
	})

	t.Run("positions with no bars yield nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		alpacaRepository.EXPECT().
			GetPositions().
			Return([]alpaca.Position{
				{Symbol: "HALT", Qty: decimal.NewFromInt(1)},
			}, nil)
		alpacaRepository.EXPECT().
			GetDailyBars("HALT", 365).
			Return(nil, errUnavailable)

		handler := portfolioServiceHandler{
			AlpacaRepository: alpacaRepository,
			LiveHistoryDays:  365,
		}

		summary, err := handler.LivePerformance(context.Background())
		require.NoError(t, err)
		require.Nil(t, summary)
	})
}
