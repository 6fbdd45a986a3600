package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"stockscout/internal/calculator"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/domain"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"time"
)

// PortfolioService maintains the simulated buy ledger and reconstructs
// its value over time from stored daily closes.
type PortfolioService interface {
	// Buy appends one ledger entry per affordable pick. Repeated calls
	// with the same picks append again; averaging down is intentional.
	Buy(ctx context.Context, picks []domain.Pick, date time.Time) ([]model.Position, error)
	Snapshot(ctx context.Context) ([]domain.SnapshotRow, error)
	Performance(ctx context.Context) (*domain.PerformanceSummary, error)
	Reset(ctx context.Context) error
	// LivePerformance reconstructs the value series of the real broker
	// account from its current positions and daily bars.
	LivePerformance(ctx context.Context) (*domain.PerformanceSummary, error)
}

type portfolioServiceHandler struct {
	Db                 *sql.DB
	PositionRepository repository.PositionRepository
	PriceBarRepository repository.PriceBarRepository
	AlpacaRepository   repository.AlpacaRepository
	LiveHistoryDays    int
}

func NewPortfolioService(
	db *sql.DB,
	positionRepository repository.PositionRepository,
	priceBarRepository repository.PriceBarRepository,
	alpacaRepository repository.AlpacaRepository,
) PortfolioService {
	return portfolioServiceHandler{
		Db:                 db,
		PositionRepository: positionRepository,
		PriceBarRepository: priceBarRepository,
		AlpacaRepository:   alpacaRepository,
		LiveHistoryDays:    365,
	}
}

func (h portfolioServiceHandler) Buy(ctx context.Context, picks []domain.Pick, date time.Time) ([]model.Position, error) {
	log := logger.FromContext(ctx)

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	bought := []model.Position{}
	for _, p := range picks {
		price, err := h.PriceBarRepository.LatestClose(p.Symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest close for %s: %w", p.Symbol, err)
		}
		if price == nil {
			log.Warnf("no stored price for %s, skipping buy", p.Symbol)
			continue
		}

		quantity := int32(math.Floor(p.Allocation / price.Price))
		if quantity < 1 {
			log.Warnf("allocation %.2f cannot afford one share of %s at %.2f", p.Allocation, p.Symbol, price.Price)
			continue
		}

		position, err := h.PositionRepository.Add(tx, model.Position{
			Symbol:    p.Symbol,
			Quantity:  quantity,
			CostBasis: price.Price,
			BuyDate:   date,
		})
		if err != nil {
			return nil, err
		}
		bought = append(bought, *position)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit buys: %w", err)
	}

	return bought, nil
}

func (h portfolioServiceHandler) Snapshot(ctx context.Context) ([]domain.SnapshotRow, error) {
	aggregated, err := h.PositionRepository.Aggregate()
	if err != nil {
		return nil, err
	}

	out := []domain.SnapshotRow{}
	for _, a := range aggregated {
		row := domain.SnapshotRow{
			Symbol:   a.Symbol,
			Quantity: a.Quantity,
			AvgCost:  a.AvgCost,
			FirstBuy: a.FirstBuy,
		}

		price, err := h.PriceBarRepository.LatestClose(a.Symbol)
		if err != nil {
			return nil, err
		}
		if price != nil {
			marketValue := float64(a.Quantity) * price.Price
			costValue := float64(a.Quantity) * a.AvgCost
			gain := marketValue - costValue
			row.LatestPrice = &price.Price
			row.MarketValue = &marketValue
			row.Gain = &gain
			if costValue != 0 {
				returnPct := 100 * gain / costValue
				row.ReturnPct = &returnPct
			}
		}

		out = append(out, row)
	}

	return out, nil
}

func (h portfolioServiceHandler) Performance(ctx context.Context) (*domain.PerformanceSummary, error) {
	positions, err := h.PositionRepository.List()
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, nil
	}

	entries := make([]calculator.LedgerEntry, 0, len(positions))
	symbols := map[string]bool{}
	for _, p := range positions {
		entries = append(entries, calculator.LedgerEntry{
			Symbol:   p.Symbol,
			Quantity: int64(p.Quantity),
			BuyDate:  p.BuyDate,
		})
		symbols[p.Symbol] = true
	}

	// fetch from the beginning of time, not from the first buy date: the
	// close that prices the first observation can precede it (a weekend
	// buy is valued off Friday's bar)
	histories := map[string][]domain.AssetPrice{}
	for symbol := range symbols {
		prices, err := h.PriceBarRepository.List(symbol, time.Time{}, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		histories[symbol] = prices
	}

	series := calculator.ReplayLedger(entries, histories)

	return calculator.CalculatePerformance(series)
}

func (h portfolioServiceHandler) Reset(ctx context.Context) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = h.PositionRepository.DeleteAll(tx)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (h portfolioServiceHandler) LivePerformance(ctx context.Context) (*domain.PerformanceSummary, error) {
	log := logger.FromContext(ctx)

	positions, err := h.AlpacaRepository.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("failed to get broker positions: %w", err)
	}
	if len(positions) == 0 {
		return nil, nil
	}

	quantities := map[string]float64{}
	histories := map[string][]domain.AssetPrice{}
	for _, p := range positions {
		qty, _ := p.Qty.Float64()
		quantities[p.Symbol] = qty

		bars, err := h.AlpacaRepository.GetDailyBars(p.Symbol, h.LiveHistoryDays)
		if err != nil {
			log.Warnf("failed to get daily bars for %s: %v", p.Symbol, err)
			continue
		}
		histories[p.Symbol] = bars
	}

	series := calculator.AlignAndSum(quantities, histories)
	if len(series) == 0 {
		return nil, nil
	}

	return calculator.CalculatePerformance(series)
}
