package service

import (
	"context"
	"fmt"
	"stockscout/internal/domain"
	"stockscout/internal/logger"
	"stockscout/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"
)

// TradingService mirrors the simulated buy list into real paper-broker
// orders. Best effort: a failed order is logged and skipped so one bad
// symbol does not block the rest of the batch.
type TradingService interface {
	MirrorPicks(ctx context.Context, picks []domain.Pick) ([]alpaca.Order, error)
	AccountSummary(ctx context.Context) (*domain.BrokerSummary, error)
}

type tradingServiceHandler struct {
	AlpacaRepository repository.AlpacaRepository
}

func NewTradingService(alpacaRepository repository.AlpacaRepository) TradingService {
	return tradingServiceHandler{AlpacaRepository: alpacaRepository}
}

func (h tradingServiceHandler) MirrorPicks(ctx context.Context, picks []domain.Pick) ([]alpaca.Order, error) {
	log := logger.FromContext(ctx)

	open, err := h.AlpacaRepository.IsMarketOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to check market clock: %w", err)
	}
	if !open {
		log.Warn("market is closed, orders will queue until next open")
	}

	symbols := make([]string, 0, len(picks))
	for _, p := range picks {
		symbols = append(symbols, p.Symbol)
	}
	prices, err := h.AlpacaRepository.GetLatestPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prices: %w", err)
	}

	orders := []alpaca.Order{}
	for _, p := range picks {
		price, ok := prices[p.Symbol]
		if !ok {
			log.Warnf("no live price for %s, skipping order", p.Symbol)
			continue
		}

		quantity := decimal.NewFromFloat(p.Allocation).Div(price).Floor()
		if quantity.LessThan(decimal.NewFromInt(1)) {
			log.Warnf("allocation %.2f cannot afford one share of %s at %s", p.Allocation, p.Symbol, price.String())
			continue
		}

		order, err := h.AlpacaRepository.PlaceOrder(repository.AlpacaPlaceOrderRequest{
			Symbol:   p.Symbol,
			Quantity: quantity,
			Side:     alpaca.Buy,
		})
		if err != nil {
			log.Errorf("failed to place order for %s: %v", p.Symbol, err)
			continue
		}

		log.Infof("placed order %s: buy %s %s", order.ID, quantity.String(), p.Symbol)
		orders = append(orders, *order)
	}

	return orders, nil
}

func (h tradingServiceHandler) AccountSummary(ctx context.Context) (*domain.BrokerSummary, error) {
	account, err := h.AlpacaRepository.GetAccount()
	if err != nil {
		return nil, err
	}

	positions, err := h.AlpacaRepository.GetPositions()
	if err != nil {
		return nil, err
	}

	out := domain.BrokerSummary{
		Cash:        account.Cash.InexactFloat64(),
		Equity:      account.Equity.InexactFloat64(),
		BuyingPower: account.BuyingPower.InexactFloat64(),
	}
	for _, p := range positions {
		qty, _ := p.Qty.Float64()
		row := domain.BrokerPosition{
			Symbol:   p.Symbol,
			Quantity: qty,
		}
		if p.CurrentPrice != nil {
			price := p.CurrentPrice.InexactFloat64()
			row.CurrentPrice = &price
		}
		if p.MarketValue != nil {
			mv := p.MarketValue.InexactFloat64()
			row.MarketValue = &mv
		}
		if p.UnrealizedPL != nil {
			pl := p.UnrealizedPL.InexactFloat64()
			row.UnrealizedPL = &pl
		}
		out.Positions = append(out.Positions, row)
	}

	return &out, nil
}
