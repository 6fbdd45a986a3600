package internal

import (
	"context"
	"database/sql"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// IngestPrices pulls trailing daily bars for one symbol from Yahoo
// Finance and stores them. Re-runs are safe; existing (symbol, date)
// rows are left alone.
func IngestPrices(
	tx *sql.Tx,
	symbol string,
	days int,
	priceBarRepository repository.PriceBarRepository,
) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -days)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.PriceBar{}

	for iter.Next() {
		bar := iter.Bar()
		models = append(models, model.PriceBar{
			Symbol:    symbol,
			Date:      time.Unix(int64(bar.Timestamp), 0).UTC().Truncate(24 * time.Hour),
			Open:      bar.Open.InexactFloat64(),
			High:      bar.High.InexactFloat64(),
			Low:       bar.Low.InexactFloat64(),
			Close:     bar.Close.InexactFloat64(),
			Volume:    int64(bar.Volume),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	err := priceBarRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

// UpdateUniversePrices refreshes bars for every symbol in the
// fundamentals universe. One bad symbol does not abort the rest.
func UpdateUniversePrices(
	ctx context.Context,
	tx *sql.Tx,
	days int,
	fundamentalsRepository repository.FundamentalsRepository,
	priceBarRepository repository.PriceBarRepository,
) error {
	log := logger.FromContext(ctx)

	universe, err := fundamentalsRepository.List(nil)
	if err != nil {
		return err
	}
	if len(universe) == 0 {
		return fmt.Errorf("no symbols found in universe")
	}

	errors := []error{}

	for _, f := range universe {
		err = IngestPrices(tx, f.Symbol, days, priceBarRepository)
		if err != nil {
			err = fmt.Errorf("failed to ingest prices for %s: %w", f.Symbol, err)
			log.Warn(err)
			errors = append(errors, err)
		} else {
			log.Infof("updated prices for %s", f.Symbol)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d universe prices. first err: %w", len(errors), len(universe), errors[0])
	}

	return nil
}
