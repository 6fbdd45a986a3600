package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"stockscout/api"
	"stockscout/cmd"
	"stockscout/internal"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/scheduler"
	sp500_client "stockscout/pkg/sp500"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	if strings.EqualFold(os.Getenv("STOCKSCOUT_ENV"), "dev") {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stockscout",
		Short:        "screens a stock universe, scores candidates, and tracks a simulated portfolio",
		SilenceUsage: true,
	}

	root.AddCommand(
		serveCmd(),
		universeCmd(),
		ingestCmd(),
		newsCmd(),
		fundamentalsCmd(),
		picksCmd(),
		buyCmd(),
		reportCmd(),
		scheduleCmd(),
	)

	return root
}

func withDependencies(fn func(handler *api.ApiHandler) error) error {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	return fn(handler)
}

func runInTx(handler *api.ApiHandler, fn func(tx *sql.Tx) error) error {
	tx, err := handler.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func serveCmd() *cobra.Command {
	var port int

	c := &cobra.Command{
		Use:   "serve",
		Short: "run the dashboard API",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				return handler.StartApi(port)
			})
		},
	}
	c.Flags().IntVar(&port, "port", 3009, "port to listen on")

	return c
}

type universeCsvRow struct {
	Symbol   string `csv:"symbol"`
	Sector   string `csv:"sector"`
	Industry string `csv:"industry"`
}

func universeCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "universe",
		Short: "seed the stock universe from the S&P 500 list, or from a csv",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				assets := []model.Fundamental{}

				if file != "" {
					f, err := os.Open(file)
					if err != nil {
						return err
					}
					defer f.Close()

					rows := []universeCsvRow{}
					if err := gocsv.UnmarshalFile(f, &rows); err != nil {
						return fmt.Errorf("failed to parse %s: %w", file, err)
					}
					for _, r := range rows {
						asset := model.Fundamental{Symbol: strings.ToUpper(strings.TrimSpace(r.Symbol))}
						if r.Sector != "" {
							sector := r.Sector
							asset.Sector = &sector
						}
						if r.Industry != "" {
							industry := r.Industry
							asset.Industry = &industry
						}
						assets = append(assets, asset)
					}
				} else {
					constituents, err := sp500_client.GetConstituents()
					if err != nil {
						return err
					}
					for _, con := range constituents {
						sector := con.Sector
						industry := con.Industry
						assets = append(assets, model.Fundamental{
							Symbol:   con.Symbol,
							Sector:   &sector,
							Industry: &industry,
						})
					}
				}

				tx, err := handler.Db.Begin()
				if err != nil {
					return err
				}
				defer tx.Rollback()

				if err := handler.FundamentalsRepository.AddAssets(tx, assets); err != nil {
					return err
				}
				if err := tx.Commit(); err != nil {
					return err
				}

				fmt.Printf("seeded %d symbols\n", len(assets))
				return nil
			})
		},
	}
	c.Flags().StringVar(&file, "file", "", "csv of symbol,sector,industry rows instead of scraping")

	return c
}

func ingestCmd() *cobra.Command {
	var days int

	c := &cobra.Command{
		Use:   "ingest",
		Short: "pull trailing daily price bars for every universe symbol",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				return runInTx(handler, func(tx *sql.Tx) error {
					return internal.UpdateUniversePrices(
						context.Background(),
						tx,
						days,
						handler.FundamentalsRepository,
						handler.PriceBarRepository,
					)
				})
			})
		},
	}
	c.Flags().IntVar(&days, "days", 90, "days of history to pull")

	return c
}

func newsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "news",
		Short: "pull and score news headlines for every universe symbol",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				return runInTx(handler, func(tx *sql.Tx) error {
					return internal.UpdateUniverseNews(
						context.Background(),
						tx,
						handler.FundamentalsRepository,
						handler.NewsRepository,
					)
				})
			})
		},
	}
}

func fundamentalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fundamentals",
		Short: "refresh valuation metrics for every universe symbol",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				return runInTx(handler, func(tx *sql.Tx) error {
					return internal.UpdateUniverseFundamentals(
						context.Background(),
						tx,
						handler.FundamentalsRepository,
					)
				})
			})
		},
	}
}

func picksCmd() *cobra.Command {
	var symbols string

	c := &cobra.Command{
		Use:   "picks",
		Short: "run a selection pass and print the picks",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				allowList := []string{}
				if symbols != "" {
					for _, s := range strings.Split(symbols, ",") {
						allowList = append(allowList, strings.ToUpper(strings.TrimSpace(s)))
					}
				}

				picks, err := handler.PicksService.GeneratePicks(context.Background(), allowList)
				if err != nil {
					return err
				}

				internal.Pprint(picks)
				return nil
			})
		},
	}
	c.Flags().StringVar(&symbols, "symbols", "", "comma-separated allow-list")

	return c
}

func buyCmd() *cobra.Command {
	var mirror bool

	c := &cobra.Command{
		Use:   "buy",
		Short: "run a selection pass and record the buys in the ledger",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				ctx := context.Background()

				picks, err := handler.PicksService.GeneratePicks(ctx, nil)
				if err != nil {
					return err
				}

				bought, err := handler.PortfolioService.Buy(ctx, picks, time.Now().UTC().Truncate(24*time.Hour))
				if err != nil {
					return err
				}
				fmt.Printf("recorded %d buys\n", len(bought))

				if mirror {
					orders, err := handler.TradingService.MirrorPicks(ctx, picks)
					if err != nil {
						return err
					}
					fmt.Printf("placed %d broker orders\n", len(orders))
				}

				return nil
			})
		},
	}
	c.Flags().BoolVar(&mirror, "mirror", false, "also place paper-broker orders")

	return c
}

func reportCmd() *cobra.Command {
	var recipient string

	c := &cobra.Command{
		Use:   "report",
		Short: "run a selection pass and email the report",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				ctx := context.Background()

				to := recipient
				if to == "" {
					to = handler.ReportRecipient
				}
				if to == "" {
					return fmt.Errorf("no recipient given and none configured")
				}
				if handler.EmailService == nil {
					return fmt.Errorf("email is not configured")
				}

				picks, err := handler.PicksService.GeneratePicks(ctx, nil)
				if err != nil {
					return err
				}

				return handler.EmailService.SendPicksReport(ctx, to, picks, time.Now().UTC())
			})
		},
	}
	c.Flags().StringVar(&recipient, "recipient", "", "override the configured report address")

	return c
}

func scheduleCmd() *cobra.Command {
	var cronExpr string
	var mirror bool
	var runNow bool

	c := &cobra.Command{
		Use:   "schedule",
		Short: "run the daily pipeline on a cron schedule",
		RunE: func(c *cobra.Command, args []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				ctx := context.Background()

				s := scheduler.New(
					ctx,
					handler.Db,
					handler.FundamentalsRepository,
					handler.PriceBarRepository,
					handler.NewsRepository,
					handler.PicksService,
					handler.PortfolioService,
					handler.TradingService,
					handler.EmailService,
					handler.ReportRecipient,
					mirror,
				)
				if err := s.Register(cronExpr); err != nil {
					return err
				}

				if runNow {
					s.DailyRun()
				}

				s.Start()
				defer s.Stop()

				select {}
			})
		},
	}
	c.Flags().StringVar(&cronExpr, "cron", "30 21 * * 1-5", "cron expression, default is just after US market close")
	c.Flags().BoolVar(&mirror, "mirror", false, "also place paper-broker orders")
	c.Flags().BoolVar(&runNow, "now", false, "run one pipeline pass immediately")

	return c
}
