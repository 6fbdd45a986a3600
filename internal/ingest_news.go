package internal

import (
	"context"
	"database/sql"
	"encoding/xml"
	"fmt"
	"net/http"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"stockscout/internal/sentiment"
	"time"

	"github.com/google/uuid"
)

const newsFeedUrlFormat = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// IngestNews pulls the Yahoo Finance headline feed for a symbol, scores
// each headline, and stores the items. Items at or before the newest
// stored publish time are skipped so repeated runs do not double-count
// sentiment.
func IngestNews(
	ctx context.Context,
	tx *sql.Tx,
	symbol string,
	newsRepository repository.NewsRepository,
) error {
	log := logger.FromContext(ctx)

	feed, err := fetchNewsFeed(ctx, symbol)
	if err != nil {
		return err
	}

	cutoff, err := newsRepository.LatestPublished(symbol)
	if err != nil {
		return err
	}

	items := []model.NewsItem{}
	for _, item := range feed.Channel.Items {
		if item.Title == "" {
			continue
		}

		var published *time.Time
		if item.PubDate != "" {
			t, err := time.Parse(time.RFC1123Z, item.PubDate)
			if err != nil {
				t, err = time.Parse(time.RFC1123, item.PubDate)
			}
			if err != nil {
				log.Warnf("unparseable pubDate %q for %s", item.PubDate, symbol)
			} else {
				utc := t.UTC()
				published = &utc
			}
		}

		if cutoff != nil && published != nil && !published.After(*cutoff) {
			continue
		}

		newsItem := model.NewsItem{
			NewsItemID: uuid.New(),
			Symbol:     symbol,
			Title:      item.Title,
			Published:  published,
			Sentiment:  sentiment.Score(item.Title + " " + item.Description),
			CreatedAt:  time.Now().UTC(),
		}
		if item.Description != "" {
			summary := item.Description
			newsItem.Summary = &summary
		}

		items = append(items, newsItem)
	}

	if len(items) == 0 {
		return nil
	}

	err = newsRepository.Add(tx, items)
	if err != nil {
		return err
	}

	log.Infof("stored %d news items for %s", len(items), symbol)

	return nil
}

func fetchNewsFeed(ctx context.Context, symbol string) (*rssFeed, error) {
	url := fmt.Sprintf(newsFeedUrlFormat, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news feed for %s returned status %d", symbol, resp.StatusCode)
	}

	feed := rssFeed{}
	err = xml.NewDecoder(resp.Body).Decode(&feed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news feed for %s: %w", symbol, err)
	}

	return &feed, nil
}

func UpdateUniverseNews(
	ctx context.Context,
	tx *sql.Tx,
	fundamentalsRepository repository.FundamentalsRepository,
	newsRepository repository.NewsRepository,
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
		err = IngestNews(ctx, tx, f.Symbol, newsRepository)
		if err != nil {
			log.Warn(err)
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d universe news feeds. first err: %w", len(errors), len(universe), errors[0])
	}

	return nil
}
