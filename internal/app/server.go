// Package app sequences one synchronization pass: feed download, then per
// channel catalog fetch, reconciliation and batched pushes.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gomarketsync_api/internal/feed"
	"gomarketsync_api/internal/reconcile"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/logger"
)

// FeedLoader hides the archive download behind an interface so tests can
// feed canned remnants.
type FeedLoader interface {
	Download(ctx context.Context, src feed.Source) ([]feed.Remnant, error)
}

// ChannelResult is the outcome of one channel. A failed channel never stops
// the run; the caller decides what a partial run means.
type ChannelResult struct {
	Channel string
	Stocks  int
	Prices  int
	Err     error
}

func (r ChannelResult) Failed() bool { return r.Err != nil }

type SyncServer struct {
	loader   FeedLoader
	source   feed.Source
	channels []Channel
	log      logger.Logger
	now      func() time.Time
}

func NewSyncServer(loader FeedLoader, source feed.Source, channels []Channel, log logger.Logger) *SyncServer {
	return &SyncServer{
		loader:   loader,
		source:   source,
		channels: channels,
		log:      log,
		now:      time.Now,
	}
}

// Run executes one pass. The feed is downloaded once and shared by every
// channel; channels are processed sequentially and independently. Only a
// feed failure aborts the whole run.
func (s *SyncServer) Run(ctx context.Context) ([]ChannelResult, error) {
	runID := uuid.NewString()
	log := s.log.WithPrefix("run=" + runID[:8])
	start := time.Now()
	defer func() { metrics.RecordRunDuration(time.Since(start)) }()

	log.Log("Downloading vendor feed from %s", s.source.URL)
	remnants, err := s.loader.Download(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("vendor feed: %w", err)
	}

	results := make([]ChannelResult, 0, len(s.channels))
	for _, channel := range s.channels {
		result := s.syncChannel(ctx, channel, remnants)
		if result.Failed() {
			metrics.RecordChannelFailure(channel.Name())
			log.Log("Channel %s failed: %s", channel.Name(), result.Err)
		} else {
			log.Log("Channel %s: %d stock records, %d price records",
				channel.Name(), result.Stocks, result.Prices)
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *SyncServer) syncChannel(ctx context.Context, channel Channel, remnants []feed.Remnant) ChannelResult {
	result := ChannelResult{Channel: channel.Name()}

	offerIDs, err := channel.OfferIDs(ctx)
	if err != nil {
		result.Err = fmt.Errorf("fetching offer ids: %w", err)
		return result
	}

	// Обновить остатки
	stocks, err := reconcile.Stocks(remnants, offerIDs, channel.WarehouseID(), s.now())
	if err != nil {
		result.Err = fmt.Errorf("reconciling stocks: %w", err)
		return result
	}
	stockBatches, err := reconcile.Batch(stocks, channel.StockBatchSize())
	if err != nil {
		result.Err = err
		return result
	}
	for _, batch := range stockBatches {
		if err := channel.PushStockBatch(ctx, batch); err != nil {
			result.Err = fmt.Errorf("pushing stocks: %w", err)
			return result
		}
		result.Stocks += len(batch)
		metrics.RecordPushed(channel.Name(), "stock", len(batch))
	}

	// Поменять цены
	prices, err := reconcile.Prices(remnants, offerIDs)
	if err != nil {
		result.Err = fmt.Errorf("reconciling prices: %w", err)
		return result
	}
	priceBatches, err := reconcile.Batch(prices, channel.PriceBatchSize())
	if err != nil {
		result.Err = err
		return result
	}
	for _, batch := range priceBatches {
		if err := channel.PushPriceBatch(ctx, batch); err != nil {
			result.Err = fmt.Errorf("pushing prices: %w", err)
			return result
		}
		result.Prices += len(batch)
		metrics.RecordPushed(channel.Name(), "price", len(batch))
	}
	return result
}
