package gormstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"swingbot/internal/market"
	"swingbot/internal/store/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const insertBatchSize = 500

// GormStore implements store.Store on Gorm + SQLite. The database path is
// always injected by the caller.
type GormStore struct {
	db *gorm.DB
}

// New opens (creating if needed) the sqlite database at path and migrates
// the price, signal and trade tables.
func New(path string) (*GormStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("gorm store: database path cannot be empty")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&cache=shared", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.PriceModel{}, &model.SignalModel{}, &model.TradeModel{}); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite + WAL: a little parallelism for readers while keeping lock
	// contention low.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(2)
	return &GormStore{db: db}, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *GormStore) SavePrices(ctx context.Context, symbol string, bars []market.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	rows := make([]model.PriceModel, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, model.PriceModel{
			Symbol:    symbol,
			Timestamp: b.Timestamp,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Volume:    b.Volume,
		})
	}
	return s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error
}

func (s *GormStore) ListPrices(ctx context.Context, symbol string, from, to time.Time) ([]model.PriceModel, error) {
	var rows []model.PriceModel
	err := s.rangeQuery(ctx, "timestamp", symbol, from, to).Order("timestamp asc").Find(&rows).Error
	return rows, err
}

func (s *GormStore) SaveSignal(ctx context.Context, signal *model.SignalModel) error {
	return s.db.WithContext(ctx).Create(signal).Error
}

func (s *GormStore) ListSignals(ctx context.Context, symbol string, from, to time.Time) ([]model.SignalModel, error) {
	var rows []model.SignalModel
	err := s.rangeQuery(ctx, "timestamp", symbol, from, to).Order("timestamp asc").Find(&rows).Error
	return rows, err
}

func (s *GormStore) SaveTrade(ctx context.Context, trade *model.TradeModel) error {
	return s.db.WithContext(ctx).Create(trade).Error
}

func (s *GormStore) ListTrades(ctx context.Context, symbol string, from, to time.Time) ([]model.TradeModel, error) {
	var rows []model.TradeModel
	err := s.rangeQuery(ctx, "signal_timestamp", symbol, from, to).Order("signal_timestamp asc").Find(&rows).Error
	return rows, err
}

func (s *GormStore) rangeQuery(ctx context.Context, tsColumn, symbol string, from, to time.Time) *gorm.DB {
	q := s.db.WithContext(ctx)
	if symbol != "" {
		q = q.Where("symbol = ?", symbol)
	}
	if !from.IsZero() {
		q = q.Where(tsColumn+" >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where(tsColumn+" <= ?", to)
	}
	return q
}

func (s *GormStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
