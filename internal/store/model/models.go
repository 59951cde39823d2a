package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PriceModel is one persisted bar row.
type PriceModel struct {
	ID        uint            `gorm:"primaryKey"`
	Symbol    string          `gorm:"size:32;index:idx_prices_symbol_ts,priority:1"`
	Timestamp time.Time       `gorm:"index:idx_prices_symbol_ts,priority:2"`
	Open      decimal.Decimal `gorm:"type:decimal(20,8)"`
	High      decimal.Decimal `gorm:"type:decimal(20,8)"`
	Low       decimal.Decimal `gorm:"type:decimal(20,8)"`
	Close     decimal.Decimal `gorm:"type:decimal(20,8)"`
	Volume    int64
	CreatedAt time.Time
}

func (PriceModel) TableName() string { return "prices" }

// SignalModel records one strategy signal emitted for a symbol.
type SignalModel struct {
	ID        uint      `gorm:"primaryKey"`
	TraceID   string    `gorm:"size:64;index"`
	Symbol    string    `gorm:"size:32;index:idx_signals_symbol_ts,priority:1"`
	Timestamp time.Time `gorm:"index:idx_signals_symbol_ts,priority:2"`
	Strategy  string    `gorm:"size:64"`
	Signal    string    `gorm:"size:16"`
	Reason    string
	Meta      datatypes.JSON
	CreatedAt time.Time
}

func (SignalModel) TableName() string { return "signals" }

// TradeModel records one executed trade tied back to its signal.
type TradeModel struct {
	ID              uint   `gorm:"primaryKey"`
	Symbol          string `gorm:"size:32;index"`
	SignalTimestamp time.Time
	BarDate         time.Time
	Side            string          `gorm:"size:8"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,8)"`
	Price           decimal.Decimal `gorm:"type:decimal(20,8)"`
	TotalValue      decimal.Decimal `gorm:"type:decimal(20,8)"`
	CreatedAt       time.Time
}

func (TradeModel) TableName() string { return "trades" }
