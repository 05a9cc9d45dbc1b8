// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	quote "watchlist_backend/internal/feature/lookup/domain/entity"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// recordGorm はRecordRepositoryインターフェースのGORM実装です。
// コレクション全体を1つのブロブとして扱い、置き換えはトランザクションで行います。
type recordGorm struct {
	db *gorm.DB
}

// recordGormがRecordRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecordRepository = (*recordGorm)(nil)

// NewRecordRepository は指定されたgorm.DB接続でrecordGormの新しいインスタンスを生成します。
func NewRecordRepository(db *gorm.DB) *recordGorm {
	return &recordGorm{db: db}
}

// RecordModel is the database row for a watchlist record. Rows are stored in
// collection order (id ascending after every full replace).
type RecordModel struct {
	ID        uint      `gorm:"primaryKey"`
	Timestamp time.Time `gorm:"not null;index"`
	Code      string    `gorm:"size:16"`
	Symbol    string    `gorm:"size:32"`
	Name      string    `gorm:"size:255"`
	Price     *float64
	PrevClose *float64
	Currency  string `gorm:"size:8"`
	Open      *float64
	High      *float64
	Low       *float64
	Volume    *int64
	Exchange  string `gorm:"size:64"`
	PriceEUR  *float64
	// SortKey is nullable: rows written before ordering existed carry NULL
	// and are back-filled with their position at load time.
	SortKey     *int
	AverageCost *float64
}

// TableName returns the table name for watchlist records.
func (RecordModel) TableName() string {
	return "watchlist_records"
}

// toModel はドメインレコードをデータベース行に変換します。
func toModel(r entity.Record) RecordModel {
	order := r.Order
	return RecordModel{
		Timestamp:   r.Timestamp,
		Code:        r.Code,
		Symbol:      r.Symbol,
		Name:        r.Name,
		Price:       r.Price,
		PrevClose:   r.PrevClose,
		Currency:    r.Currency,
		Open:        r.Open,
		High:        r.High,
		Low:         r.Low,
		Volume:      r.Volume,
		Exchange:    r.Exchange,
		PriceEUR:    r.PriceEUR,
		SortKey:     &order,
		AverageCost: r.AverageCost,
	}
}

// toEntity はデータベース行をドメインレコードに変換します。
// sort_keyがNULLの行はposition（保存順の位置）で補完します。
func toEntity(m RecordModel, position int) entity.Record {
	order := position
	if m.SortKey != nil {
		order = *m.SortKey
	}
	return entity.Record{
		Snapshot: quote.Snapshot{
			Timestamp: m.Timestamp,
			Code:      m.Code,
			Symbol:    m.Symbol,
			Name:      m.Name,
			Price:     m.Price,
			PrevClose: m.PrevClose,
			Currency:  m.Currency,
			Open:      m.Open,
			High:      m.High,
			Low:       m.Low,
			Volume:    m.Volume,
			Exchange:  m.Exchange,
		},
		PriceEUR:    m.PriceEUR,
		Order:       order,
		AverageCost: m.AverageCost,
	}
}

// Load は保存順（id昇順）で全レコードを返します。
func (r *recordGorm) Load(ctx context.Context) ([]entity.Record, error) {
	var rows []RecordModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Record, 0, len(rows))
	for i, m := range rows {
		out = append(out, toEntity(m, i))
	}
	return out, nil
}

// ReplaceAll はコレクション全体を1トランザクションで置き換えます。
// 途中で失敗した場合は何も書き込まれません。
func (r *recordGorm) ReplaceAll(ctx context.Context, records []entity.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&RecordModel{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		ms := make([]RecordModel, 0, len(records))
		for _, rec := range records {
			ms = append(ms, toModel(rec))
		}
		return tx.Create(&ms).Error
	})
}
