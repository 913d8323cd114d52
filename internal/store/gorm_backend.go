package store

import (
	"context"
	"errors"

	"github.com/pindranil/waste-wise-report/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend stores each record as one row in the blobs table.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob models.Blob
	err := b.db.WithContext(ctx).First(&blob, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob.Value, true, nil
}

func (b *GormBackend) Save(ctx context.Context, key string, data []byte) error {
	blob := models.Blob{Key: key, Value: data}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}
