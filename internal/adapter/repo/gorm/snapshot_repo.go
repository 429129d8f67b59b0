package gormrepo

import (
	"context"
	"errors"
	"time"

	"worldchronicles/internal/adapter/repo/gorm/model"
	"worldchronicles/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db}
}

func (r SnapshotRepo) Get(ctx context.Context, playerID, key string) ([]byte, error) {
	var m model.AdventureSnapshot
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("player_id = ? AND save_key = ?", playerID, key).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return []byte(m.Payload), nil
}

func (r SnapshotRepo) Put(ctx context.Context, playerID, key string, value []byte) error {
	m := model.AdventureSnapshot{
		PlayerID:  playerID,
		SaveKey:   key,
		Payload:   string(value),
		UpdatedAt: time.Now().UTC(),
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "save_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&m).Error
}

func (r SnapshotRepo) Delete(ctx context.Context, playerID, key string) error {
	res := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("player_id = ? AND save_key = ?", playerID, key).
		Delete(&model.AdventureSnapshot{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r SnapshotRepo) Exists(ctx context.Context, playerID, key string) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Model(&model.AdventureSnapshot{}).
		Where("player_id = ? AND save_key = ?", playerID, key).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
