package gormrepo

import (
	"context"
	"errors"

	"worldchronicles/internal/adapter/repo/gorm/model"
	"worldchronicles/internal/app/ports"
	"worldchronicles/internal/domain/adventure"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, playerID string, entries []adventure.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]model.JournalEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.JournalEntry{
			ID:         e.ID,
			PlayerID:   playerID,
			Kind:       string(e.Kind),
			StoryKey:   int32(e.StoryKey),
			Message:    e.Message,
			OccurredAt: e.OccurredAt,
		})
	}
	err := getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&rows).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

// ListByPlayer returns the newest entries first.
func (r JournalRepo) ListByPlayer(ctx context.Context, playerID string, limit int) ([]adventure.JournalEntry, error) {
	rows := []model.JournalEntry{}
	query := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where(&model.JournalEntry{PlayerID: playerID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]adventure.JournalEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, adventure.JournalEntry{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			Kind:       adventure.JournalKind(row.Kind),
			StoryKey:   int(row.StoryKey),
			Message:    row.Message,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}
