package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (r *threadRepository) Create(ctx context.Context, ownerID string, thread domain.NewThread) (domain.AddedThread, error) {
	row := model.Thread{
		ID:    "thread-" + uuid.NewString(),
		Title: thread.Title,
		Body:  thread.Body,
		Owner: &ownerID,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return domain.NewAddedThread(row.ID, row.Title, ownerID)
}

// threadRow is the joined projection FetchByID scans into.
type threadRow struct {
	ID        string
	Title     string
	Body      string
	Username  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *threadRepository) FetchByID(ctx context.Context, id string) (domain.ThreadRecord, error) {
	var row threadRow
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, users.username, threads.created_at, threads.updated_at").
		Joins("LEFT JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ThreadRecord{}, fmt.Errorf("%w: thread", domain.ErrNotFound)
	}
	if err != nil {
		return domain.ThreadRecord{}, err
	}

	return domain.ThreadRecord{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		Username:  usernameOrMask(row.Username),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *threadRepository) CheckAvailability(ctx context.Context, id string) error {
	var found int64
	err := r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ?", id).
		Count(&found).Error
	if err != nil {
		return err
	}
	if found == 0 {
		return fmt.Errorf("%w: thread", domain.ErrNotFound)
	}
	return nil
}
