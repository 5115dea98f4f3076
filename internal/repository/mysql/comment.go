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

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, ownerID, threadID string, comment domain.NewComment) (domain.AddedComment, error) {
	row := model.Comment{
		ID:       "comment-" + uuid.NewString(),
		Content:  comment.Content,
		Owner:    &ownerID,
		ThreadID: &threadID,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.NewAddedComment(row.ID, row.Content, ownerID)
}

// commentRow is the joined projection FetchByThreadID scans into.
type commentRow struct {
	ID        string
	Username  *string
	Content   string
	IsDelete  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *commentRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	var rows []commentRow
	err := r.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, users.username, comments.content, comments.is_delete, comments.created_at, comments.updated_at").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.CommentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.CommentRecord{
			ID:        row.ID,
			Username:  usernameOrMask(row.Username),
			Content:   row.Content,
			Deleted:   domain.DeleteStateFromColumn(row.IsDelete),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return records, nil
}

// DeleteByID marks the comment deleted. The marker is written directly so
// updated_at keeps reflecting the last content change.
func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		UpdateColumn("is_delete", time.Now()).Error
}

func (r *commentRepository) CheckAvailability(ctx context.Context, threadID, commentID string) error {
	var row struct {
		ID       string
		IsDelete *time.Time
		ThreadID *string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id, is_delete, thread_id").
		Where("id = ?", commentID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: comment", domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if row.IsDelete != nil {
		return fmt.Errorf("%w: comment is deleted", domain.ErrNotFound)
	}
	if row.ThreadID == nil || *row.ThreadID != threadID {
		return fmt.Errorf("%w: comment does not belong to the given thread", domain.ErrNotFound)
	}
	return nil
}

func (r *commentRepository) VerifyOwnership(ctx context.Context, id, ownerID string) error {
	var row struct {
		Owner *string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("owner").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: comment", domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if row.Owner == nil || *row.Owner != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
