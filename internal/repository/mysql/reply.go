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

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) Create(ctx context.Context, ownerID, commentID string, reply domain.NewReply) (domain.AddedReply, error) {
	row := model.Reply{
		ID:        "reply-" + uuid.NewString(),
		Content:   reply.Content,
		Owner:     &ownerID,
		CommentID: &commentID,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.NewAddedReply(row.ID, row.Content, ownerID)
}

// replyRow is the joined projection the fetch queries scan into.
type replyRow struct {
	ID        string
	CommentID *string
	Username  *string
	Content   string
	IsDelete  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (row replyRow) toRecord() domain.ReplyRecord {
	return domain.ReplyRecord{
		ID:        row.ID,
		CommentID: deref(row.CommentID),
		Username:  usernameOrMask(row.Username),
		Content:   row.Content,
		Deleted:   domain.DeleteStateFromColumn(row.IsDelete),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func (r *replyRepository) FetchByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	var rows []replyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, users.username, replies.content, replies.is_delete, replies.created_at, replies.updated_at").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.ReplyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

// FetchByThreadID pre-filters replies under soft-deleted comments; the
// aggregation engine never sees them.
func (r *replyRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.ReplyRecord, error) {
	var rows []replyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, users.username, replies.content, replies.is_delete, replies.created_at, replies.updated_at").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Joins("LEFT JOIN comments ON comments.id = replies.comment_id").
		Where("comments.thread_id = ? AND comments.is_delete IS NULL", threadID).
		Order("replies.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.ReplyRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *replyRepository) DeleteByID(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		UpdateColumn("is_delete", time.Now()).Error
}

func (r *replyRepository) CheckAvailability(ctx context.Context, commentID, replyID string) error {
	var row struct {
		ID        string
		IsDelete  *time.Time
		CommentID *string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Select("id, is_delete, comment_id").
		Where("id = ?", replyID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: reply", domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if row.IsDelete != nil {
		return fmt.Errorf("%w: reply is deleted", domain.ErrNotFound)
	}
	if row.CommentID == nil || *row.CommentID != commentID {
		return fmt.Errorf("%w: reply does not belong to the given comment", domain.ErrNotFound)
	}
	return nil
}

func (r *replyRepository) VerifyOwnership(ctx context.Context, id, ownerID string) error {
	var row struct {
		Owner *string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Select("owner").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: reply", domain.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if row.Owner == nil || *row.Owner != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
