package mysql

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{
		DB: db,
	}
}

func (r *commentLikeRepository) Create(ctx context.Context, like domain.Like) error {
	row := model.CommentLike{
		ID:        "like-" + uuid.NewString(),
		Owner:     &like.Owner,
		CommentID: &like.CommentID,
	}
	err := r.DB.WithContext(ctx).Create(&row).Error
	if isDupEntry(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *commentLikeRepository) Delete(ctx context.Context, like domain.Like) error {
	return r.DB.WithContext(ctx).
		Where("owner = ? AND comment_id = ?", like.Owner, like.CommentID).
		Delete(&model.CommentLike{}).Error
}

func (r *commentLikeRepository) IsLiked(ctx context.Context, like domain.Like) (bool, error) {
	var found int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("owner = ? AND comment_id = ?", like.Owner, like.CommentID).
		Count(&found).Error
	if err != nil {
		return false, err
	}
	return found > 0, nil
}

// likeRow is the joined projection FetchByThreadID scans into.
type likeRow struct {
	ID        string
	Owner     *string
	CommentID *string
}

func (r *commentLikeRepository) FetchByThreadID(ctx context.Context, threadID string) ([]domain.LikeRecord, error) {
	var rows []likeRow
	err := r.DB.WithContext(ctx).
		Table("comments_likes").
		Select("comments_likes.id, comments_likes.owner, comments_likes.comment_id").
		Joins("LEFT JOIN comments ON comments.id = comments_likes.comment_id").
		Where("comments.thread_id = ?", threadID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.LikeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.LikeRecord{
			ID:        row.ID,
			Owner:     deref(row.Owner),
			CommentID: deref(row.CommentID),
		})
	}
	return records, nil
}
