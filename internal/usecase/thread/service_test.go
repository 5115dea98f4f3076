package thread_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/domain/mocks"
	ucase "github.com/syamsf/dicoding-forum-api/internal/usecase/thread"
)

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		service := ucase.NewService(mockThreadRepo, new(mocks.CommentRepository), new(mocks.ReplyRepository), new(mocks.CommentLikeRepository))

		expected := domain.AddedThread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}
		mockThreadRepo.
			On("Create", mock.Anything, "user-123", domain.NewThread{Title: "sebuah thread", Body: "sebuah body"}).
			Return(expected, nil).Once()

		added, err := service.Create(context.Background(), "user-123", domain.Payload{
			"title": "sebuah thread",
			"body":  "sebuah body",
		})
		require.NoError(t, err)
		assert.Equal(t, expected, added)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		service := ucase.NewService(mockThreadRepo, new(mocks.CommentRepository), new(mocks.ReplyRepository), new(mocks.CommentLikeRepository))

		_, err := service.Create(context.Background(), "user-123", domain.Payload{"title": "sebuah thread"})
		assert.Equal(t, domain.ValidationError{Entity: domain.EntityNewThread, Failure: domain.MissingProperty}, err)
		mockThreadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetDetail(t *testing.T) {
	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	deletedAt := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)

	threadRecord := domain.ThreadRecord{
		ID:        "thread-1",
		Title:     "sebuah thread",
		Body:      "sebuah body",
		Username:  "dicoding",
		CreatedAt: created,
		UpdatedAt: created,
	}

	t.Run("assembles the nested soft-delete-aware tree", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockReplyRepo := new(mocks.ReplyRepository)
		mockLikeRepo := new(mocks.CommentLikeRepository)

		mockThreadRepo.On("FetchByID", mock.Anything, "thread-1").Return(threadRecord, nil).Once()
		mockCommentRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.CommentRecord{
			{
				ID: "comment-1", Username: "johndoe", Content: "komentar pertama",
				Deleted: domain.ActiveState(), CreatedAt: created, UpdatedAt: created,
			},
			{
				ID: "comment-2", Username: "dicoding", Content: "komentar kedua",
				Deleted: domain.DeletedState(deletedAt), CreatedAt: created.Add(time.Minute), UpdatedAt: deletedAt,
			},
		}, nil).Once()
		mockReplyRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.ReplyRecord{
			{
				ID: "reply-1", CommentID: "comment-1", Username: "dicoding", Content: "balasan pertama",
				Deleted: domain.ActiveState(), CreatedAt: created.Add(2 * time.Minute), UpdatedAt: created.Add(2 * time.Minute),
			},
			{
				ID: "reply-2", CommentID: "comment-1", Username: "johndoe", Content: "balasan kedua",
				Deleted: domain.DeletedState(deletedAt), CreatedAt: created.Add(3 * time.Minute), UpdatedAt: deletedAt,
			},
			// Still attached to the soft-deleted comment-2; the engine must
			// suppress it even though the reply itself is active.
			{
				ID: "reply-3", CommentID: "comment-2", Username: "johndoe", Content: "balasan ketiga",
				Deleted: domain.ActiveState(), CreatedAt: created.Add(4 * time.Minute), UpdatedAt: created.Add(4 * time.Minute),
			},
		}, nil).Once()
		mockLikeRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.LikeRecord{
			{ID: "like-1", Owner: "user-1", CommentID: "comment-1"},
			{ID: "like-2", Owner: "user-2", CommentID: "comment-1"},
			{ID: "like-3", Owner: "user-1", CommentID: "comment-2"},
		}, nil).Once()

		service := ucase.NewService(mockThreadRepo, mockCommentRepo, mockReplyRepo, mockLikeRepo)
		formatted, err := service.GetDetail(context.Background(), "thread-1")
		require.NoError(t, err)

		assert.Equal(t, "thread-1", formatted.ID)
		assert.Equal(t, "dicoding", formatted.Username)
		require.Len(t, formatted.Comments, 2)

		first := formatted.Comments[0]
		assert.Equal(t, "comment-1", first.ID)
		assert.Equal(t, "komentar pertama", first.Content)
		assert.Equal(t, 2, first.LikeCount)
		require.Len(t, first.Replies, 2)
		assert.Equal(t, "balasan pertama", first.Replies[0].Content)
		assert.Equal(t, domain.DeletedReplyMask, first.Replies[1].Content)
		assert.Equal(t, created.Add(3*time.Minute).Format(time.RFC3339), first.Replies[1].Date)

		second := formatted.Comments[1]
		assert.Equal(t, "comment-2", second.ID)
		assert.Equal(t, domain.DeletedCommentMask, second.Content)
		assert.Equal(t, 1, second.LikeCount)
		assert.Empty(t, second.Replies, "deleted comments never expose replies")

		mockThreadRepo.AssertExpectations(t)
		mockCommentRepo.AssertExpectations(t)
		mockReplyRepo.AssertExpectations(t)
		mockLikeRepo.AssertExpectations(t)
	})

	t.Run("thread without comments yields an empty list", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockReplyRepo := new(mocks.ReplyRepository)
		mockLikeRepo := new(mocks.CommentLikeRepository)

		mockThreadRepo.On("FetchByID", mock.Anything, "thread-1").Return(threadRecord, nil).Once()
		mockCommentRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.CommentRecord{}, nil).Once()
		mockReplyRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.ReplyRecord{}, nil).Once()
		mockLikeRepo.On("FetchByThreadID", mock.Anything, "thread-1").Return([]domain.LikeRecord{}, nil).Once()

		service := ucase.NewService(mockThreadRepo, mockCommentRepo, mockReplyRepo, mockLikeRepo)
		formatted, err := service.GetDetail(context.Background(), "thread-1")
		require.NoError(t, err)
		assert.NotNil(t, formatted.Comments)
		assert.Empty(t, formatted.Comments)
	})

	t.Run("missing thread short-circuits", func(t *testing.T) {
		mockThreadRepo := new(mocks.ThreadRepository)
		mockCommentRepo := new(mocks.CommentRepository)

		mockThreadRepo.On("FetchByID", mock.Anything, "thread-x").Return(domain.ThreadRecord{}, domain.ErrNotFound).Once()

		service := ucase.NewService(mockThreadRepo, mockCommentRepo, new(mocks.ReplyRepository), new(mocks.CommentLikeRepository))
		_, err := service.GetDetail(context.Background(), "thread-x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockCommentRepo.AssertNotCalled(t, "FetchByThreadID", mock.Anything, mock.Anything)
	})
}
