package reply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/domain/mocks"
	ucase "github.com/syamsf/dicoding-forum-api/internal/usecase/reply"
)

func TestCreate(t *testing.T) {
	path := domain.CommentPath{ThreadID: "thread-123", CommentID: "comment-123"}

	t.Run("success", func(t *testing.T) {
		mockReplyRepo := new(mocks.ReplyRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockThreadRepo := new(mocks.ThreadRepository)

		mockThreadRepo.On("CheckAvailability", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckAvailability", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
		expected := domain.AddedReply{ID: "reply-123", Content: "sebuah balasan", Owner: "user-123"}
		mockReplyRepo.
			On("Create", mock.Anything, "user-123", "comment-123", domain.NewReply{Content: "sebuah balasan"}).
			Return(expected, nil).Once()

		service := ucase.NewService(mockReplyRepo, mockCommentRepo, mockThreadRepo)
		added, err := service.Create(context.Background(), "user-123", path, domain.Payload{"content": "sebuah balasan"})
		require.NoError(t, err)
		assert.Equal(t, expected, added)
		mockReplyRepo.AssertExpectations(t)
	})

	t.Run("comment availability is checked within the thread", func(t *testing.T) {
		mockReplyRepo := new(mocks.ReplyRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockThreadRepo := new(mocks.ThreadRepository)

		mockThreadRepo.On("CheckAvailability", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckAvailability", mock.Anything, "thread-123", "comment-123").Return(domain.ErrNotFound).Once()

		service := ucase.NewService(mockReplyRepo, mockCommentRepo, mockThreadRepo)
		_, err := service.Create(context.Background(), "user-123", path, domain.Payload{"content": "sebuah balasan"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockReplyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	path := domain.ReplyPath{ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123"}

	t.Run("runs the full chain in order", func(t *testing.T) {
		mockReplyRepo := new(mocks.ReplyRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockThreadRepo := new(mocks.ThreadRepository)

		mockThreadRepo.On("CheckAvailability", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckAvailability", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
		mockReplyRepo.On("CheckAvailability", mock.Anything, "comment-123", "reply-123").Return(nil).Once()
		mockReplyRepo.On("VerifyOwnership", mock.Anything, "reply-123", "user-123").Return(nil).Once()
		mockReplyRepo.On("DeleteByID", mock.Anything, "reply-123").Return(nil).Once()

		service := ucase.NewService(mockReplyRepo, mockCommentRepo, mockThreadRepo)
		require.NoError(t, service.Delete(context.Background(), "user-123", path))
		mockReplyRepo.AssertExpectations(t)
	})

	t.Run("ownership failure stops the mutation", func(t *testing.T) {
		mockReplyRepo := new(mocks.ReplyRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockThreadRepo := new(mocks.ThreadRepository)

		mockThreadRepo.On("CheckAvailability", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckAvailability", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
		mockReplyRepo.On("CheckAvailability", mock.Anything, "comment-123", "reply-123").Return(nil).Once()
		mockReplyRepo.On("VerifyOwnership", mock.Anything, "reply-123", "user-456").Return(domain.ErrForbidden).Once()

		service := ucase.NewService(mockReplyRepo, mockCommentRepo, mockThreadRepo)
		err := service.Delete(context.Background(), "user-456", path)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockReplyRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("missing reply wins over ownership", func(t *testing.T) {
		mockReplyRepo := new(mocks.ReplyRepository)
		mockCommentRepo := new(mocks.CommentRepository)
		mockThreadRepo := new(mocks.ThreadRepository)

		mockThreadRepo.On("CheckAvailability", mock.Anything, "thread-123").Return(nil).Once()
		mockCommentRepo.On("CheckAvailability", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
		mockReplyRepo.On("CheckAvailability", mock.Anything, "comment-123", "reply-123").Return(domain.ErrNotFound).Once()

		service := ucase.NewService(mockReplyRepo, mockCommentRepo, mockThreadRepo)
		err := service.Delete(context.Background(), "user-456", path)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockReplyRepo.AssertNotCalled(t, "VerifyOwnership", mock.Anything, mock.Anything, mock.Anything)
	})
}
