package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/syamsf/dicoding-forum-api/domain"
)

// Service orchestrates comment operations: availability checks first, then
// ownership, then exactly one mutation.
type Service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, t domain.ThreadRepository, l domain.CommentLikeRepository) *Service {
	return &Service{
		commentRepo: c,
		threadRepo:  t,
		likeRepo:    l,
	}
}

func (s *Service) Create(ctx context.Context, userID, threadID string, payload domain.Payload) (domain.AddedComment, error) {
	if err := s.threadRepo.CheckAvailability(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	newComment, err := domain.NewCommentFromPayload(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.Create(ctx, userID, threadID, newComment)
}

// Delete soft-deletes a comment. Existence checks run before the ownership
// check so a missing resource reports not-found instead of forbidden.
func (s *Service) Delete(ctx context.Context, userID string, path domain.CommentPath) error {
	if err := s.threadRepo.CheckAvailability(ctx, path.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckAvailability(ctx, path.ThreadID, path.CommentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyOwnership(ctx, path.CommentID, userID); err != nil {
		return err
	}
	return s.commentRepo.DeleteByID(ctx, path.CommentID)
}

// ToggleLike likes the comment when no like by userID exists, unlikes it
// otherwise. A uniqueness conflict on insert means a concurrent toggle won
// the race; the like already exists, so the toggle's goal is met.
func (s *Service) ToggleLike(ctx context.Context, userID string, path domain.CommentPath) error {
	if err := s.threadRepo.CheckAvailability(ctx, path.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckAvailability(ctx, path.ThreadID, path.CommentID); err != nil {
		return err
	}

	like, err := domain.NewLike(userID, path.CommentID)
	if err != nil {
		return err
	}

	liked, err := s.likeRepo.IsLiked(ctx, like)
	if err != nil {
		return err
	}
	if liked {
		return s.likeRepo.Delete(ctx, like)
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logrus.Warnf("duplicate like for comment %s by user %s, treating as already liked", path.CommentID, userID)
			return nil
		}
		return err
	}
	return nil
}
