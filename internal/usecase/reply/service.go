package reply

import (
	"context"

	"github.com/syamsf/dicoding-forum-api/domain"
)

// Service orchestrates reply operations down the thread, comment, reply
// availability chain.
type Service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*Service)(nil)

// NewService will create a new reply service object
func NewService(r domain.ReplyRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		replyRepo:   r,
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) Create(ctx context.Context, userID string, path domain.CommentPath, payload domain.Payload) (domain.AddedReply, error) {
	if err := s.threadRepo.CheckAvailability(ctx, path.ThreadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.CheckAvailability(ctx, path.ThreadID, path.CommentID); err != nil {
		return domain.AddedReply{}, err
	}

	newReply, err := domain.NewReplyFromPayload(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.Create(ctx, userID, path.CommentID, newReply)
}

// Delete soft-deletes a reply. The whole availability chain runs before the
// ownership check, mirroring comment deletion.
func (s *Service) Delete(ctx context.Context, userID string, path domain.ReplyPath) error {
	if err := s.threadRepo.CheckAvailability(ctx, path.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.CheckAvailability(ctx, path.ThreadID, path.CommentID); err != nil {
		return err
	}
	if err := s.replyRepo.CheckAvailability(ctx, path.CommentID, path.ReplyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyOwnership(ctx, path.ReplyID, userID); err != nil {
		return err
	}
	return s.replyRepo.DeleteByID(ctx, path.ReplyID)
}
