package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/syamsf/dicoding-forum-api/domain"
)

// Service orchestrates thread operations. It is stateless between calls;
// every request runs against freshly fetched rows.
type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.CommentLikeRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.CommentLikeRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *Service) Create(ctx context.Context, userID string, payload domain.Payload) (domain.AddedThread, error) {
	newThread, err := domain.NewThreadFromPayload(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.Create(ctx, userID, newThread)
}

// GetDetail assembles the nested thread view: the thread row, its comments
// ascending by creation time, their replies and like counts, with soft-delete
// masking applied per row.
func (s *Service) GetDetail(ctx context.Context, threadID string) (domain.FormattedThread, error) {
	thread, err := s.threadRepo.FetchByID(ctx, threadID)
	if err != nil {
		return domain.FormattedThread{}, err
	}

	// The three collections are independent reads, fetch them concurrently.
	var (
		comments []domain.CommentRecord
		replies  []domain.ReplyRecord
		likes    []domain.LikeRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		comments, err = s.commentRepo.FetchByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		replies, err = s.replyRepo.FetchByThreadID(gctx, threadID)
		return
	})
	g.Go(func() (err error) {
		likes, err = s.likeRepo.FetchByThreadID(gctx, threadID)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.FormattedThread{}, err
	}

	mapped, err := s.mapComments(comments, replies, likes)
	if err != nil {
		return domain.FormattedThread{}, err
	}

	detail, err := domain.NewThreadDetail(thread, mapped)
	if err != nil {
		return domain.FormattedThread{}, err
	}
	return detail.Format(), nil
}

// mapComments merges the flat rows into formatted comments. A soft-deleted
// comment never exposes its replies, even active ones.
func (s *Service) mapComments(comments []domain.CommentRecord, replies []domain.ReplyRecord, likes []domain.LikeRecord) ([]domain.FormattedComment, error) {
	replyGroups := make(map[string][]domain.ReplyRecord)
	for _, reply := range replies {
		replyGroups[reply.CommentID] = append(replyGroups[reply.CommentID], reply)
	}

	likeCounts := make(map[string]int)
	for _, like := range likes {
		likeCounts[like.CommentID]++
	}

	mapped := make([]domain.FormattedComment, 0, len(comments))
	for _, comment := range comments {
		commentReplies := []domain.FormattedReply{}
		if !comment.Deleted.Deleted() {
			for _, reply := range replyGroups[comment.ID] {
				replyDetail, err := domain.NewReplyDetail(reply)
				if err != nil {
					return nil, err
				}
				commentReplies = append(commentReplies, replyDetail.Format())
			}
		}

		commentDetail, err := domain.NewCommentDetail(comment, likeCounts[comment.ID], commentReplies)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, commentDetail.Format())
	}
	return mapped, nil
}
