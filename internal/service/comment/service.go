package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/adapter/api"
	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

type commentAPI interface {
	ListComments(ctx context.Context, issueID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, in api.CommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// Service implements the comment dispatchers. Every write is followed by a
// refetch of the issue's thread.
type Service struct {
	log   *slog.Logger
	api   commentAPI
	state *store.Comments
}

// NewService creates a new comment service instance.
func NewService(logger *slog.Logger, api commentAPI, state *store.Comments) *Service {
	return &Service{
		log:   logger.With("service", "comment"),
		api:   api,
		state: state,
	}
}

// Thread returns the cached thread of issueID.
func (s *Service) Thread(issueID int64) store.Thread {
	th, _ := s.state.Thread(issueID)
	return th
}

// Invalidate drops the cached thread of issueID.
func (s *Service) Invalidate(issueID int64) {
	s.state.Invalidate(issueID)
}

// CreateCommentInput holds parameters for adding a comment.
type CreateCommentInput struct {
	IssueID int64
	Content string
}

// Validate validates the create input.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.IssueID <= 0 {
		errs = append(errs, domain.FieldError{Field: "issue_id", Message: "Issue ID is required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "Comment content is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FetchComments loads the thread of issueID.
func (s *Service) FetchComments(ctx context.Context, issueID int64) ([]domain.Comment, error) {
	t := s.state.Request(issueID)

	list, err := s.api.ListComments(ctx, issueID)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, domain.StatusCopy{Fallback: "Failed to fetch comments"}))
		return nil, fmt.Errorf("comment.FetchComments: %w", err)
	}

	if err := s.state.Loaded(ctx, t, issueID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateComment adds a comment and refetches the thread.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t := s.state.RequestWrite(input.IssueID)

	cm, err := s.api.CreateComment(ctx, api.CommentRequest{
		Content: strings.TrimSpace(input.Content),
		IssueID: input.IssueID,
	})
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, domain.StatusCopy{Fallback: "Failed to create comment"}))
		return nil, fmt.Errorf("comment.CreateComment: %w", err)
	}
	if cm.IssueID == 0 {
		cm.IssueID = input.IssueID
	}

	if err := s.state.Added(ctx, t, input.IssueID, *cm); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "comment created",
		slog.Int64("comment_id", cm.ID),
		slog.Int64("issue_id", input.IssueID))

	s.refetch(ctx, input.IssueID)
	return cm, nil
}

// DeleteComment deletes a comment of issueID and refetches the thread.
func (s *Service) DeleteComment(ctx context.Context, issueID, commentID int64) error {
	t := s.state.RequestWrite(issueID)

	if err := s.api.DeleteComment(ctx, commentID); err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, domain.StatusCopy{Fallback: "Failed to delete comment"}))
		return fmt.Errorf("comment.DeleteComment: %w", err)
	}

	if err := s.state.Deleted(ctx, t, issueID, commentID); err != nil {
		return err
	}

	s.refetch(ctx, issueID)
	return nil
}

func (s *Service) refetch(ctx context.Context, issueID int64) {
	if _, err := s.FetchComments(ctx, issueID); err != nil {
		s.log.WarnContext(ctx, "comment refetch failed",
			slog.Int64("issue_id", issueID),
			slog.String("error", err.Error()))
	}
}
