package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ListComments returns the comments of an issue.
func (c *Client) ListComments(ctx context.Context, issueID int64) ([]domain.Comment, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/comments/issue", issueID)})
	if err != nil {
		return nil, fmt.Errorf("api.ListComments: %w", err)
	}
	return decodeList[domain.Comment](p)
}

// CreateComment adds a comment to an issue.
func (c *Client) CreateComment(ctx context.Context, in CommentRequest) (*domain.Comment, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/api/comments", body: in})
	if err != nil {
		return nil, fmt.Errorf("api.CreateComment: %w", err)
	}
	cm, err := decode[domain.Comment](p)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, request{method: http.MethodDelete, path: idPath("/api/comments", id)}); err != nil {
		return fmt.Errorf("api.DeleteComment: %w", err)
	}
	return nil
}
