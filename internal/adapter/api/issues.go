package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ListIssues returns every issue of a project.
func (c *Client) ListIssues(ctx context.Context, projectID int64) ([]domain.Issue, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/issues/project", projectID)})
	if err != nil {
		return nil, fmt.Errorf("api.ListIssues: %w", err)
	}
	return decodeList[domain.Issue](p)
}

// GetIssue fetches one issue.
func (c *Client) GetIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/issues", id)})
	if err != nil {
		return nil, fmt.Errorf("api.GetIssue: %w", err)
	}
	return decodeIssue(p)
}

// CreateIssue creates an issue in a project. Writes return the server's
// confirmation message alongside the record; it is empty when none was sent.
func (c *Client) CreateIssue(ctx context.Context, in IssueRequest) (*domain.Issue, string, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/api/issues", body: in})
	if err != nil {
		return nil, "", fmt.Errorf("api.CreateIssue: %w", err)
	}
	return decodeIssueReply(p)
}

// UpdateIssueStatus moves an issue to another column and returns the merged record.
func (c *Client) UpdateIssueStatus(ctx context.Context, id int64, status domain.IssueStatus) (*domain.Issue, string, error) {
	p, err := c.do(ctx, request{method: http.MethodPut, path: idPath("/api/issues", id, "status", status.String())})
	if err != nil {
		return nil, "", fmt.Errorf("api.UpdateIssueStatus: %w", err)
	}
	return decodeIssueReply(p)
}

// AssignIssue assigns an issue to a user and returns the merged record.
func (c *Client) AssignIssue(ctx context.Context, id, userID int64) (*domain.Issue, string, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   idPath("/api/issues", id, "assignee", strconv.FormatInt(userID, 10)),
	})
	if err != nil {
		return nil, "", fmt.Errorf("api.AssignIssue: %w", err)
	}
	return decodeIssueReply(p)
}

// DeleteIssue deletes an issue.
func (c *Client) DeleteIssue(ctx context.Context, id int64) (string, error) {
	p, err := c.do(ctx, request{method: http.MethodDelete, path: idPath("/api/issues", id)})
	if err != nil {
		return "", fmt.Errorf("api.DeleteIssue: %w", err)
	}
	return p.Message, nil
}

func decodeIssue(p *Payload) (*domain.Issue, error) {
	is, err := decode[domain.Issue](p)
	if err != nil {
		return nil, err
	}
	return &is, nil
}

func decodeIssueReply(p *Payload) (*domain.Issue, string, error) {
	is, err := decodeIssue(p)
	if err != nil {
		return nil, "", err
	}
	return is, p.Message, nil
}
