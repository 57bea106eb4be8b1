package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ListProjects returns the projects visible to the user, narrowed by filters.
func (c *Client) ListProjects(ctx context.Context, filters domain.ProjectFilters) ([]domain.Project, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: "/api/projects", query: filters.Query()})
	if err != nil {
		return nil, fmt.Errorf("api.ListProjects: %w", err)
	}
	return decodeList[domain.Project](p)
}

// SearchProjects runs a keyword search.
func (c *Client) SearchProjects(ctx context.Context, keyword string) ([]domain.Project, error) {
	p, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/projects/search",
		query:  url.Values{"keyword": {keyword}},
	})
	if err != nil {
		return nil, fmt.Errorf("api.SearchProjects: %w", err)
	}
	return decodeList[domain.Project](p)
}

// GetProject fetches one project with its team.
func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/projects", id)})
	if err != nil {
		return nil, fmt.Errorf("api.GetProject: %w", err)
	}
	return decodeProject(p)
}

// CreateProject creates a project owned by the current user. The string is
// the server's confirmation message, if it sent one.
func (c *Client) CreateProject(ctx context.Context, in ProjectRequest) (*domain.Project, string, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/api/projects", body: in})
	if err != nil {
		return nil, "", fmt.Errorf("api.CreateProject: %w", err)
	}
	pr, err := decodeProject(p)
	if err != nil {
		return nil, "", err
	}
	return pr, p.Message, nil
}

// UpdateProject replaces the editable fields of a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, in ProjectRequest) (*domain.Project, string, error) {
	p, err := c.do(ctx, request{method: http.MethodPut, path: idPath("/api/projects", id), body: in})
	if err != nil {
		return nil, "", fmt.Errorf("api.UpdateProject: %w", err)
	}
	pr, err := decodeProject(p)
	if err != nil {
		return nil, "", err
	}
	return pr, p.Message, nil
}

// DeleteProject deletes a project and returns the server's confirmation.
func (c *Client) DeleteProject(ctx context.Context, id int64) (string, error) {
	p, err := c.do(ctx, request{method: http.MethodDelete, path: idPath("/api/projects", id)})
	if err != nil {
		return "", fmt.Errorf("api.DeleteProject: %w", err)
	}
	return p.Message, nil
}

// GetProjectChat fetches the chat room record of a project.
func (c *Client) GetProjectChat(ctx context.Context, projectID int64) (*domain.Chat, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/projects", projectID, "chats")})
	if err != nil {
		return nil, fmt.Errorf("api.GetProjectChat: %w", err)
	}
	chat, err := decode[domain.Chat](p)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// InviteToProject emails an invitation to join a project.
func (c *Client) InviteToProject(ctx context.Context, email string, projectID int64) (string, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/projects/invite",
		body:   inviteRequest{Email: email, ProjectID: projectID},
	})
	if err != nil {
		return "", fmt.Errorf("api.InviteToProject: %w", err)
	}
	return p.Message, nil
}

// AcceptInvitation redeems an invitation token.
func (c *Client) AcceptInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/projects/accept-invite",
		query:  url.Values{"token": {token}},
		body:   struct{}{},
	})
	if err != nil {
		return nil, fmt.Errorf("api.AcceptInvitation: %w", err)
	}
	inv, err := decode[domain.Invitation](p)
	if err != nil {
		// Some servers answer with a bare confirmation; the project id is optional.
		inv = domain.Invitation{}
	}
	if inv.Message == "" {
		inv.Message = p.Message
	}
	return &inv, nil
}

func decodeProject(p *Payload) (*domain.Project, error) {
	pr, err := decode[domain.Project](p)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}
