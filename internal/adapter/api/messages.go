package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// ListMessages returns a project's chat history in arrival order.
// The endpoint answers with a bare list; anything else is treated as empty.
func (c *Client) ListMessages(ctx context.Context, projectID int64) ([]domain.Message, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: idPath("/api/messages/chat", projectID)})
	if err != nil {
		return nil, fmt.Errorf("api.ListMessages: %w", err)
	}
	return decodeList[domain.Message](p)
}

// SendMessage posts a chat message. The returned message is nil when the
// server confirmed without echoing it back.
func (c *Client) SendMessage(ctx context.Context, in MessageRequest) (*domain.Message, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/api/messages/send", body: in})
	if err != nil {
		return nil, fmt.Errorf("api.SendMessage: %w", err)
	}
	if !p.Data.IsObject() {
		return nil, nil
	}
	m, err := decode[domain.Message](p)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
