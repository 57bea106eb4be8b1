package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// GetSubscription returns the current user's subscription.
func (c *Client) GetSubscription(ctx context.Context) (*domain.Subscription, error) {
	p, err := c.do(ctx, request{method: http.MethodGet, path: "/api/subscriptions"})
	if err != nil {
		return nil, fmt.Errorf("api.GetSubscription: %w", err)
	}
	return decodeSubscription(p)
}

// CreateSubscription creates the default subscription for the user.
func (c *Client) CreateSubscription(ctx context.Context) (*domain.Subscription, error) {
	p, err := c.do(ctx, request{method: http.MethodPost, path: "/api/subscriptions/create"})
	if err != nil {
		return nil, fmt.Errorf("api.CreateSubscription: %w", err)
	}
	return decodeSubscription(p)
}

// UpgradeSubscription switches the user's plan.
func (c *Client) UpgradeSubscription(ctx context.Context, plan domain.PlanType) (*domain.Subscription, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/subscriptions/upgrade",
		query:  url.Values{"planType": {plan.String()}},
	})
	if err != nil {
		return nil, fmt.Errorf("api.UpgradeSubscription: %w", err)
	}
	return decodeSubscription(p)
}

// CreatePayment starts a checkout for a paid plan and returns the link the
// user must be sent to.
func (c *Client) CreatePayment(ctx context.Context, plan domain.PlanType) (*domain.PaymentLink, error) {
	p, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/payments/" + url.PathEscape(plan.String()),
		body:   struct{}{},
	})
	if err != nil {
		return nil, fmt.Errorf("api.CreatePayment: %w", err)
	}
	link, err := decode[domain.PaymentLink](p)
	if err != nil {
		return nil, err
	}
	if link.URL == "" {
		return nil, fmt.Errorf("api.CreatePayment: response has no payment_link_url")
	}
	return &link, nil
}

func decodeSubscription(p *Payload) (*domain.Subscription, error) {
	if p.Empty() {
		return nil, nil
	}
	s, err := decode[domain.Subscription](p)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
