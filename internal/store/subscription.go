package store

import (
	"context"
	"log/slog"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

// Subscription request families.
const (
	FamilySubscription = "details"
	FamilyUpgrade      = "upgrade"
	FamilyPayment      = "payment"
)

// SubscriptionState is the subscription slice.
type SubscriptionState struct {
	Details *domain.Subscription `json:"userSubscription,omitempty"`
	Status
	Payment    Status `json:"payment"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// Subscriptions owns the subscription slice.
type Subscriptions struct {
	*Slice[SubscriptionState]
}

// NewSubscriptions creates an empty subscription store.
func NewSubscriptions(logger *slog.Logger) *Subscriptions {
	return &Subscriptions{Slice: NewSlice("subscription",
		func() SubscriptionState { return SubscriptionState{} },
		func(s SubscriptionState) SubscriptionState {
			if s.Details != nil {
				d := *s.Details
				s.Details = &d
			}
			return s
		},
		func(st *SubscriptionState, family string) *Status {
			if family == FamilyPayment {
				return &st.Payment
			}
			return &st.Status
		},
		logger,
	)}
}

// Loaded sets the subscription details. A nil sub means the user has none.
func (s *Subscriptions) Loaded(ctx context.Context, t Ticket, sub *domain.Subscription) error {
	return s.Commit(ctx, t, func(st *SubscriptionState) { st.Details = sub })
}

// PaymentCreated records the checkout link of a paid upgrade.
func (s *Subscriptions) PaymentCreated(ctx context.Context, t Ticket, url string) error {
	return s.Commit(ctx, t, func(st *SubscriptionState) { st.PaymentURL = url })
}
