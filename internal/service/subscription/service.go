package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

// ErrPlanUnavailable is returned when the plan button is disabled. No request
// is made in that case.
var ErrPlanUnavailable = errors.New("plan not available")

type subscriptionAPI interface {
	GetSubscription(ctx context.Context) (*domain.Subscription, error)
	CreateSubscription(ctx context.Context) (*domain.Subscription, error)
	UpgradeSubscription(ctx context.Context, plan domain.PlanType) (*domain.Subscription, error)
	CreatePayment(ctx context.Context, plan domain.PlanType) (*domain.PaymentLink, error)
}

type navigator interface {
	Navigate(ctx context.Context, url string)
}

// Service implements the subscription dispatchers.
type Service struct {
	log   *slog.Logger
	api   subscriptionAPI
	state *store.Subscriptions
	nav   navigator
	clock clockwork.Clock
}

// NewService creates a new subscription service instance.
func NewService(logger *slog.Logger, api subscriptionAPI, state *store.Subscriptions, nav navigator, clock clockwork.Clock) *Service {
	return &Service{
		log:   logger.With("service", "subscription"),
		api:   api,
		state: state,
		nav:   nav,
		clock: clock,
	}
}

// State returns a snapshot of the subscription slice.
func (s *Service) State() store.SubscriptionState {
	return s.state.Snapshot()
}

var (
	getCopy     = domain.StatusCopy{Fallback: "Failed to retrieve subscription"}
	createCopy  = domain.StatusCopy{Fallback: "Failed to create subscription"}
	upgradeCopy = domain.StatusCopy{Fallback: "Failed to upgrade subscription"}
	paymentCopy = domain.StatusCopy{Fallback: "Failed to create payment link"}
)

// GetUserSubscription loads the current user's subscription.
func (s *Service) GetUserSubscription(ctx context.Context) (*domain.Subscription, error) {
	t := s.state.Begin(store.FamilySubscription)

	sub, err := s.api.GetSubscription(ctx)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, getCopy))
		return nil, fmt.Errorf("subscription.GetUserSubscription: %w", err)
	}

	if err := s.state.Loaded(ctx, t, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateSubscription creates the default subscription.
func (s *Service) CreateSubscription(ctx context.Context) (*domain.Subscription, error) {
	t := s.state.BeginWrite(store.FamilySubscription)

	sub, err := s.api.CreateSubscription(ctx)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, createCopy))
		return nil, fmt.Errorf("subscription.CreateSubscription: %w", err)
	}

	if err := s.state.Loaded(ctx, t, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// UpgradeSubscription switches the plan without any payment step.
func (s *Service) UpgradeSubscription(ctx context.Context, plan domain.PlanType) (*domain.Subscription, error) {
	if !plan.IsValid() {
		msg := fmt.Sprintf("Unknown plan %q", plan)
		s.state.Reject(store.FamilyUpgrade, msg)
		return nil, domain.NewValidationError("plan", msg)
	}

	t := s.state.BeginWrite(store.FamilyUpgrade)

	sub, err := s.api.UpgradeSubscription(ctx, plan)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, upgradeCopy))
		return nil, fmt.Errorf("subscription.UpgradeSubscription: %w", err)
	}

	if sub != nil {
		err = s.state.Loaded(ctx, t, sub)
	} else {
		// Details stay as they are until the follow-up fetch.
		err = s.state.Commit(ctx, t, nil)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subscription upgraded", slog.String("plan", plan.String()))
	return sub, nil
}

// ButtonState decides what the card of plan shows right now.
func (s *Service) ButtonState(plan domain.PlanType) domain.ButtonState {
	st := s.state.Snapshot()
	return domain.DecideButton(st.Details, plan, st.Loading, s.clock.Now())
}

// StartUpgrade acts on a plan button. A disabled button fails with
// ErrPlanUnavailable without any request. FREE is applied directly; a paid
// plan creates a checkout link and navigates to it, and the link is
// returned.
func (s *Service) StartUpgrade(ctx context.Context, plan domain.PlanType) (string, error) {
	if !plan.IsValid() {
		return "", domain.NewValidationError("plan", fmt.Sprintf("Unknown plan %q", plan))
	}

	btn := s.ButtonState(plan)
	if btn.Disabled {
		return "", fmt.Errorf("subscription.StartUpgrade: %s: %w", btn.Label, ErrPlanUnavailable)
	}

	if !plan.IsPaid() {
		if _, err := s.UpgradeSubscription(ctx, plan); err != nil {
			return "", err
		}
		if _, err := s.GetUserSubscription(ctx); err != nil {
			return "", err
		}
		return "", nil
	}

	t := s.state.BeginWrite(store.FamilyPayment)

	link, err := s.api.CreatePayment(ctx, plan)
	if err != nil {
		_ = s.state.Fail(ctx, t, domain.Describe(err, paymentCopy))
		return "", fmt.Errorf("subscription.StartUpgrade: %w", err)
	}

	if err := s.state.PaymentCreated(ctx, t, link.URL); err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "payment link created", slog.String("plan", plan.String()))
	s.nav.Navigate(ctx, link.URL)
	return link.URL, nil
}

// CompleteUpgrade reconciles after the payment provider sent the user back:
// the plan is upgraded, then the subscription is refetched.
func (s *Service) CompleteUpgrade(ctx context.Context, plan domain.PlanType, paymentID string) (*domain.Subscription, error) {
	if _, err := s.UpgradeSubscription(ctx, plan); err != nil {
		return nil, err
	}

	sub, err := s.GetUserSubscription(ctx)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "upgrade completed",
		slog.String("plan", plan.String()),
		slog.String("payment_id", paymentID))
	return sub, nil
}

// Watch calls fn with every committed change of the subscription slice
// until the returned func is called.
func (s *Service) Watch(fn func(store.SubscriptionState)) (cancel func()) {
	return s.state.Subscribe(fn)
}
