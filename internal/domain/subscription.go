package domain

import "time"

// Subscription is the current user's plan record.
type Subscription struct {
	ID                    int64    `json:"id,omitempty"`
	PlanType              PlanType `json:"planType"`
	SubscriptionStartDate Date     `json:"subscriptionStartDate"`
	SubscriptionEndDate   Date     `json:"subscriptionEndDate"`
	IsActive              bool     `json:"isActive"`
}

// Plan returns the subscription's tier; a missing record or tier counts as FREE.
func (s *Subscription) Plan() PlanType {
	if s == nil || s.PlanType == "" {
		return PlanFree
	}
	return s.PlanType
}

// Expired reports whether the end date lies before now.
// A subscription without an end date never expires.
func (s *Subscription) Expired(now time.Time) bool {
	if s == nil || s.SubscriptionEndDate.IsZero() {
		return false
	}
	return s.SubscriptionEndDate.Before(now)
}

// PaymentLink is the response of POST /api/payments/{plan}.
type PaymentLink struct {
	URL string `json:"payment_link_url"`
}

// ButtonAction is what pressing a plan button does.
type ButtonAction string

const (
	ActionNone    ButtonAction = ""
	ActionRenew   ButtonAction = "renew"
	ActionUpgrade ButtonAction = "upgrade"
	ActionSelect  ButtonAction = "select"
)

// ButtonState is the UI decision for one plan card.
type ButtonState struct {
	Label    string
	Disabled bool
	Action   ButtonAction
}

// Labels of the plan buttons.
const (
	LabelLoading      = "Loading..."
	LabelCurrentPlan  = "Current Plan"
	LabelNotAvailable = "Not Available"
	LabelRenewPlan    = "Renew Plan"
	LabelUpgrade      = "Upgrade"
	LabelGetStarted   = "Get Started"
)

// DecideButton computes the button state for the card of plan target given the
// user's current subscription (nil means FREE). loading is the subscription
// slice's loading flag. A disabled state must not trigger any network call.
func DecideButton(current *Subscription, target PlanType, loading bool, now time.Time) ButtonState {
	if loading {
		return ButtonState{Label: LabelLoading, Disabled: true}
	}

	plan := current.Plan()
	expired := current.Expired(now)

	switch {
	case plan == target && !expired:
		return ButtonState{Label: LabelCurrentPlan, Disabled: true}
	case plan.Rank() > target.Rank() && !expired:
		return ButtonState{Label: LabelNotAvailable, Disabled: true}
	case plan == target && expired:
		return ButtonState{Label: LabelRenewPlan, Action: ActionRenew}
	case target.Rank() > plan.Rank():
		return ButtonState{Label: LabelUpgrade, Action: ActionUpgrade}
	}
	return ButtonState{Label: LabelGetStarted, Action: ActionSelect}
}
