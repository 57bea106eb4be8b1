package domain

import "strings"

// IssueStatus is the board column an issue belongs to.
type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "pending"
	IssueStatusInProgress IssueStatus = "in-progress"
	IssueStatusDone       IssueStatus = "done"
)

// IssueStatuses lists the statuses in board order.
var IssueStatuses = []IssueStatus{IssueStatusPending, IssueStatusInProgress, IssueStatusDone}

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusPending, IssueStatusInProgress, IssueStatusDone:
		return true
	}
	return false
}

// PlanType is a subscription tier.
type PlanType string

const (
	PlanFree     PlanType = "FREE"
	PlanMonthly  PlanType = "MONTHLY"
	PlanAnnually PlanType = "ANNUALLY"
)

// PlanTypes lists the tiers in ascending order.
var PlanTypes = []PlanType{PlanFree, PlanMonthly, PlanAnnually}

func (p PlanType) String() string { return string(p) }

func (p PlanType) IsValid() bool {
	switch p {
	case PlanFree, PlanMonthly, PlanAnnually:
		return true
	}
	return false
}

// Rank returns the position of p in the tier hierarchy FREE < MONTHLY < ANNUALLY.
// Unknown plans rank as FREE.
func (p PlanType) Rank() int {
	switch p {
	case PlanMonthly:
		return 1
	case PlanAnnually:
		return 2
	}
	return 0
}

// IsPaid reports whether upgrading to p requires a payment.
func (p PlanType) IsPaid() bool { return p == PlanMonthly || p == PlanAnnually }

// ParsePlanType accepts any casing.
func ParsePlanType(s string) (PlanType, bool) {
	p := PlanType(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// OAuthProvider names an external identity provider.
type OAuthProvider string

const (
	OAuthGoogle  OAuthProvider = "google"
	OAuthGitHub  OAuthProvider = "github"
	OAuthUnknown OAuthProvider = "unknown"
)

func (p OAuthProvider) String() string { return string(p) }

// IsValid reports whether the provider can start a login flow.
func (p OAuthProvider) IsValid() bool {
	switch p {
	case OAuthGoogle, OAuthGitHub:
		return true
	}
	return false
}
