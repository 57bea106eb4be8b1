package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
	"github.com/Achamanp/ProjectManagentApp/internal/store"
)

type planCard struct {
	Plan     domain.PlanType     `json:"plan" yaml:"plan"`
	Button   string              `json:"button" yaml:"button"`
	Disabled bool                `json:"disabled" yaml:"disabled"`
	Action   domain.ButtonAction `json:"action,omitempty" yaml:"action,omitempty"`
}

type planView struct {
	Subscription *domain.Subscription `json:"subscription" yaml:"subscription"`
	Cards        []planCard           `json:"plans" yaml:"plans"`
}

func planCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"subscription"},
		Short:   "Show and change your subscription plan",
	}
	cmd.AddCommand(planShowCmd(e), planUpgradeCmd(e), planCompleteCmd(e), planWatchCmd(e))
	return cmd
}

func (e *env) planView() planView {
	v := planView{Subscription: e.client.Subscriptions.State().Details}
	for _, p := range domain.PlanTypes {
		b := e.client.Subscriptions.ButtonState(p)
		v.Cards = append(v.Cards, planCard{Plan: p, Button: b.Label, Disabled: b.Disabled, Action: b.Action})
	}
	return v
}

func writePlan(w io.Writer, v planView) error {
	sub := v.Subscription
	fmt.Fprintf(w, "plan: %s\n", sub.Plan())
	if sub != nil && !sub.SubscriptionEndDate.IsZero() {
		fmt.Fprintf(w, "ends: %s\n", sub.SubscriptionEndDate.Format("2006-01-02"))
	}
	rows := make([][]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		rows = append(rows, []string{c.Plan.String(), c.Button})
	}
	return writeTable(w, []string{"PLAN", "ACTION"}, rows)
}

func planShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan and what each plan button does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := e.client.Subscriptions.GetUserSubscription(cmd.Context()); err != nil {
				return err
			}
			v := e.planView()
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error { return writePlan(w, v) })
		},
	}
}

func parsePlan(s string) (domain.PlanType, error) {
	p, ok := domain.ParsePlanType(s)
	if !ok {
		return "", fmt.Errorf("unknown plan %q (FREE, MONTHLY or ANNUALLY)", s)
	}
	return p, nil
}

func planUpgradeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <plan>",
		Short: "Switch plan; paid plans print a checkout link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlan(args[0])
			if err != nil {
				return err
			}
			if _, err := e.client.Subscriptions.GetUserSubscription(cmd.Context()); err != nil {
				return err
			}
			_, err = e.client.Subscriptions.StartUpgrade(cmd.Context(), p)
			return err
		},
	}
}

func planCompleteCmd(e *env) *cobra.Command {
	var paymentID string
	cmd := &cobra.Command{
		Use:   "complete <plan>",
		Short: "Apply a paid plan after checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlan(args[0])
			if err != nil {
				return err
			}
			if _, err := e.client.Subscriptions.CompleteUpgrade(cmd.Context(), p, paymentID); err != nil {
				return err
			}
			v := e.planView()
			return e.render(cmd.OutOrStdout(), v, func(w io.Writer) error { return writePlan(w, v) })
		},
	}
	cmd.Flags().StringVar(&paymentID, "payment-id", "", "payment id from the checkout return URL")
	return cmd
}

func planWatchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the plan fresh and print every change until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			stop := e.client.Subscriptions.Watch(func(st store.SubscriptionState) {
				if st.Loading {
					return
				}
				if st.Error != "" {
					fmt.Fprintf(out, "refresh failed: %s\n", st.Error)
					return
				}
				fmt.Fprintf(out, "plan: %s\n", st.Details.Plan())
			})
			defer stop()

			if _, err := e.client.Subscriptions.GetUserSubscription(ctx); err != nil {
				return err
			}
			e.client.Refresher.Start(ctx)
			defer e.client.Refresher.Stop()

			<-ctx.Done()
			return nil
		},
	}
}
