package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"booking-sync/core/calcom"
	"booking-sync/feature/cancellation"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	offlineCancel bool
	dryRunCancel  bool
	yesCancel     bool
)

// cancelCmd cancels every accepted booking of the event type.
var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel all accepted bookings of the event type",
	Long: `Lists the accepted bookings of the configured event type and cancels them one by one
with the configured reason, pausing cancel.delay between calls. Attendees are notified by Cal.com.

Examples:
  # Show what would be cancelled
  cancel --dry-run

  # Cancel with interactive confirmation
  cancel

  # Cancel without prompting
  cancel --yes`,
	RunE: runCancel,
}

func init() {
	cancelCmd.Flags().BoolVar(&offlineCancel, "offline", false, "Plan from the bookings fixture (cancellation is refused offline)")
	cancelCmd.Flags().BoolVar(&dryRunCancel, "dry-run", false, "Only print the plan")
	cancelCmd.Flags().BoolVar(&yesCancel, "yes", false, "Auto-confirm the cancellation (non-interactive)")
	RootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	loc, err := cfg.Schedule.Location()
	if err != nil {
		return err
	}

	client, err := calcom.Open(cfg.Calcom, offlineCancel)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}

	svc := cancellation.NewService(cfg.Cancel, cfg.Calcom, client, l)

	plan, err := svc.Plan(ctx, loc)
	if err != nil {
		return fmt.Errorf("failed to plan cancellation: %w", err)
	}
	printCancelPlan(plan)

	if len(plan.Actions) == 0 {
		l.Info("No accepted booking to cancel.")
		return nil
	}
	if dryRunCancel {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	outcomes, err := svc.Apply(ctx, plan, cancellation.Options{Confirmed: true})
	l.Info("Cancellation finished", zap.Int("cancelled", len(outcomes)), zap.Int("planned", len(plan.Actions)))
	if err != nil {
		return fmt.Errorf("failed to apply cancellation: %w", err)
	}
	return nil
}

func printCancelPlan(plan *cancellation.Plan) {
	fmt.Println(color.WhiteString("Bookings to cancel: %d (%d attendees)", len(plan.Actions), plan.Attendees))
	for _, a := range plan.Actions {
		fmt.Println(color.YellowString("  #%d  %s  %s", a.BookingID, a.Start.Format("2006-01-02 15:04"), strings.Join(a.Attendees, ", ")))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesCancel {
		fmt.Println(color.GreenString("\n✓ Auto-confirmed via --yes flag"))
		return true
	}

	fmt.Print(color.RedString("\n⚠️  Type 'yes' to cancel these bookings: "))
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
