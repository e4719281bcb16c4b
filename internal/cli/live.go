package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Follow a GoCube smart cube over Bluetooth",
	Long: `Connect to the first GoCube found and print every move it reports together
with the order and moved-facelet count of the tracked permutation.

The tracked state starts solved, so start with a solved cube. Press Ctrl+C
to stop.`,
	RunE: runLive,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCube devices",
	RunE:  runScan,
}

var liveCycles bool

func init() {
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(scanCmd)
	liveCmd.Flags().BoolVarP(&liveCycles, "cycles", "c", false, "Print the cycle type after every move")
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning for GoCube devices...")

	devices, err := gocube.Scan(ctx, cfg.BLE.ScanTimeout)
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}
	if len(devices) == 0 {
		return gocube.ErrDeviceNotFound
	}

	cube, err := gocube.Connect(ctx, devices[0], gocube.WithQueueSize(cfg.Controller.QueueSize))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer cube.Close()

	fmt.Fprintf(out, "Connected to %s. Turn the cube; Ctrl+C to stop.\n\n", labelStyle.Render(cube.DeviceName()))

	count := 0
	cube.OnMove(func(m gocube.Move, p gocube.Perm) {
		count++
		line := fmt.Sprintf("%4d  %-3s order %-4d moved %2d", count, moveStyle.Render(m.Notation()), gocube.Order(p), gocube.MovedCount(p))
		if liveCycles {
			line += "  " + statusStyle.Render(formatCycleType(gocube.CycleType(p)))
		}
		fmt.Fprintln(out, line)
	})
	cube.OnSolved(func() {
		fmt.Fprintln(out, titleStyle.Render("  solved"))
	})
	cube.OnBattery(func(level int) {
		fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("  battery %d%%", level)))
	})

	<-ctx.Done()

	fmt.Fprintln(out)
	moves := cube.Moves()
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Session:"), gocube.FormatMoves(gocube.MergeMoves(moves)))
	fmt.Fprintf(out, "%s %d moves, order %d\n", labelStyle.Render("Result: "), len(moves), gocube.Order(cube.Permutation()))
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning for GoCube devices...")

	devices, err := gocube.Scan(ctx, cfg.BLE.ScanTimeout)
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}

	if len(devices) == 0 {
		fmt.Fprintln(out, "No GoCube devices found")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Tips:")
		fmt.Fprintln(out, "  - Ensure your GoCube is powered on")
		fmt.Fprintln(out, "  - Move the cube to wake it up")
		fmt.Fprintln(out, "  - Disconnect it from the phone app")
		return nil
	}

	fmt.Fprintf(out, "Found %d device(s):\n\n", len(devices))
	fmt.Fprintf(out, "%-20s  %-40s  %s\n", "NAME", "ADDRESS", "RSSI")
	for _, d := range devices {
		fmt.Fprintf(out, "%-20s  %-40s  %d dBm\n", d.Name, d.UUID, d.RSSI)
	}
	return nil
}
