package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"
	"pet-treatments/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dosagectl",
		Short:        "Calculadora de dosis progresivas y periodicidad",
		SilenceUsage: true,
		// logs a stderr para no mezclarse con la salida del comando
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logger.NewFromEnv(cmd.ErrOrStderr()))
		},
	}

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(periodicityCmd())
	return rootCmd
}

// addProgressionFlags registra los flags comunes a compute/preview/target.
func addProgressionFlags(cmd *cobra.Command) {
	cmd.Flags().String("direction", string(dosage.DirectionStable), "stable | increase | decrease")
	cmd.Flags().String("rate", "", "Ajuste por intervalo: \"10%\" o \"5mg\"")
	cmd.Flags().Int("interval", 1, "Dosis entre ajustes")
	cmd.Flags().String("target", "", "Dosis objetivo (opcional)")
	cmd.Flags().Int("doses", 0, "Dosis ya administradas")
}

func progressionFromFlags(cmd *cobra.Command) dosage.ProgressionConfig {
	direction, _ := cmd.Flags().GetString("direction")
	rate, _ := cmd.Flags().GetString("rate")
	interval, _ := cmd.Flags().GetInt("interval")
	target, _ := cmd.Flags().GetString("target")
	doses, _ := cmd.Flags().GetInt("doses")

	return dosage.ProgressionConfig{
		Direction:        dosage.Direction(strings.ToLower(strings.TrimSpace(direction))),
		Rate:             rate,
		IntervalDoses:    interval,
		TargetDosage:     target,
		CurrentDoseCount: doses,
	}
}

func computeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <base-dosage>",
		Short: "Dosis vigente después de --doses administraciones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := progressionFromFlags(cmd)
			d, err := dosage.Compute(args[0], cfg)
			if err != nil {
				return err
			}
			slog.Debug("dosage computed", "base", args[0], "direction", cfg.Direction, "doses", cfg.CurrentDoseCount, "result", d)
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	addProgressionFlags(cmd)
	return cmd
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <base-dosage>",
		Short: "Próximas dosis a partir de --doses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")

			entries, err := dosage.Preview(args[0], progressionFromFlags(cmd), count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %s\n", "DOSE", "DOSAGE")
			for _, e := range entries {
				fmt.Fprintf(out, "%-6d %s\n", e.DoseNumber, e.Dosage)
			}
			return nil
		},
	}
	addProgressionFlags(cmd)
	cmd.Flags().Int("count", dosage.DefaultPreviewCount, "Cantidad de dosis a proyectar")
	return cmd
}

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target <base-dosage>",
		Short: "Indica si la dosis vigente alcanzó --target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := progressionFromFlags(cmd)

			current, err := dosage.Compute(args[0], cfg)
			if err != nil {
				return err
			}
			reached, err := dosage.HasReachedTarget(args[0], cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "current=%s reached=%t\n", current, reached)
			return nil
		},
	}
	addProgressionFlags(cmd)
	return cmd
}

func periodicityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periodicity <daily|weekly|monthly|custom>",
		Short: "Texto legible de una periodicidad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekDays, _ := cmd.Flags().GetString("week-days")
			monthDays, _ := cmd.Flags().GetString("month-days")

			var custom *int
			if cmd.Flags().Changed("every") {
				n, _ := cmd.Flags().GetInt("every")
				custom = &n
			}

			fmt.Fprintln(cmd.OutOrStdout(), periodicity.Format(args[0], custom, weekDays, monthDays))
			return nil
		},
	}
	cmd.Flags().String("week-days", "", "Arreglo JSON de días de semana, ej: [1,3,5]")
	cmd.Flags().String("month-days", "", "Arreglo JSON de días del mes, ej: [1,15]")
	cmd.Flags().Int("every", 0, "Intervalo en días para custom")
	return cmd
}
