package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Rory34/retail-rewards/internal/csvinput"
	"github.com/Rory34/retail-rewards/internal/dto"
	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/service"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

var errRejected = errors.New("input rejected")

type calculateFlags struct {
	customers    string
	transactions string
	output       string
	messages     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "rewards",
		Short:         "Calculate retail loyalty rewards from CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newCalculateCmd(), newVersionCmd())
	return root
}

func newCalculateCmd() *cobra.Command {
	var flags calculateFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Validate customers and transactions and print monthly rewards",
		Long: `Reads a customer CSV (id,name) and a transaction CSV (id,date,customerId,value),
validates both and prints the rewards result as JSON. Exits with status 1 when
the input is rejected; the validation errors are part of the printed result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&flags.customers, "customers", "c", "", "customer CSV file")
	cmd.Flags().StringVarP(&flags.transactions, "transactions", "t", "", "transaction CSV file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the JSON result to this file instead of stdout")
	cmd.Flags().StringVar(&flags.messages, "messages", "", "YAML file overriding validation messages")
	_ = cmd.MarkFlagRequired("customers")
	_ = cmd.MarkFlagRequired("transactions")

	return cmd
}

func runCalculate(ctx context.Context, flags calculateFlags, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	msgs, err := messages.Load(flags.messages)
	if err != nil {
		return err
	}

	customers, err := csvinput.ReadCustomersFile(flags.customers)
	if err != nil {
		return err
	}
	txns, err := csvinput.ReadTransactionsFile(flags.transactions)
	if err != nil {
		return err
	}

	outcome := service.NewRewardsService(msgs, nil).Calculate(ctx, customers, txns)

	out := stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewRewardsResultResponse(outcome)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if outcome.HasErrors() {
		return errRejected
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rewards", version)
		},
	}
}
