package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitcycle/internal/config"
	"github.com/mmynk/splitcycle/internal/ledger"
	"github.com/mmynk/splitcycle/internal/service"
	"github.com/mmynk/splitcycle/internal/storage/sqlite"
	"github.com/mmynk/splitcycle/pkg/api"
	"github.com/mmynk/splitcycle/pkg/api/apiconnect"
	"github.com/mmynk/splitcycle/pkg/logging"
)

// session is the ledger a command talks to. The in-process service and the
// remote client share one method set.
type session struct {
	dbPath    string
	serverURL string
	verbose   bool

	api   apiconnect.LedgerServiceClient
	close func() error
}

// execute runs splitctl with args, writing command output to out.
func execute(ctx context.Context, args []string, out io.Writer) error {
	s := &session{}
	defer s.Close()

	rootCmd := newRootCmd(s, config.Load())
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(s *session, cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "splitctl",
		Short:         "Track shared expenses and settle up at the end of each cycle.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.dbPath, "db", cfg.DBPath, "Path to the ledger database.")
	rootCmd.PersistentFlags().StringVar(&s.serverURL, "server", "", "Use a running server (e.g. http://localhost:8080) instead of the database.")
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log debug output to stderr.")

	rootCmd.AddCommand(
		newPersonCmd(s),
		newExpenseCmd(s),
		newBalancesCmd(s),
		newCycleCmd(s),
		newSettlementCmd(s),
		newCategoriesCmd(s),
		newResetCmd(s),
	)
	return rootCmd
}

func (s *session) open(ctx context.Context, cfg *config.Config) error {
	level := slog.LevelWarn
	if s.verbose {
		level = slog.LevelDebug
	}
	logging.SetupWithLevel(level)

	if s.serverURL != "" {
		s.api = apiconnect.NewLedgerServiceClient(http.DefaultClient, s.serverURL)
		return nil
	}

	kv, err := sqlite.New(s.dbPath)
	if err != nil {
		return err
	}
	store, err := ledger.Open(ctx, kv, ledger.WithColorPicker(ledger.PaletteColors(cfg.ColorSeed)))
	if err != nil {
		kv.Close()
		return err
	}
	s.api = service.NewLedgerService(store)
	s.close = kv.Close
	return nil
}

// Close releases the database, if one was opened.
func (s *session) Close() error {
	if s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	return err
}

// resolvePerson accepts a person id or a name (any case).
func (s *session) resolvePerson(ctx context.Context, ref string) (*api.Person, error) {
	resp, err := s.api.ListPeople(ctx, connect.NewRequest(&api.ListPeopleRequest{}))
	if err != nil {
		return nil, err
	}
	for _, p := range resp.Msg.People {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range resp.Msg.People {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no person with id or name %q", ref)
}

// friendly strips the Connect code prefix from errors shown to the user.
func friendly(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return errors.New(connectErr.Message())
	}
	return err
}

func money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
