// Package cli wires configuration, the document store and the standard seed
// units into the learnseed command.
package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johnwards/learnseed/internal/config"
	"github.com/johnwards/learnseed/internal/database"
	"github.com/johnwards/learnseed/internal/pipeline"
	"github.com/johnwards/learnseed/internal/seed"
	"github.com/johnwards/learnseed/internal/store"
)

// Deps are the command's side effects. Zero fields fall back to the real
// implementations.
type Deps struct {
	Connect func(ctx context.Context, uri string) (store.Store, error)
	Stdout  io.Writer
	Stderr  io.Writer
}

func (d Deps) withDefaults() Deps {
	if d.Connect == nil {
		d.Connect = database.Connect
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	return d
}

// Execute runs the command until it finishes or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(Deps{}).ExecuteContext(ctx)
}

// NewRootCmd builds the learnseed command.
func NewRootCmd(deps Deps) *cobra.Command {
	deps = deps.withDefaults()

	var (
		debug bool
		list  bool
		dot   bool
	)

	cmd := &cobra.Command{
		Use:   "learnseed [all|<unit>]",
		Short: "Seed the e-learning content store",
		Long: "Seeds every collection in dependency order, or re-seeds a single unit.\n" +
			"MONGODB_URI selects the store (\"sqlite:<path>\" for a local file).",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(deps.Stderr, debug || cfg.Debug)

			reg, err := seed.NewRegistry(dataFS(cfg.DataDir))
			if err != nil {
				return err
			}

			switch {
			case list:
				printUnits(deps.Stdout, reg)
				return nil
			case dot:
				return reg.DOT(deps.Stdout)
			}

			open := func(ctx context.Context) (store.Store, error) {
				logger.Debug("connecting", "backend", backend(cfg.DatabaseURI))
				return deps.Connect(ctx, cfg.DatabaseURI)
			}
			o := pipeline.New(reg, open,
				pipeline.WithLogger(logger),
				pipeline.WithReporter(pipeline.NewTextReporter(deps.Stdout)))

			target := "all"
			if len(args) == 1 {
				target = args[0]
			}
			if target == "all" {
				_, err = o.RunAll(cmd.Context())
			} else {
				_, err = o.RunOne(cmd.Context(), target)
			}
			return err
		},
	}

	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (also SEED_DEBUG)")
	cmd.Flags().BoolVar(&list, "list", false, "list units in execution order and exit")
	cmd.Flags().BoolVar(&dot, "dot", false, "print the dependency graph in Graphviz DOT and exit")
	cmd.MarkFlagsMutuallyExclusive("list", "dot")

	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// dataFS returns the dataset directory, or nil for the embedded datasets.
func dataFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

func backend(uri string) string {
	if strings.HasPrefix(uri, "sqlite:") {
		return "sqlite"
	}
	return "mongodb"
}

func printUnits(w io.Writer, reg *pipeline.Registry) {
	for i, name := range reg.Order() {
		u, _ := reg.Unit(name)
		requires := "-"
		if r := u.Requires(); len(r) > 0 {
			requires = strings.Join(r, ", ")
		}
		fmt.Fprintf(w, "%2d. %-13s %-18s requires: %s\n", i+1, name, u.Collection(), requires)
	}
}
