// Package main provides the Bifrost CLI entry point.
//
// The CLI runs graph procedures against the in-process host simulator, so a
// procedure can be exercised on a fixture graph without a running database.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orneryd/bifrost/pkg/bifrost"
	"github.com/orneryd/bifrost/pkg/config"
	"github.com/orneryd/bifrost/pkg/host"
	"github.com/orneryd/bifrost/pkg/host/fixture"
	"github.com/orneryd/bifrost/pkg/particlefilter"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "bifrost",
		Short: "Bifrost - graph procedure runner",
		Long: `Bifrost runs graph database procedures against an in-process
host simulator. Fixture graphs are authored as YAML and can be imported
into a local store for repeated runs.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: search standard locations)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Bifrost v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	rootCmd.AddCommand(proceduresCmd())
	rootCmd.AddCommand(runCmd(&configPath))
	rootCmd.AddCommand(fixtureCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile()
	}
	return config.LoadFromFile(path)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.Logging.Format == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return log.Level(level).With().Timestamp().Logger()
}

// registry returns the module with every built-in procedure registered.
func registry() (*bifrost.Module, error) {
	m := bifrost.NewModule()
	if err := m.Register(particlefilter.Procedure()); err != nil {
		return nil, err
	}
	return m, nil
}

func proceduresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "procedures",
		Short: "List available procedures and their signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := registry()
			if err != nil {
				return err
			}
			for _, p := range m.Procedures() {
				var parts []string
				for _, a := range p.Args {
					parts = append(parts, fmt.Sprintf("%s :: %s", a.Name, a.Type))
				}
				for _, a := range p.OptArgs {
					parts = append(parts, fmt.Sprintf("%s :: %s (optional)", a.Name, a.Type))
				}
				var results []string
				for _, r := range p.Results {
					results = append(results, fmt.Sprintf("%s :: %s", r.Name, r.Type))
				}
				fmt.Printf("%s(%s) -> (%s)\n", p.Name, strings.Join(parts, ", "), strings.Join(results, ", "))
			}
			return nil
		},
	}
}

// parseArgs decodes each CLI argument as a YAML value, so lists and maps
// can be passed inline: bifrost run particle_filtering '[1, 2]' 0.1
func parseArgs(raw []string) ([]any, error) {
	out := make([]any, 0, len(raw))
	for _, r := range raw {
		var v any
		if err := yaml.Unmarshal([]byte(r), &v); err != nil {
			return nil, fmt.Errorf("bad argument %q: %w", r, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func loadGraph(cfg *config.Config, fixturePath, stored string) (*host.Graph, error) {
	switch {
	case fixturePath != "":
		f, err := fixture.Load(fixturePath)
		if err != nil {
			return nil, err
		}
		return f.Build()
	case stored != "":
		store, err := fixture.OpenStore(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		f, err := store.Get(stored)
		if err != nil {
			return nil, err
		}
		return f.Build()
	default:
		return nil, fmt.Errorf("either --fixture or --stored is required")
	}
}

func runCmd(configPath *string) *cobra.Command {
	var (
		fixturePath string
		stored      string
		allocBudget int
	)
	cmd := &cobra.Command{
		Use:   "run <procedure> [args...]",
		Short: "Run a procedure against a fixture graph",
		Long: `Run a procedure against a fixture graph in the simulator and print
the result rows as YAML. Arguments after the procedure name are parsed as
YAML values, in the procedure's declared order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alloc-budget") {
				cfg.Run.AllocBudget = allocBudget
			}
			log := newLogger(cfg)

			g, err := loadGraph(cfg, fixturePath, stored)
			if err != nil {
				return err
			}
			natives, err := parseArgs(args[1:])
			if err != nil {
				return err
			}

			m, err := registry()
			if err != nil {
				return err
			}
			sim := host.New(g, host.WithLogger(log), host.WithAllocBudget(cfg.Run.AllocBudget))
			mem := sim.NewMemory()
			if err := m.Init(sim, sim.ModuleHandle(), mem); err != nil {
				return err
			}

			argList, err := sim.NewArgList(natives...)
			if err != nil {
				return err
			}
			result := sim.NewResult()
			invokeErr := m.Invoke(sim, args[0], argList, sim.GraphHandle(), result, mem)

			rows, errMsg, err := sim.Rows(result)
			if err != nil {
				return err
			}
			if invokeErr != nil {
				return fmt.Errorf("%s failed: %s", args[0], errMsg)
			}

			log.Info().Str("procedure", args[0]).Int("rows", len(rows)).Msg("procedure completed")
			out, err := yaml.Marshal(rows)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML fixture file to run against")
	cmd.Flags().StringVar(&stored, "stored", "", "Name of an imported fixture to run against")
	cmd.Flags().IntVar(&allocBudget, "alloc-budget", -1, "Simulated allocations before faults (-1 unlimited)")
	return cmd
}

func fixtureCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Manage imported fixture graphs",
	}

	openStore := func() (*fixture.Store, error) {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		return fixture.OpenStore(cfg.Store.Dir)
	}

	var name string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML fixture into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				f.Name = name
			}
			if f.Name == "" {
				return fmt.Errorf("fixture has no name; pass --name")
			}
			// Validate before storing.
			if _, err := f.Build(); err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Save(f.Name, f); err != nil {
				return err
			}
			fmt.Printf("imported %q: %d nodes, %d edges\n", f.Name, len(f.Nodes), len(f.Edges))
			return nil
		},
	}
	importCmd.Flags().StringVar(&name, "name", "", "Store the fixture under this name")
	cmd.AddCommand(importCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List imported fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			names, err := store.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "export <name>",
		Short: "Print an imported fixture as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			f, err := store.Get(args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(f)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an imported fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(args[0])
		},
	})

	return cmd
}
