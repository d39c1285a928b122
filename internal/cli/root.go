package cli

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/nevisdale/eepromfake/eeprom"
	"github.com/nevisdale/eepromfake/internal/seed"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Size    int
	Seed    string
	Profile string // "" | "cpu" | "mem"

	profiler interface{ Stop() }
}

// ValidProfiles defines the allowed --profile values.
var ValidProfiles = []string{"", "cpu", "mem"}

// Viewer shows an EEPROM until the user closes it.
type Viewer func(e *eeprom.EEPROM) error

// NewRootCommand creates the root command for the eepromfake CLI.
func NewRootCommand(viewer Viewer) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eepromfake",
		Short: "In-memory Arduino EEPROM",
		Long:  "Inspect and play with an in-memory emulation of the Arduino EEPROM library.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.startProfile()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().IntVar(&opts.Size, "size", 0, fmt.Sprintf("EEPROM size in bytes (0 uses the built-in %d)", eeprom.Default().Length()))
	cmd.PersistentFlags().StringVar(&opts.Seed, "seed", "", "YAML file to preload the EEPROM from")
	cmd.PersistentFlags().StringVar(&opts.Profile, "profile", "", "write a profile to the working directory (cpu|mem)")

	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewTextCommand(opts))
	cmd.AddCommand(NewViewCommand(opts, viewer))

	return cmd
}

func (opts *RootOptions) startProfile() error {
	switch opts.Profile {
	case "":
		return nil
	case "cpu":
		opts.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		opts.profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("invalid profile %q: must be one of %q", opts.Profile, ValidProfiles)
	}
	return nil
}

// withProfile stops the profiler once run returns. PersistentPostRun is not
// enough: cobra skips it when RunE fails and main exits right after.
func (opts *RootOptions) withProfile(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer opts.stopProfile()
		return run(cmd, args)
	}
}

func (opts *RootOptions) stopProfile() {
	if opts.profiler != nil {
		opts.profiler.Stop()
		opts.profiler = nil
	}
}

// open builds the EEPROM the command works on and applies the seed file.
func (opts *RootOptions) open() (*eeprom.EEPROM, error) {
	e := eeprom.Default()
	if opts.Size < 0 {
		return nil, fmt.Errorf("invalid size %d", opts.Size)
	}
	if opts.Size > 0 {
		e = eeprom.New(eeprom.NewStore(opts.Size))
	}

	if opts.Seed == "" {
		return e, nil
	}
	f, err := seed.Load(opts.Seed)
	if err != nil {
		return nil, err
	}
	if err := f.Apply(e); err != nil {
		return nil, fmt.Errorf("couldn't apply seed %s: %w", opts.Seed, err)
	}
	return e, nil
}
