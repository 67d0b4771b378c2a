package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/nvh/internal/config"
	"github.com/rileyhilliard/nvh/internal/detect"
	"github.com/rileyhilliard/nvh/internal/engine"
	"github.com/rileyhilliard/nvh/internal/errors"
	"github.com/rileyhilliard/nvh/internal/exec"
	"github.com/rileyhilliard/nvh/internal/logger"
	"github.com/rileyhilliard/nvh/internal/nvidia"
	"github.com/rileyhilliard/nvh/internal/session"
	"github.com/rileyhilliard/nvh/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd hands every argument to the engine untouched. nvh has its own
// token language, so cobra must not parse flags like --help or --debug.
var rootCmd = &cobra.Command{
	Use:   "nvh [command [value...]]...",
	Short: "Control NVIDIA GPU clocks, power limits and fans",
	Long: `nvh chains GPU settings on one command line, for example:

  nvh gpu 1 fan 0 75 clockoffset 150 power 300

Run 'nvh help' for every command. With no arguments, or just a GPU index,
nvh prints the GPU's status.`,
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		argv := append([]string{cmd.Name()}, args...)
		return run(cmd.OutOrStdout(), argv)
	},
}

// Exit codes. Once dispatch starts the run always exits 0.
const (
	exitError  = 1
	exitConfig = 2
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.IsCode(err, errors.ErrConfig) {
		return exitConfig
	}
	return exitError
}

// run loads config and hands argv to the engine. Only config problems are
// returned; everything after that is reported inline and never aborts.
func run(out io.Writer, argv []string) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	f, _ := out.(*os.File)
	ui.Init(cfg.Color, f)

	log := logger.Default()
	s := newSession(cfg, exec.NewLocalRunner(cfg.Shell, log), log)
	gpu := nvidia.NewController(newRunner(cfg, out, log), cfg.Sudo)

	engine.New(gpu, out, buildInfo()).Run(argv, s)
	return nil
}

// newRunner picks the executor for GPU commands. Detection commands always
// run for real since they only read state.
func newRunner(cfg *config.Config, out io.Writer, log logger.Logger) exec.Runner {
	if cfg.DryRun {
		return &exec.DryRunner{Out: out}
	}
	return exec.NewLocalRunner(cfg.Shell, log)
}

// newSession seeds session state from config, then detects whatever config
// left unset.
func newSession(cfg *config.Config, detectRunner exec.Runner, log logger.Logger) *session.State {
	s := session.New()
	s.Debug = cfg.Debug

	if cfg.Display != "" {
		s.Display = cfg.Display
	}
	if cfg.XAuthority != "" {
		s.XAuthority = cfg.XAuthority
	}

	detect.New(detectRunner, log).Seed(s, detect.Options{
		SkipDisplay:    cfg.Display != "",
		SkipXAuthority: cfg.XAuthority != "",
	})
	return s
}
