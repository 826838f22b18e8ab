package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/anyreduce/reduce/internal/config"
	"github.com/anyreduce/reduce/internal/fsio"
	"github.com/anyreduce/reduce/internal/predicate"
	"github.com/anyreduce/reduce/internal/stepper"
	"github.com/anyreduce/reduce/reduce"
)

var (
	errMissingSeparator   = errors.New("missing -- before the test command")
	errMissingInputFile   = errors.New("exactly one input file must precede --")
	errMissingTestCommand = errors.New("no test command given after --")
)

// ReduceCmd builds the single "reduce" command: reduce [flags] <inputfile>
// -- <test-command> [args...].
func ReduceCmd(workDir string) *Command {
	flags := flag.NewFlagSet("reduce", flag.ContinueOnError)
	flags.SetInterspersed(true)

	configPath := flags.StringP("config", "c", "", "Path to .reduce.jsonc (default: ./.reduce.jsonc if present)")
	timeout := flags.DurationP("timeout", "t", 0, "Per-candidate timeout (default 5s, or from config)")
	debug := flags.BoolP("debug", "d", false, "Print shrink / non-shrink notices")
	step := flags.BoolP("step", "s", false, "Interactive step-through mode (requires a terminal)")
	cwd := flags.String("cwd", "", "Run the test command as if started in dir")

	return &Command{
		Flags: flags,
		Usage: "reduce [flags] <inputfile> -- <test-command> [args...]",
		Short: "Shrink an input file while a test command keeps accepting it (exit 0)",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return runReduce(ctx, o, runReduceParams{
				workDir:    workDir,
				args:       args,
				configPath: *configPath,
				timeout:    *timeout,
				debug:      *debug,
				step:       *step,
				cwd:        *cwd,
			})
		},
	}
}

type runReduceParams struct {
	workDir    string
	args       []string
	configPath string
	timeout    time.Duration
	debug      bool
	step       bool
	cwd        string
}

func runReduce(ctx context.Context, o *IO, p runReduceParams) error {
	inputPath, command, err := splitArgs(p.args)
	if err != nil {
		return err
	}

	overrides := config.Overrides{}
	if p.timeout > 0 {
		overrides.Timeout = p.timeout
		overrides.HasTimeout = true
	}

	if p.cwd != "" {
		overrides.WorkDir = p.cwd
		overrides.HasWorkDir = true
	}

	cfg, err := config.Load(p.workDir, p.configPath, overrides)
	if err != nil {
		return err
	}

	initial, err := os.ReadFile(inputPath) //nolint:gosec // path is an operator-supplied CLI argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	lock, err := fsio.AcquireLock(inputPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	persistPath := inputPath + ".reduced"

	pred, err := predicate.New(ctx, predicate.Config{
		Command: command,
		Timeout: cfg.Timeout,
		WorkDir: cfg.WorkDir,
	}, persistPath)
	if err != nil {
		return err
	}

	var st *stepper.Stepper
	if p.step {
		st = stepper.New(func(n reduce.Notice) {
			if p.debug {
				o.ErrPrintln(n.String())
			}
		})
		defer st.Close()

		if !st.Before("reduce") {
			return ErrInterrupted
		}
	}

	onNotice := func(n reduce.Notice) {
		if p.debug {
			o.ErrPrintln(n.String())
		}
	}

	if st != nil {
		onNotice = st.OnNotice
	}

	engine, err := reduce.New(initial, pred, p.debug || p.step, onNotice)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	go func() {
		engine.Reduce()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		<-done

		return ErrInterrupted
	}

	if st != nil && st.Aborted() {
		return ErrInterrupted
	}

	final := engine.Current()

	if err := fsio.WriteAtomic(persistPath, bytes.NewReader(final)); err != nil {
		return err
	}

	o.Printf("%d bytes\n", len(final))

	return nil
}

// splitArgs separates "<inputfile> -- <test-command> [args...]" into the
// input path and the command argv.
func splitArgs(args []string) (string, []string, error) {
	for i, a := range args {
		if a == "--" {
			if i != 1 {
				return "", nil, errMissingInputFile
			}

			if i+1 >= len(args) {
				return "", nil, errMissingTestCommand
			}

			return args[0], args[i+1:], nil
		}
	}

	return "", nil, errMissingSeparator
}
