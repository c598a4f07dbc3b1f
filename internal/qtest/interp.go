// Package qtest implements a small command language for driving
// queues interactively or from scripts.
package qtest

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"deedles.dev/listq"
	"deedles.dev/listq/internal/config"
	"deedles.dev/listq/internal/mlog"
)

var (
	// ErrNoQueue is returned by commands that need a current queue
	// when there is none.
	ErrNoQueue = errors.New("no current queue")

	// ErrEmpty is returned by commands that need a non-empty queue.
	ErrEmpty = errors.New("queue is empty")

	errQuit = errors.New("quit")
)

// maxLineLength is the longest script line Run accepts unless the
// configured string length calls for more.
const maxLineLength = 1 << 20

// Interp runs commands against a chain of queues, one of which is
// current at any time. It is not safe for concurrent use.
type Interp struct {
	out io.Writer
	lg  *zap.Logger

	stringLength int
	descend      bool
	echo         bool

	chain []*listq.Queue
	cur   int

	reg      *prometheus.Registry
	commands *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// New returns an interpreter that writes its output to out. Settings
// that can be changed with the option command start out as given by
// cfg. If lg is nil, the process-wide logger from [mlog.L] is used.
func New(cfg *config.Config, out io.Writer, lg *zap.Logger) *Interp {
	if lg == nil {
		lg = mlog.L()
	}

	in := Interp{
		out:          out,
		lg:           lg,
		stringLength: cfg.StringLength,
		descend:      cfg.Descend,
		echo:         cfg.Echo,
		cur:          -1,
		reg:          prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qtest_commands_total",
			Help: "The total number of commands executed.",
		}, []string{"cmd"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qtest_command_errors_total",
			Help: "The total number of commands that failed.",
		}, []string{"cmd"}),
	}
	in.reg.MustRegister(in.commands, in.failures)
	return &in
}

// Registry returns the registry that the interpreter's metrics are
// registered with.
func (in *Interp) Registry() *prometheus.Registry {
	return in.reg
}

// Current returns the current queue, or nil if there is none.
func (in *Interp) Current() *listq.Queue {
	if in.cur < 0 {
		return nil
	}
	return in.chain[in.cur]
}

// Len returns the number of queues in the chain.
func (in *Interp) Len() int {
	return len(in.chain)
}

// Exec runs a single command line. Blank lines and lines starting
// with '#' are ignored.
func (in *Interp) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}

	name := args[0]
	c, ok := commands[name]
	if !ok {
		in.commands.WithLabelValues("unknown").Inc()
		in.failures.WithLabelValues("unknown").Inc()
		return fmt.Errorf("unknown command %q", name)
	}
	in.commands.WithLabelValues(name).Inc()

	err := in.exec(c, args[1:])
	if err != nil && !errors.Is(err, errQuit) {
		in.failures.WithLabelValues(name).Inc()
		return fmt.Errorf("%v: %w", name, err)
	}
	return err
}

func (in *Interp) exec(c command, args []string) error {
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		return fmt.Errorf("usage: %v", c.usage)
	}

	if c.needsQueue && in.Current() == nil {
		return ErrNoQueue
	}

	err := c.run(in, args)
	if err != nil {
		return err
	}

	if c.show {
		return in.show(in.Current())
	}
	return nil
}

// Run executes the commands read from r line by line until r is
// exhausted, a quit command is run, or ctx is canceled. Failing
// commands are reported to the output and do not stop the script. It
// returns the number of commands that failed.
func (in *Interp) Run(ctx context.Context, r io.Reader) (failed int, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(maxLineLength, 2*in.stringLength))
	var lineno int
	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return failed, err
		}

		lineno++
		line := strings.TrimSpace(s.Text())
		if in.echo && line != "" {
			fmt.Fprintf(in.out, "cmd> %v\n", line)
		}

		err := in.Exec(line)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			failed++
			in.lg.Warn("command failed", zap.Int("line", lineno), zap.String("cmd", line), zap.Error(err))
			fmt.Fprintf(in.out, "ERROR: %v\n", err)
		}
	}
	if err := s.Err(); err != nil {
		return failed, fmt.Errorf("failed to read commands: %w", err)
	}

	in.lg.Debug("script finished", zap.Int("lines", lineno), zap.Int("failed", failed))
	return failed, nil
}

func (in *Interp) show(q *listq.Queue) error {
	if q == nil {
		_, err := io.WriteString(in.out, "l = NULL\n")
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("l = [")
	var sep string
	for v := range q.Values() {
		buf.WriteString(sep)
		buf.WriteString(v)
		sep = " "
	}
	buf.WriteString("]\n")

	_, err := in.out.Write(buf.Bytes())
	if err != nil {
		return err
	}

	if err := q.Check(); err != nil {
		return err
	}
	return nil
}
