// Package cli implements the interactive graph shell behind "graft shell".
//
// The shell owns one instance graph bound to one module. Commands mirror
// an editing session: create nodes, wire pins, inspect, evaluate, and
// emit the editor script. Preloaded script lines run before the prompt,
// exactly as if they had been typed.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/catalog"
	"github.com/aretw0/graft/pkg/domain"
)

// Shell is an interactive command loop over a single instance graph.
type Shell struct {
	engine  *graft.Engine
	module  string
	catalog *catalog.Catalog
	logger  *slog.Logger

	in     io.Reader
	out    io.Writer
	render func(string) (string, error)

	graph     *domain.Graph
	evaluated []string
	queue     []string
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithIO replaces the default Stdin/Stdout pair.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Shell) {
		s.in = in
		s.out = out
	}
}

// WithScript preloads command lines that run before the prompt.
func WithScript(lines []string) Option {
	return func(s *Shell) { s.queue = append(s.queue, lines...) }
}

// WithRenderer sets a markdown renderer for tables and help text.
// Without one, the shell prints plain aligned text.
func WithRenderer(render func(string) (string, error)) Option {
	return func(s *Shell) { s.render = render }
}

// New creates a shell bound to one of the engine's modules.
func New(engine *graft.Engine, module string, opts ...Option) (*Shell, error) {
	cat, err := engine.Catalog(module)
	if err != nil {
		return nil, err
	}

	s := &Shell{
		engine:  engine,
		module:  module,
		catalog: cat,
		logger:  logging.NewNop(),
		in:      os.Stdin,
		out:     os.Stdout,
		graph:   domain.NewGraph(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run executes preloaded script lines, then reads commands until exit,
// EOF, or context cancellation.
func (s *Shell) Run(ctx context.Context) error {
	for _, line := range s.queue {
		s.logger.Debug("script line", "line", line)
		if quit := s.dispatch(line); quit {
			return nil
		}
	}

	scanner := bufio.NewScanner(NewInterruptibleReader(s.in, ctx.Done()))
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(s.out)
			return nil
		}

		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			// EOF or interrupt both end the session cleanly.
			fmt.Fprintln(s.out)
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.dispatch(line); quit {
			return nil
		}
	}
}

// dispatch runs one command line. Command errors are reported and the
// loop keeps going; only exit commands return true.
func (s *Shell) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help":
		s.printHelp()
	case "types":
		s.cmdTypes()
	case "nodes":
		s.cmdNodes()
	case "create":
		err = s.cmdCreate(args)
	case "connect":
		err = s.cmdWire(cmd, args, true)
	case "disconnect":
		err = s.cmdWire(cmd, args, false)
	case "remove":
		err = s.cmdRemove(args)
	case "graph":
		s.cmdGraph()
	case "check":
		err = s.cmdCheck()
	case "evaluate":
		err = s.cmdEvaluate()
	case "generate":
		err = s.cmdGenerate()
	case "reset":
		s.cmdReset()
	default:
		fmt.Fprintf(s.out, "unknown command: %s (try help)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

var errInterrupted = errors.New("interrupted")

// InterruptibleReader wraps an io.Reader (like os.Stdin) and fails reads
// once the cancel channel closes. A read already blocked in the kernel
// still finishes; the failure surfaces on the next call.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{
		base:   base,
		cancel: cancel,
	}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}

	n, err = r.base.Read(p)

	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}
	return n, err
}
