// celstep CLI - evaluate, trace and step expressions, or serve them to
// editors and stepping clients
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tliron/commonlog"

	"github.com/chazu/celstep/history"
	"github.com/chazu/celstep/manifest"
	"github.com/chazu/celstep/server"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("celstep.cli")

func main() {
	expr := flag.String("e", "", "Expression to evaluate")
	file := flag.String("f", "", "Read the expression from a file ('-' for stdin)")
	trace := flag.Bool("trace", false, "Print every executed instruction and the stack after it")
	disasm := flag.Bool("disasm", false, "Print the instruction listing before running")
	format := flag.String("format", "text", "Output format: text, json or yaml")
	interactive := flag.Bool("i", false, "Start the stepping REPL")
	serveMode := flag.Bool("serve", false, "Start the stepping service (Connect HTTP/JSON + gRPC health)")
	lspMode := flag.Bool("lsp", false, "Start the language server on stdio")
	configDir := flag.String("config", "", "Directory containing celstep.toml (default: search upward from the working directory)")
	verbosity := flag.Int("v", 0, "Log verbosity (overrides [log] verbosity)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: celstep [options] [expression]\n\n")
		fmt.Fprintf(os.Stderr, "Compiles an expression to stack instructions and runs it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  celstep '1 + 2'                     # Evaluate\n")
		fmt.Fprintf(os.Stderr, "  celstep -trace -disasm 'true ? 1 : 2'  # Show each step\n")
		fmt.Fprintf(os.Stderr, "  celstep -format yaml -trace -f expr.cel\n")
		fmt.Fprintf(os.Stderr, "  celstep -i                          # Stepping REPL\n")
		fmt.Fprintf(os.Stderr, "\nServers:\n")
		fmt.Fprintf(os.Stderr, "  celstep -serve                      # Stepping service on [server] addr\n")
		fmt.Fprintf(os.Stderr, "  celstep -lsp                        # Language server on stdio\n")
	}
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *verbosity != 0 {
		cfg.Log.Verbosity = *verbosity
	}
	configureLogging(cfg.Log)

	switch {
	case *lspMode:
		if err := server.NewLSP(cfg.Eval.MaxDepth).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "LSP error: %v\n", err)
			os.Exit(1)
		}
		return
	case *serveMode:
		if err := serve(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := evalOptions{
		MaxDepth:  cfg.Eval.MaxDepth,
		SizeLimit: cfg.Eval.SizeLimit,
		Trace:     *trace,
		LogSteps:  cfg.Eval.Trace,
		Disasm:    *disasm,
		Format:    *format,
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	source, ok, err := readSource(*expr, *file, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *interactive || !ok {
		runREPL(os.Stdin, os.Stdout, cfg, source)
		return
	}

	failed, err := evaluate(os.Stdout, source, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(3)
	}
}

// loadConfig reads celstep.toml from dir, or from the nearest ancestor of
// the working directory, falling back to defaults.
func loadConfig(dir string) (*manifest.Manifest, error) {
	if dir != "" {
		return manifest.Load(dir)
	}
	m, err := manifest.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if m == nil {
		return manifest.Default(), nil
	}
	return m, nil
}

func configureLogging(cfg manifest.Log) {
	var path *string
	if cfg.File != "" {
		path = &cfg.File
	}
	commonlog.Configure(cfg.Verbosity, path)
}

// readSource picks the expression from -e, -f or the positional
// arguments. ok is false when none was given.
func readSource(expr, file string, args []string) (source string, ok bool, err error) {
	switch {
	case expr != "":
		return expr, true, nil
	case file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(data), true, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("cannot read %s: %w", file, err)
		}
		return string(data), true, nil
	case len(args) > 0:
		return strings.Join(args, " "), true, nil
	}
	return "", false, nil
}

func serve(cfg *manifest.Manifest) error {
	store, err := history.Open(cfg.History.Driver, cfg.History.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Config{
		SessionTTL:       cfg.Server.SessionTTL,
		SweepInterval:    cfg.Server.SweepInterval,
		HistoryRetention: cfg.History.Retention,
		Eval: server.EvalOptions{
			MaxDepth:      cfg.Eval.MaxDepth,
			SizeLimit:     cfg.Eval.SizeLimit,
			DefaultSource: cfg.Eval.DefaultSource,
			Trace:         cfg.Eval.Trace,
		},
	}, store)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Noticef("received %s, shutting down", sig)
		srv.Stop()
	}()

	if cfg.Server.GRPCAddr != "" {
		go func() {
			if err := srv.ServeGRPC(cfg.Server.GRPCAddr); err != nil {
				log.Errorf("gRPC listener: %s", err)
			}
		}()
	}
	return srv.ListenAndServe(cfg.Server.Addr)
}
