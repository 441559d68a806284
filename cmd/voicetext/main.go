// Command voicetext transcribes recorded audio with Deepgram.
//
//	voicetext transcribe clip.webm   print the transcript of a file ("-" reads stdin)
//	voicetext serve                  run the HTTP API
//	voicetext version                print build information
//
// DEEPGRAM_API_KEY is read from the environment, or from .env in the working
// directory or its parent.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/kbukum/voicetext/config"
	"github.com/kbukum/voicetext/logger"
	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/server"
	"github.com/kbukum/voicetext/transcription"
	"github.com/kbukum/voicetext/transcription/deepgram"
	"github.com/kbukum/voicetext/version"
)

const usage = `usage: voicetext <command> [flags]

commands:
  transcribe <file>   transcribe an audio file ("-" reads stdin)
  serve               run the HTTP API
  version             print build information
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options are the flags shared by every command that loads configuration.
type options struct {
	configFile string
	envFile    string
	debug      bool
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configFile, "config", "c", "", "path to config.yml")
	fs.StringVar(&o.envFile, "env-file", "", "path to a .env file (default: .env, then ../.env)")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var opts options
	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.bind(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	switch args[0] {
	case "transcribe":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "usage: voicetext transcribe <file>")
			return 2
		}
		return runTranscribe(ctx, opts, fs.Arg(0), stdin, stdout, stderr)
	case "serve":
		return runServe(ctx, opts, stderr)
	case "version":
		fmt.Fprintln(stdout, version.Product, version.Get().Full())
		return 0
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

// app is the wiring shared by transcribe and serve.
type app struct {
	cfg       *config.AppConfig
	log       *logger.Logger
	telemetry *observability.Telemetry
	client    *deepgram.Client
}

func setup(ctx context.Context, opts options) (*app, error) {
	// LOG_* variables govern logging until the config is loaded.
	logger.SetGlobalLogger(logger.NewFromEnv(config.ServiceName))

	var loaderOpts []config.LoaderOption
	if opts.envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(opts.envFile))
	} else {
		config.LoadEnvFiles(nil)
	}
	if opts.configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}

	cfg, err := config.LoadApp(loaderOpts...)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	logger.Init(&cfg.Logging)
	log := logger.GetGlobalLogger()

	tel, err := observability.Setup(ctx, cfg.Observability, cfg.Resource(version.Get().Short()))
	if err != nil {
		return nil, err
	}

	client, err := deepgram.New(cfg.Deepgram,
		deepgram.WithLogger(log),
		deepgram.WithMetrics(tel.Metrics),
		deepgram.WithServiceName(cfg.Name),
	)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, err
	}
	return &app{cfg: cfg, log: log, telemetry: tel, client: client}, nil
}

func (a *app) close(ctx context.Context) {
	_ = a.client.Close(ctx)
	if err := a.telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
		a.log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
	}
}

func runTranscribe(ctx context.Context, opts options, path string, stdin io.Reader, stdout, stderr io.Writer) int {
	a, err := setup(ctx, opts)
	if err != nil {
		fmt.Fprintln(stderr, transcription.Describe(err))
		return 1
	}
	defer a.close(ctx)

	audio, err := readAudio(path, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out := transcription.Invoke(ctx, a.client, audio)
	if !out.OK() {
		fmt.Fprintln(stderr, out.Error)
		return 1
	}
	fmt.Fprintln(stdout, out.Transcript)
	return 0
}

func readAudio(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func runServe(ctx context.Context, opts options, stderr io.Writer) int {
	a, err := setup(ctx, opts)
	if err != nil {
		fmt.Fprintln(stderr, transcription.Describe(err))
		return 1
	}
	defer a.close(ctx)

	if !a.client.IsAvailable(ctx) {
		a.log.Warn("credential not configured; transcription requests will fail",
			logger.Fields(logger.FieldCredentialName, a.cfg.Deepgram.APIKeyEnv))
	}

	srv := server.New(a.cfg.Server, a.log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(a.cfg.Name, a.client)
	srv.RegisterTranscription(a.client)

	if err := srv.Start(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	<-ctx.Done()

	if err := srv.Stop(context.WithoutCancel(ctx)); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
