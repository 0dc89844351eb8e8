package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog/v2"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/logger"
	"github.com/philipp01105/bridgelog/sink"
	"github.com/philipp01105/bridgelog/sink/hclogsink"
	"github.com/philipp01105/bridgelog/sink/klogsink"
	"github.com/philipp01105/bridgelog/sink/zapsink"
)

const (
	emitCmdUsage = "emit NAME LEVEL MESSAGE [ARGS...]"
	emitCmdShort = "send one call through a logger"
	emitCmdLong  = `Send one call through the logger NAME at LEVEL.

	MESSAGE may contain {} placeholders which are filled from ARGS in order.
	The call is gated on the effective level of NAME exactly like a call made
	from code, so nothing is printed when the level is disabled.

	The available sinks are:
	- text: plain lines on stdout
	- json: one JSON object per line on stdout
	- zap: zap production encoding on stdout
	- hclog: hclog lines on stdout
	- klog: klog lines on stdout`

	emitCmdExample = `# Emit a warning with two arguments
	bridgelog emit org.example.billing warn "retrying {} after {}" payment 3s

	# Attach an error that is reported after the message
	bridgelog emit org.example.billing error "upload failed" --error "disk full"`

	sinkFlagName        = "sink"
	errorFlagName       = "error"
	noTimestampFlagName = "no-timestamp"
)

var (
	errInvalidLevel = errors.New("invalid level")
	errInvalidSink  = errors.New("invalid sink")
)

var sinkNames = []string{"text", "json", "zap", "hclog", "klog"}

type emitFlags struct {
	sink        string
	err         string
	noTimestamp bool
}

func (f *emitFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.sink, sinkFlagName, "s", "text", "sink to write to (possible values: "+strings.Join(sinkNames, ", ")+")")
	flags.StringVarP(&f.err, errorFlagName, "e", "", "attach an error with this text as the trailing argument")
	flags.BoolVar(&f.noTimestamp, noTimestampFlagName, false, "omit timestamps from text and json output")
}

// emitCmd returns the command that sends one call through a logger.
func emitCmd(root *rootFlags) *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.MinimumNArgs(3)(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseCallLevel(args[1])
			if err != nil {
				return handleError(cmd, err)
			}

			s, closeSink, err := flags.newSink(cmd.OutOrStdout())
			if err != nil {
				return handleError(cmd, err)
			}

			store, err := root.loadStore(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			factory := logger.NewBuilder().
				WithStore(store).
				WithSink(s).
				Build()

			callArgs := make([]interface{}, 0, len(args)-2)
			for _, a := range args[3:] {
				callArgs = append(callArgs, a)
			}
			if flags.err != "" {
				callArgs = append(callArgs, errors.New(flags.err))
			}

			factory.Logger(args[0]).Log(level, args[2], callArgs...)
			return closeSink()
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// parseCallLevel accepts the five levels a call can be made at.
func parseCallLevel(s string) (core.Level, error) {
	level, ok := core.ParseLevel(s)
	if !ok || level == core.AllLevel || level == core.OffLevel {
		return level, fmt.Errorf("%w: %q", errInvalidLevel, s)
	}
	return level, nil
}

// newSink builds the sink selected by --sink writing to out. The returned
// function flushes it.
func (f *emitFlags) newSink(out io.Writer) (sink.Sink, func() error, error) {
	noop := func() error { return nil }
	fmtConfig := formatter.Config{DisableTimestamp: f.noTimestamp}

	switch f.sink {
	case "text":
		return sink.NewConsole(sink.ConsoleConfig{
			Writer:    out,
			Formatter: formatter.NewTextFormatter(fmtConfig),
		}), noop, nil
	case "json":
		return sink.NewConsole(sink.ConsoleConfig{
			Writer:    out,
			Formatter: formatter.NewJSONFormatter(fmtConfig),
		}), noop, nil
	case "zap":
		encoderConfig := zap.NewProductionEncoderConfig()
		if f.noTimestamp {
			encoderConfig.TimeKey = ""
		}
		zc := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(out), zapcore.DebugLevel)
		s := zapsink.New(zap.New(zc))
		return s, func() error {
			// syncing a terminal fails on some platforms
			_ = s.Close()
			return nil
		}, nil
	case "hclog":
		return hclogsink.New(hclog.New(&hclog.LoggerOptions{
			Name:              appName,
			Level:             hclog.Trace,
			Output:            out,
			DisableTime:       f.noTimestamp,
			IndependentLevels: true,
		})), noop, nil
	case "klog":
		klog.LogToStderr(false)
		klog.SetOutput(out)
		return klogsink.New(), func() error {
			klog.Flush()
			return nil
		}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q (possible values: %s)", errInvalidSink, f.sink, strings.Join(sinkNames, ", "))
	}
}
