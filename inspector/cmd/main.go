package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
	"github.com/scusemua/chained-hashmap/inspector/domain"
	"github.com/scusemua/chained-hashmap/inspector/internal"
)

var (
	options      = domain.InspectorOptions{}
	globalLogger = config.GetLogger("")
)

func init() {
	options.ApplyDefaults()
}

// ValidateOptions ensures that the options/configuration is valid.
func ValidateOptions() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
}

func newZapLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if config.LogLevel == logger.LOG_LEVEL_ALL {
		level = zapcore.DebugLevel
	}

	return zap.NewExample(zap.IncreaseLevel(level))
}

// run executes the configured script against a new table, prints the report to out and, if requested,
// exports the table. A script that fails part-way still produces a report and an export.
func run(fs afero.Fs, opts *domain.InspectorOptions, zapLogger *zap.Logger, out io.Writer) error {
	hashFunction, err := hashmap.HashFunctionByName(opts.HashFunction)
	if err != nil {
		return err
	}

	table, err := hashmap.NewChainedHashMap[string, any](opts.Capacity, hashFunction)
	if err != nil {
		return err
	}

	ops, err := internal.NewLoader(fs).Load(opts.Script)
	if err != nil {
		return errors.Wrapf(err, "failed to load script \"%s\"", opts.Script)
	}

	runner := internal.NewRunner(table, zapLogger)
	lookups, runErr := runner.Run(ops)
	if runErr != nil {
		globalLogger.Error("Script did not complete: %v", runErr)
	}

	if opts.ResizeTo > 0 {
		if err = table.ResizeTable(opts.ResizeTo); err != nil {
			return err
		}
	}

	if _, err = fmt.Fprintln(out, internal.RenderReport(table, lookups)); err != nil {
		return errors.Wrap(err, "failed to print report")
	}

	if opts.Export != "" {
		if err = internal.NewExporter(fs).Export(opts.Export, runner.RunId(), table, lookups); err != nil {
			return errors.Wrapf(err, "failed to export table to \"%s\"", opts.Export)
		}
		globalLogger.Info("Exported %d link(s) to \"%s\".", table.Size(), opts.Export)
	}

	return runErr
}

func main() {
	ValidateOptions()

	if options.PrettyPrintOptions {
		globalLogger.Info("Starting the inspector with the following options:\n%s\n", options.PrettyString(2))
	}

	zapLogger := newZapLogger()
	err := run(afero.NewOsFs(), &options, zapLogger, os.Stdout)
	_ = zapLogger.Sync()

	if err != nil {
		globalLogger.Error("%v", err)
		os.Exit(1)
	}
}
