package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/boxes/zappretty"
)

func main() {
	logger := zappretty.NewLogger(zapcore.Lock(os.Stderr), zapcore.InfoLevel).Named("gen-enum")
	defer logger.Sync()

	if err := run(os.Args[1:], logger); err != nil {
		logger.Fatal("generating enum", zap.Error(err))
	}
}

func run(args []string, logger *zap.Logger) error {
	var print bool

	options := GeneratorOptions{
		Args: args,
	}

	fs := flag.NewFlagSet("gen-enum", flag.ContinueOnError)

	fs.StringVar(&options.Type, "type", "", "type name")
	fs.BoolVar(&options.GenerateFlag, "generate-flag", false, "generate methods for the flag.Value interface")
	fs.StringVar(&options.Dir, "dir", ".", "package directory to load and write <type>_enum.go into")
	fs.StringVar(&options.BuildTags, "tags", "", "comma-separated list of build tags to apply")
	fs.BoolVar(&print, "print", false, "print the generated code to stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if options.Type == "" {
		return errors.New("-type is required")
	}

	g := NewGenerator(options)
	if err := g.Load(); err != nil {
		return err
	}

	src, err := g.render()
	if print {
		fmt.Println(string(src))
	}
	if err != nil {
		return err
	}

	path, err := g.write(src)
	if err != nil {
		return err
	}

	logger.Info("wrote enum",
		zap.String("type", options.Type),
		zap.String("path", path),
		zap.Int("values", len(g.values)),
	)

	return nil
}
