package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/krizzdewizz/hyperml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	inputPath   string
	outputPath  string
	flavor      string
	selfClosing bool
	verbose     bool
}

func newRenderCmd() *cobra.Command {
	cfg := &renderConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameRender,
		Short: HelpRenderShort,
		Long:  HelpRenderLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.inputPath, FlagInput, FlagInputShort, "", HelpFlagInput)
	flags.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, HelpFlagOutput)
	flags.StringVarP(&cfg.flavor, FlagFlavor, FlagFlavorShort, FlagDefaultFlavor, HelpFlagFlavor)
	flags.BoolVar(&cfg.selfClosing, FlagSelfClosing, false, HelpFlagSelfClosing)
	flags.BoolVarP(&cfg.verbose, FlagVerbose, FlagVerboseShort, false, HelpFlagVerbose)

	return cmd
}

func runRender(cfg *renderConfig, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.inputPath == "" {
		return newExitError(ExitCodeUsageError, ErrMsgUsage, errors.New(ErrMsgMissingInput))
	}
	flavor, err := flavorByName(cfg.flavor)
	if err != nil {
		return newExitError(ExitCodeUsageError, ErrMsgUsage, err)
	}

	logger := zap.NewNop()
	if cfg.verbose {
		logger = newConsoleLogger(stderr)
	}
	defer func() { _ = logger.Sync() }()

	source, err := readDocumentSource(cfg.inputPath, stdin)
	if err != nil {
		return newExitError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	doc, err := hyperml.LoadDocument(bytes.NewReader(source))
	if err != nil {
		return newExitError(ExitCodeDocumentFail, ErrMsgLoadFailed, err)
	}
	logger.Debug(hyperml.LogMsgDocumentLoaded,
		zap.String(hyperml.LogFieldElement, doc.Root.Element),
		zap.Int(hyperml.LogFieldNodes, doc.Count()),
	)

	b := hyperml.New(flavor,
		hyperml.WithLogger(logger),
		hyperml.WithContent(doc.Emit),
		hyperml.WithSelfClosing(cfg.selfClosing),
	)

	// render fully before touching the output so a failed render leaves no file
	var out bytes.Buffer
	if err := b.RenderTo(&out); err != nil {
		return newExitError(ExitCodeError, ErrMsgRenderFailed, err)
	}
	out.WriteString(FmtNewline)

	if err := writeOutput(cfg.outputPath, out.Bytes(), stdout); err != nil {
		return newExitError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

func flavorByName(name string) (hyperml.Flavor, error) {
	switch name {
	case hyperml.FlavorNameHTML:
		return hyperml.HTMLFlavor{}, nil
	case hyperml.FlavorNameXML:
		return hyperml.XMLFlavor{}, nil
	default:
		return nil, fmt.Errorf(FmtErrorPlain, ErrMsgUnknownFlavor, name)
	}
}

// newConsoleLogger writes development-style logs to w.
func newConsoleLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf(FmtErrorPlain, ErrMsgCreateFileFailed, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
