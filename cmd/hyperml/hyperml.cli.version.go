package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/krizzdewizz/hyperml"
	"github.com/spf13/cobra"
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: HelpVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, FlagFormat, FlagDefaultFormat, HelpFlagFormat)

	return cmd
}

func runVersion(format string, stdout io.Writer) error {
	switch format {
	case OutputFormatText:
		fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline, hyperml.Version, runtime.Version())
		return nil
	case OutputFormatJSON:
		jsonBytes, _ := json.MarshalIndent(versionOutput{
			Version:   hyperml.Version,
			GoVersion: runtime.Version(),
		}, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return nil
	default:
		return newExitError(ExitCodeUsageError, ErrMsgUsage,
			fmt.Errorf(FmtErrorPlain, ErrMsgInvalidFormat, format))
	}
}
