package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the dircmp command tree
func NewRootCommand() *cobra.Command {
	globals := &GlobalFlags{}
	flags := &CompareFlags{}
	configFlags := &ConfigFlags{}

	cmd := &cobra.Command{
		Use:   "dircmp [flags] SOURCE_DIRECTORY TARGET_DIRECTORY",
		Short: "List source files with no identical copy in a target directory",
		Long: `dircmp walks SOURCE_DIRECTORY and reports every file whose content does not
exist anywhere under TARGET_DIRECTORY. Names, timestamps and locations are
ignored: a source file counts as present when some target file has exactly the
same bytes.

Hidden files and folders (names starting with ".") are skipped unless --all
is given.

--show-config and --init-config manage the configuration file instead of
running a comparison.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := configFlags.validate(); err != nil {
				return usageError(err)
			}
			validate := cobra.ExactArgs(2)
			if configFlags.active() {
				validate = cobra.NoArgs
			}
			if err := validate(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFlags.active() {
				return runConfig(cmd, globals, configFlags)
			}
			return runCompare(cmd, args, globals, flags)
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	AddGlobalFlags(cmd, globals)
	AddCompareFlags(cmd, flags)
	AddConfigFlags(cmd, configFlags)
	cmd.SetVersionTemplate(versionTemplate())

	return cmd
}

// Execute runs the command tree with args and returns the process exit code.
// Fatal errors are printed to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args for nil
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}
