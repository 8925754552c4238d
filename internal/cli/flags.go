package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

// CompareFlags holds the root command's comparison flags
type CompareFlags struct {
	All          bool
	Exclude      []string
	Output       string
	Report       string
	ReportFormat string
	Progress     bool
	Bandwidth    string
	BufferSize   int
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&flags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/dircmp/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&flags.Verbose,
		"verbose",
		"v",
		false,
		"show progress and a summary on stderr",
	)
	cmd.PersistentFlags().BoolVarP(
		&flags.Quiet,
		"quiet",
		"q",
		false,
		"suppress progress and phase messages",
	)
}

// AddCompareFlags adds the comparison flags to cmd
func AddCompareFlags(cmd *cobra.Command, flags *CompareFlags) {
	cmd.Flags().BoolVarP(&flags.All, "all", "a", false, "include hidden files and folders")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", nil, "glob patterns to skip in both trees (e.g., \"*.tmp\", \"build/\")")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().StringVar(&flags.Report, "report", "", "also write the unmatched files report to a file")
	cmd.Flags().StringVar(&flags.ReportFormat, "report-format", "human", "report file format: human, json")
	cmd.Flags().BoolVar(&flags.Progress, "progress", true, "show a progress bar when stderr is a terminal")
	cmd.Flags().StringVarP(&flags.Bandwidth, "bandwidth", "b", "", "read rate limit for comparisons (e.g., \"10M\", \"1G\")")
	cmd.Flags().IntVar(&flags.BufferSize, "buffer-size", 0, "comparison buffer size in bytes, at least 4096 (default 65536)")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to file, \"-\" for stderr (enables logging)")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}
