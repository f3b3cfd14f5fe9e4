package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "foldean",
		Short: "Sort a Downloads folder into category subfolders",
		Long: "foldean classifies every file in a directory by extension and moves it into a\n" +
			"category folder such as Documents, Images, or Archives. By default it only\n" +
			"prints the plan; pass --apply to move files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.dir, "dir", "d", "", "Directory to organize (default: your Downloads folder)")
	pf.BoolVarP(&flags.apply, "apply", "y", false, "Move files instead of only printing the plan")
	pf.BoolVar(&flags.includeHidden, "include-hidden", false, "Also organize dotfiles and ~$ office lock files")
	pf.IntVar(&flags.depth, "depth", 0, "Subfolder levels to scan: 0 (top level only) or 1")
	pf.BoolVar(&flags.json, "json", false, "Write machine-readable JSON to stdout")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Only log errors")

	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
