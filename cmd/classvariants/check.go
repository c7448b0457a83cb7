package main

import (
	"os"

	"github.com/spf13/cobra"

	classvariants "github.com/jackardios/go-class-variants"
	"github.com/jackardios/go-class-variants/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate variant manifests",
	Long: `Load every manifest matched by the configured glob patterns and report
semantic problems: defaults or compound rules naming unknown axes or
option values, duplicate names, and always-matching conditions.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-lines", true, "Show manifest lines with issues")
	f.Bool("print-linter-name", true, "Show (classcheck) suffix on issues")
}

// runCheck is shared between `classvariants check` and the bare root command.
func runCheck() error {
	log := cliLogger()
	sourceDir := getStringWithFallback("source", "source", ".")
	patterns := manifestPatterns()

	files, err := classvariants.DiscoverManifests(sourceDir, patterns)
	if err != nil {
		return err
	}
	log.Debug().Int("files", len(files)).Strs("patterns", patterns).Msg("discovered manifests")

	manifests, err := classvariants.LoadManifests(files)
	if err != nil {
		return err
	}

	issues := classvariants.Check(manifests...)
	classvariants.AttachSourceLines(issues)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := report.New(os.Stdout, report.Options{
			UseColors:       getBoolWithFallback("color", "color", false),
			PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
			PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		})
		reporter.PrintIssues(issues)
		reporter.PrintSummary(issues)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(issues) > 0 {
			os.Exit(1)
		}
	} else {
		// Default "Soft Gate" mode: only errors fail the build
		for _, issue := range issues {
			if issue.Severity == classvariants.SeverityError {
				os.Exit(1)
			}
		}
	}

	return nil
}
