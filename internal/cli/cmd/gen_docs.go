package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/rclayout/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to ~/.local/share/man/man1/ so they
are available via 'man rclayout'. You may need to run 'mandb' to update
the man page index.

Examples:
  rclayout gen-docs                     # Install man pages
  rclayout gen-docs --format markdown   # Generate markdown into ./docs
  rclayout gen-docs --output ./man      # Generate to a local directory`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output
	rootCmd.DisableAutoGenTag = true

	out := cmd.OutOrStdout()
	switch genDocsFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "RCLAYOUT",
			Section: "1",
			Source:  "rclayout " + version,
			Manual:  "rclayout Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Fprintf(out, "Installed man pages to %s\n", outputDir)
		fmt.Fprintln(out, "Run 'mandb' if 'man rclayout' doesn't work immediately.")
		listGenerated(out, outputDir, ".1")
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		fmt.Fprintf(out, "Generated markdown docs in %s\n", outputDir)
		listGenerated(out, outputDir, ".md")
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
