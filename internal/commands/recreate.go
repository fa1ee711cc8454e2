package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/aaurelions/combicode/internal/app"
	"github.com/aaurelions/combicode/internal/loggy"
	"github.com/aaurelions/combicode/internal/recreate"
	"github.com/aaurelions/combicode/internal/utils"
)

// RecreateCommand returns the CLI command that restores a project tree
// from a merged document.
func RecreateCommand() *cli.Command {
	return &cli.Command{
		Name:        "recreate",
		Usage:       "Recreate a project from a combined file",
		Description: "Extracts every file block from a merged document and writes the files back to disk.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "Input combined file",
				Value: "combicode.txt",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Preview without making changes",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "Overwrite existing files",
			},
		},
		Action: recreateAction,
	}
}

func recreateAction(c *cli.Context) error {
	application, err := app.FromContext(c)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	inputPath := c.String("input")
	if !filepath.IsAbs(inputPath) {
		inputPath = filepath.Join(root, inputPath)
	}
	if _, err := os.Stat(inputPath); err != nil {
		return cli.Exit(fmt.Sprintf("❌ Input file not found: %s", c.String("input")), 1)
	}

	outputDir := c.String("output")
	if outputDir == "" {
		outputDir = root
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return err
	}

	dryRun := c.Bool("dry-run")
	loggy.Info("Starting recreate", "input", inputPath, "output", outputDir, "dry_run", dryRun)

	fmt.Println()
	utils.PrintKeyValue("📂 Output directory", outputDir)
	fmt.Println()

	report, err := application.Recreate.Run(recreate.Options{
		InputPath: inputPath,
		OutputDir: outputDir,
		DryRun:    dryRun,
		Overwrite: c.Bool("overwrite"),
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
	}

	for _, f := range report.Files {
		fmt.Printf("   %s (%s)\n", f.Path, utils.FormatBytes(f.Size))
		if f.Skipped {
			utils.PrintWarning(fmt.Sprintf("Skipped (exists): %s", f.Path))
		}
	}

	label := "Files recreated"
	if dryRun {
		label = "Files to recreate"
		utils.PrintInfo("Dry run: nothing was written to disk")
	}
	fmt.Println()
	utils.PrintSummaryTable("Summary", [][2]string{
		{label, fmt.Sprintf("%d", len(report.Files))},
		{"Total size", utils.FormatBytes(report.TotalSize)},
	})
	utils.PrintSuccess("Done!")
	return nil
}
