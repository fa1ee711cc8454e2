// Package commands contains the CLI command implementations.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/aaurelions/combicode/internal/app"
	"github.com/aaurelions/combicode/internal/loggy"
	"github.com/aaurelions/combicode/internal/merge"
	"github.com/aaurelions/combicode/internal/scanner"
	"github.com/aaurelions/combicode/internal/utils"
)

// CombineCommand returns the CLI command that merges a project into a
// single document.
func CombineCommand() *cli.Command {
	return &cli.Command{
		Name:        "combine",
		Usage:       "Combine the project's code into a single file",
		Description: "Walks the current directory, filters files through gitignore rules and writes a merged document with a code index.",
		Hidden:      true,
		Action:      combineAction,
	}
}

func combineAction(c *cli.Context) error {
	application, err := app.FromContext(c)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current working directory: %w", err)
	}

	color.New(color.FgHiCyan, color.Bold).Printf("✨ Combicode v%s\n", c.App.Version)
	fmt.Printf("📂 Root: %s\n", root)

	output := c.String("output")
	if !c.IsSet("output") && application.Config.Output.FileName != "" {
		output = application.Config.Output.FileName
	}

	outputPath := output
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(root, outputPath)
	}

	loggy.Info("Starting combine", "root", root, "output", output)

	result, err := application.Scanner.Scan(scanner.Options{
		Root:          root,
		OutputPath:    outputPath,
		ExtraExcludes: splitList(c.String("exclude")),
		IncludeExts:   splitList(c.String("include-ext")),
		UseGitignore:  !c.Bool("no-gitignore"),
	})
	if err != nil {
		return fmt.Errorf("scanning project: %w", err)
	}
	if len(result.Files) == 0 {
		return cli.Exit("❌ No files to include. Check your path or filters.", 1)
	}

	skipSet, err := scanner.CompileGlobSet(splitList(c.String("skip-content")))
	if err != nil {
		return err
	}

	noParse := c.Bool("no-parse")
	records := loadRecords(application, result.Files, skipSet, noParse)

	prompt := merge.DefaultSystemPrompt
	if c.Bool("llms-txt") {
		prompt = merge.LLMSTxtSystemPrompt
	}
	includeHeader := !c.Bool("no-header")

	index := merge.ComputeOffsets(records, filepath.Base(root), prompt, includeHeader, noParse)

	var totalSize int64
	omitted := 0
	for _, r := range records {
		if r.SkipContent {
			omitted++
			continue
		}
		totalSize += r.Size
	}

	if c.Bool("dry-run") {
		fmt.Println()
		utils.PrintHeading("📋 Files to include (dry run):")
		fmt.Println()
		fmt.Print(index)
		rows := [][2]string{
			{"Total files", fmt.Sprintf("%d", len(records))},
			{"Total size", utils.FormatBytes(totalSize)},
		}
		if omitted > 0 {
			rows = append(rows, [2]string{"Content omitted", fmt.Sprintf("%d files", omitted)})
		}
		fmt.Println()
		utils.PrintSummaryTable("Summary", rows)
		utils.PrintSuccess("Done!")
		return nil
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	totalLines, err := merge.WriteDocument(outFile, records, prompt, index, includeHeader)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"Included", fmt.Sprintf("%d files (%s)", len(records), utils.FormatBytes(totalSize))},
	}
	if omitted > 0 {
		rows = append(rows, [2]string{"Content omitted", fmt.Sprintf("%d files", omitted)})
	}
	rows = append(rows,
		[2]string{"Ignored", fmt.Sprintf("%d files/dirs", result.Ignored)},
		[2]string{"Output", fmt.Sprintf("%s (~%d lines)", output, totalLines)},
	)
	fmt.Println()
	utils.PrintSummaryTable("Summary", rows)
	utils.PrintSuccess("Done!")
	return nil
}

// loadRecords reads each selected file and extracts its structure. Files
// matching the skip set keep their place in the index with no content, and
// read failures degrade to a placeholder line instead of aborting the run.
func loadRecords(application *app.App, files []scanner.File, skipSet *scanner.GlobSet, noParse bool) []*merge.FileRecord {
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Reading files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	records := make([]*merge.FileRecord, 0, len(files))
	for _, f := range files {
		record := &merge.FileRecord{
			AbsPath:       f.AbsPath,
			RelPath:       f.RelPath,
			Size:          f.Size,
			FormattedSize: f.FormattedSize,
			SkipContent:   skipSet.Match(f.RelPath),
		}

		if !record.SkipContent {
			data, err := os.ReadFile(f.AbsPath)
			if err != nil {
				loggy.Warn("Failed to read file", "path", f.AbsPath, "error", err)
				record.Content = fmt.Sprintf("... (error reading file: %v) ...", err)
				record.LineCount = 1
			} else {
				record.Content = string(data)
				record.LineCount = merge.CountLines(record.Content)
				if !noParse {
					record.Elements = application.Parser.Structure(f.RelPath, record.Content)
				}
			}
		}

		records = append(records, record)
		bar.Add(1)
	}

	return records
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
