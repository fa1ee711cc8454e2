package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aaurelions/combicode/internal/app"
	"github.com/aaurelions/combicode/internal/commands"
	"github.com/aaurelions/combicode/internal/utils"
)

// Version information - populated at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file for the merged document",
		Value:   "combicode.txt",
	},
	&cli.BoolFlag{
		Name:    "dry-run",
		Aliases: []string{"d"},
		Usage:   "Preview without making changes",
	},
	&cli.StringFlag{
		Name:    "include-ext",
		Aliases: []string{"i"},
		Usage:   "Comma-separated list of extensions to exclusively include (e.g., .py,.js)",
	},
	&cli.StringFlag{
		Name:    "exclude",
		Aliases: []string{"e"},
		Usage:   "Comma-separated list of additional glob patterns to exclude",
	},
	&cli.BoolFlag{
		Name:    "llms-txt",
		Aliases: []string{"l"},
		Usage:   "Use the system prompt for llms.txt context",
	},
	&cli.BoolFlag{
		Name:  "no-gitignore",
		Usage: "Do not use patterns from the project's .gitignore files",
	},
	&cli.BoolFlag{
		Name:  "no-header",
		Usage: "Omit the introductory prompt and file tree from the output",
	},
	&cli.StringFlag{
		Name:  "skip-content",
		Usage: "Comma-separated glob patterns for files to list in the tree but omit content",
	},
	&cli.BoolFlag{
		Name:  "no-parse",
		Usage: "Disable code structure parsing (show only file tree)",
	},
}

func main() {
	cliApp := &cli.App{
		Name:  "combicode",
		Usage: "Combine your project's code into a single file for LLM context",
		Description: "Combicode walks the current directory, filters files through gitignore rules,\n" +
			"extracts a lightweight code structure index and writes everything into one\n" +
			"navigable document. The recreate subcommand restores a project from such a file.",
		Version: Version,
		Compiled: func() time.Time {
			t, err := time.Parse(time.RFC3339, BuildTime)
			if err != nil {
				return time.Now()
			}
			return t
		}(),
		Flags: globalFlags,
		Before: func(c *cli.Context) error {
			application, err := app.New()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			c.App.Metadata = map[string]interface{}{
				"app": application,
			}

			return nil
		},
		Commands: []*cli.Command{
			commands.CombineCommand(),
			commands.RecreateCommand(),
		},
		Action: func(c *cli.Context) error {
			// Default action is to combine the current directory
			return commands.CombineCommand().Action(c)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		utils.PrintError(err.Error())
		os.Exit(1)
	}
}
