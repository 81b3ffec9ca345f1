package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/ops"
	"github.com/calebhs/canvas/internal/suggest"
	"github.com/calebhs/canvas/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, client *suggest.Client) *cli.App {
	app := &cli.App{
		Name:    "canvas",
		Usage:   "AI brainstorming canvas",
		Version: Version,
		Commands: []*cli.Command{
			profileCmd(db),
			generateCmd(db, client),
			addCmd(db),
			editCmd(db),
			removeCmd(db),
			starCmd(db),
			listCmd(db),
			statusCmd(db),
			chatCmd(db, client),
			acceptCmd(db),
			exportCmd(db),
			viewCmd(db),
			resetCmd(db),
			webCmd(db, cfg, client),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// profileCmd creates the profile command.
func profileCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show or update the intake profile",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Usage: "Job title, e.g. \"Marketing Director\""},
			&cli.StringFlag{Name: "responsibilities", Usage: "Day-to-day responsibilities"},
			&cli.StringSliceFlag{Name: "toggle", Aliases: []string{"t"}, Usage: "Motivation id to toggle (time|quality|capability|decisions|overload|scale); repeatable"},
		},
		Action: func(c *cli.Context) error {
			// No flags → show the profile
			if !c.IsSet("role") && !c.IsSet("responsibilities") && !c.IsSet("toggle") {
				output, err := ops.ProfileGet(db)
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			input := ops.ProfileUpdateInput{
				ToggleHelp: c.StringSlice("toggle"),
			}
			if c.IsSet("role") {
				role := c.String("role")
				input.Role = &role
			}
			if c.IsSet("responsibilities") {
				resp := c.String("responsibilities")
				input.Responsibilities = &resp
			}

			output, err := ops.ProfileUpdate(db, input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// generateCmd creates the generate command.
func generateCmd(db *sql.DB, client *suggest.Client) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate starter ideas for every category from the profile",
		Action: func(c *cli.Context) error {
			output, err := ops.Generate(c.Context, db, client, ops.GenerateInput{})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// addCmd creates the add command.
func addCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add an idea to a category",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.IdeaAdd(db, ops.IdeaAddInput{
				Category: c.String("category"),
				Text:     strings.Join(c.Args().Slice(), " "),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Replace an idea's text",
		ArgsUsage: "<id> <text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("usage: edit -c <category> <id> <text>"))
			}
			output, err := ops.IdeaEdit(db, ops.IdeaEditInput{
				Category: c.String("category"),
				ID:       c.Args().First(),
				Text:     strings.Join(c.Args().Slice()[1:], " "),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// removeCmd creates the remove command.
func removeCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Delete an idea",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("usage: remove -c <category> <id>"))
			}
			output, err := ops.IdeaRemove(db, ops.IdeaRemoveInput{
				Category: c.String("category"),
				ID:       c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// starCmd creates the star command.
func starCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "star",
		Usage:     "Toggle an idea's priority star",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("usage: star -c <category> <id>"))
			}
			output, err := ops.IdeaStar(db, ops.IdeaStarInput{
				Category: c.String("category"),
				ID:       c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List ideas grouped by category",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Limit to one category"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.IdeaList(db, ops.IdeaListInput{
				Category: c.String("category"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// statusCmd creates the status command.
func statusCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show view, profile readiness, and idea counts",
		Action: func(c *cli.Context) error {
			output, err := ops.Status(db)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// chatCmd creates the chat command.
func chatCmd(db *sql.DB, client *suggest.Client) *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Open a category conversation, or send a message to it",
		ArgsUsage: "[message]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
		},
		Action: func(c *cli.Context) error {
			// No message → show the transcript
			if c.NArg() == 0 {
				output, err := ops.ChatOpen(db, ops.ChatOpenInput{
					Category: c.String("category"),
				})
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := ops.ChatSend(c.Context, db, client, ops.ChatSendInput{
				Category: c.String("category"),
				Text:     strings.Join(c.Args().Slice(), " "),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// acceptCmd creates the accept command.
func acceptCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "accept",
		Usage:     "Accept a pending suggestion onto the board",
		ArgsUsage: "<suggestion text>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Required: true, Usage: "Category id"},
			&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Required: true, Usage: "Assistant message id"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("usage: accept -c <category> -m <message-id> <suggestion text>"))
			}
			output, err := ops.ChatAccept(db, ops.ChatAcceptInput{
				Category:   c.String("category"),
				MessageID:  c.String("message"),
				Suggestion: strings.Join(c.Args().Slice(), " "),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the markdown integration plan to disk",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.canvas/exports/ai-integration-plan.md)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(db, ops.ExportInput{
				Path: c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// viewCmd creates the view command.
func viewCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Switch between the intake and canvas views",
		ArgsUsage: "<intake|canvas>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("usage: view <intake|canvas>"))
			}
			output, err := ops.ViewSet(db, ops.ViewSetInput{
				View: c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// resetCmd creates the reset command.
func resetCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Clear the profile, board, and conversations",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("yes") && isTerminal() {
				fmt.Print("This clears the profile, board, and conversations. Continue? [y/N] ")
				var answer string
				_, _ = fmt.Scanln(&answer)
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Println("aborted")
					return nil
				}
			}
			output, err := ops.Reset(db)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(db *sql.DB, cfg *config.Config, client *suggest.Client) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the canvas web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8790, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, client, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cErr, ok := err.(*errors.CanvasError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cErr.Code, cErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
