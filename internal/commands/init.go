package commands

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wrenkit/wren/internal/generator"
	"github.com/wrenkit/wren/internal/input"
	"github.com/wrenkit/wren/internal/output"
	"github.com/wrenkit/wren/internal/project"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// InitCmd creates and returns the 'init' command that scaffolds wren.yml.
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a wren.yml in the current directory",
		Long: `Create a commented wren.yml scaffold in the current directory.

The project name is taken from the argument, or prompted for with the
directory name as default.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				cwd, err := os.Getwd()
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				name = input.Prompt("Project name", filepath.Base(cwd))
			}

			if project.IsProject(".") && !force {
				if !input.Confirm(project.ConfigFileName+" exists, overwrite?", false) {
					output.Info("Keeping existing " + project.ConfigFileName)
					return
				}
				force = true
			}

			renderer := generator.NewRenderer()
			content, err := renderer.RenderFS(templatesFS, "templates/wren.yml.tmpl", map[string]any{
				"ProjectName": name,
			})
			if err != nil {
				output.Error(fmt.Sprintf("Failed to render %s: %v", project.ConfigFileName, err))
				os.Exit(1)
			}

			ops := []generator.Operation{
				&generator.WriteFileOp{
					Path:    project.ConfigFileName,
					Content: content,
					Mode:    0644,
				},
			}

			if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: force}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success("Created " + project.ConfigFileName)
			output.Info("Next steps:")
			output.Step("edit " + project.ConfigFileName)
			output.Step("wren render --dry-run")
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing wren.yml without asking")

	return cmd
}
