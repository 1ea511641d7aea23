package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wrenkit/wren/internal/config"
	"github.com/wrenkit/wren/internal/generator"
	"github.com/wrenkit/wren/internal/generators/cmock"
	"github.com/wrenkit/wren/internal/generators/gcovr"
	"github.com/wrenkit/wren/internal/output"
	"github.com/wrenkit/wren/internal/project"
	"github.com/wrenkit/wren/internal/schema"
)

// RenderCmd creates and returns the 'render' command that produces the
// tool config files.
func RenderCmd() *cobra.Command {
	var force, skip, diff, dryRun bool
	var configPath, outDir string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render cmock.yml and gcovr.cfg from wren.yml",
		Long: `Render the CMock and gcovr configuration files from wren.yml.

Both files are written together: if one write fails, neither lands on
disk. Existing files trigger conflict resolution (interactive by default;
--force, --skip, and --diff select a fixed strategy).

Malformed treat_as entries and similar recoverable problems are reported
as warnings and do not fail the render.`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			flagCount := 0
			conflicting := []string{}
			if force {
				flagCount++
				conflicting = append(conflicting, "--force")
			}
			if skip {
				flagCount++
				conflicting = append(conflicting, "--skip")
			}
			if diff {
				flagCount++
				conflicting = append(conflicting, "--diff")
			}
			if flagCount > 1 {
				output.Error(fmt.Sprintf("Conflicting flags: %v are mutually exclusive", conflicting))
				os.Exit(1)
			}

			if configPath == "" {
				info, err := project.Find(".")
				if err != nil {
					output.Error(err.Error())
					output.Step("wren init")
					os.Exit(1)
				}
				configPath = info.ConfigPath
			}
			output.Verbose("Loading config from " + configPath)

			cfg, err := config.Load(configPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if outDir == "" {
				outDir = filepath.Join(filepath.Dir(configPath), cfg.OutputDir)
			}

			rendered := make([]schema.RenderedConfig, 0, 2)
			var warnings []schema.Warning

			cmockConfig, ws, err := cmock.New(filepath.Join(outDir, "cmock.yml")).Render(cfg.CMockSettings())
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			rendered = append(rendered, cmockConfig)
			warnings = append(warnings, ws...)

			gcovrConfig, ws, err := gcovr.New(filepath.Join(outDir, "gcovr.cfg")).Render(cfg.GcovrSettings())
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			rendered = append(rendered, gcovrConfig)
			warnings = append(warnings, ws...)

			// Warnings are informational; they never change the outcome.
			for _, w := range warnings {
				output.Warn(w.String())
			}

			if dryRun {
				ops := make([]generator.Operation, 0, len(rendered))
				for _, rc := range rendered {
					ops = append(ops, &generator.WriteFileOp{Path: rc.Path, Content: []byte(rc.Text), Mode: 0644})
				}
				if err := generator.Execute(ctx, ops, generator.ExecuteOptions{DryRun: true, Force: true}); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				return
			}

			resolver, err := generator.NewResolver(force, skip, diff)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			diffGen := generator.NewDiffGenerator()
			tx := generator.NewTransaction()
			staged := []string{}

			for _, rc := range rendered {
				existing, readErr := os.ReadFile(rc.Path)
				if readErr == nil {
					resolution, err := resolveLoop(resolver, diffGen, rc.Path, existing, []byte(rc.Text))
					if err != nil {
						output.Error(err.Error())
						os.Exit(1)
					}
					switch resolution {
					case generator.Skip:
						output.Step("Skipped " + rc.Path)
						continue
					case generator.Cancel:
						output.Info("Cancelled, nothing written")
						return
					}
				}
				tx.AddFile(rc.Path, []byte(rc.Text), 0644)
				staged = append(staged, rc.Path)
			}

			if err := tx.Commit(); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, path := range staged {
				output.Success("Wrote " + path)
			}
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&skip, "skip", false, "Keep existing files without asking")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show a diff before deciding")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to wren.yml (default: search upwards from the working directory)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: output.dir from wren.yml)")

	return cmd
}

// resolveLoop runs conflict resolution until a terminal decision comes
// back. A ShowDiff answer prints the diff and asks again.
func resolveLoop(resolver *generator.Resolver, diffGen *generator.DiffGenerator, path string, existing, newer []byte) (generator.ConflictResolution, error) {
	for {
		resolution, err := resolver.ResolveConflict(path, existing, newer)
		if err != nil {
			return generator.Cancel, err
		}
		if resolution != generator.ShowDiff {
			return resolution, nil
		}
		d := diffGen.Generate(path, path, existing, newer)
		if d == "" {
			d = "Files are identical\n"
		}
		fmt.Println(d)
	}
}
