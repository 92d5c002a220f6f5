package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/creatorlab/canvas/pkg/assets"
	"github.com/creatorlab/canvas/pkg/errors"
	"github.com/creatorlab/canvas/pkg/scene"
	"github.com/creatorlab/canvas/pkg/sceneio"
	"github.com/creatorlab/canvas/pkg/template"
)

// templateCommand groups the template subcommands.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "List and apply composition templates",
	}
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateApplyCommand())
	cmd.AddCommand(c.templateValidateCommand())
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range template.Builtin() {
				fmt.Println(StyleTitle.Render(t.ID) + " " + StyleDim.Render("("+t.Context+")"))
				for _, s := range t.Slots {
					line := fmt.Sprintf("%-12s %gx%g%% at (%g, %g)", s.Name, s.Size.Width, s.Size.Height, s.Position.X, s.Position.Y)
					if s.Required {
						line += " " + StyleWarning.Render("required")
					}
					if len(s.AcceptedTypes) > 0 {
						line += " " + StyleDim.Render("accepts: "+strings.Join(s.AcceptedTypes, ", "))
					}
					printDetail("%s", line)
				}
				printNewline()
			}
			return nil
		},
	}
}

// templateApplyOpts holds the flags for "template apply".
type templateApplyOpts struct {
	assetsPath  string // JSON file with the media asset records
	output      string // scene document output path (stdout if empty)
	interactive bool   // pick slot assignments interactively
}

func (c *CLI) templateApplyCommand() *cobra.Command {
	var opts templateApplyOpts

	cmd := &cobra.Command{
		Use:   "apply <template-id>",
		Short: "Fill a template with assets and emit a scene document",
		Long: `Apply binds media assets to a template's slots, producing a scene document
with one placement per filled slot. Without --interactive, slots are filled
automatically: required slots first, in declaration order, each taking the
first unused compatible asset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTemplateApply(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.assetsPath, "assets", "a", "", "JSON file with media asset records (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "scene document output path (default: stdout)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose slot assignments interactively")
	_ = cmd.MarkFlagRequired("assets")

	return cmd
}

func (c *CLI) runTemplateApply(id string, opts templateApplyOpts) error {
	tmpl, err := template.ByID(id)
	if err != nil {
		return err
	}
	media, err := loadAssets(opts.assetsPath)
	if err != nil {
		return err
	}

	var assignments []template.Assignment
	if opts.interactive {
		assignments, err = pickAssignments(tmpl, media)
		if err != nil {
			return err
		}
	} else {
		assignments = template.AutoAssign(tmpl, media)
	}

	placements := template.Apply(tmpl, assignments)
	validation := template.Validate(tmpl, assignments)
	status := template.StatusOf(tmpl, assignments)

	doc := sceneio.FromScene(scene.Scene{
		Context:    tmpl.Context,
		Placements: placements,
	}, media)

	if opts.output == "" {
		if err := sceneio.Encode(os.Stdout, doc); err != nil {
			return err
		}
	} else {
		if err := sceneio.Save(opts.output, doc); err != nil {
			return err
		}
		printSuccess("Wrote scene document")
		printFile(opts.output)
	}

	printDetail("%d/%d slots filled (%d/%d required)", status.Filled, status.Total, status.RequiredFilled, status.Required)
	if !validation.IsValid {
		for _, slot := range validation.MissingSlots {
			printWarning("required slot %q is unfilled", slot)
		}
	}
	if opts.output != "" {
		printNextStep("Render it", fmt.Sprintf("%s render %s", appName, opts.output))
	}
	return nil
}

func (c *CLI) templateValidateCommand() *cobra.Command {
	var assetsPath string

	cmd := &cobra.Command{
		Use:   "validate <template-id>",
		Short: "Check whether assets can fill a template's required slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.ByID(args[0])
			if err != nil {
				return err
			}
			media, err := loadAssets(assetsPath)
			if err != nil {
				return err
			}

			assignments := template.AutoAssign(tmpl, media)
			validation := template.Validate(tmpl, assignments)
			status := template.StatusOf(tmpl, assignments)

			printDetail("%d/%d slots filled (%d/%d required)", status.Filled, status.Total, status.RequiredFilled, status.Required)
			if validation.IsValid {
				printSuccess("All required slots can be filled")
				return nil
			}
			for _, slot := range validation.MissingSlots {
				printWarning("required slot %q cannot be filled", slot)
			}
			return errors.New(errors.ErrCodeInvalidTemplate, "template %s is missing %d required slot(s)", tmpl.ID, len(validation.MissingSlots))
		},
	}

	cmd.Flags().StringVarP(&assetsPath, "assets", "a", "", "JSON file with media asset records (required)")
	_ = cmd.MarkFlagRequired("assets")

	return cmd
}

// loadAssets reads a JSON array of media asset records.
func loadAssets(path string) ([]assets.MediaAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "assets file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading assets file %s", path)
	}
	var media []assets.MediaAsset
	if err := json.Unmarshal(data, &media); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing assets file %s", path)
	}
	return media, nil
}
