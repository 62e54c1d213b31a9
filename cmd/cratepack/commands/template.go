package commands

import (
	"fmt"

	"github.com/piwi3910/CratePack/internal/model"
	"github.com/piwi3910/CratePack/internal/project"
	"github.com/piwi3910/CratePack/internal/ui"
	"github.com/spf13/cobra"
)

var templateOpts struct {
	name        string
	description string
	out         string
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Save projects as reusable templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderTemplates(store))
		return nil
	},
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <project>",
	Short: "Save a project's bins, items and settings as a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, err := project.LoadProject(args[0])
		if err != nil {
			return err
		}
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}

		name := templateOpts.name
		if name == "" {
			name = proj.Name
		}
		if store.FindByName(name) != nil {
			return fmt.Errorf("a template named %q already exists", name)
		}
		tpl := model.NewProjectTemplate(name, templateOpts.description, proj.Bins, proj.Items, proj.Settings)
		store.Add(tpl)
		if err := project.SaveDefaultTemplates(store); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q (%s)\n", tpl.Name, tpl.ID)
		return nil
	},
}

var templateNewCmd = &cobra.Command{
	Use:   "new <template-name>",
	Short: "Start a new project from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := project.LoadDefaultTemplates()
		if err != nil {
			return err
		}
		tpl := store.FindByName(args[0])
		if tpl == nil {
			return fmt.Errorf("no template named %q", args[0])
		}

		name := templateOpts.name
		if name == "" {
			name = tpl.Name
		}
		out := templateOpts.out
		if out == "" {
			out = name + ".json"
		}
		if err := project.SaveProject(out, tpl.ToProject(name)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s from template %q\n", out, tpl.Name)
		return nil
	},
}

func init() {
	templateSaveCmd.Flags().StringVar(&templateOpts.name, "name", "", "Template name (default: the project name)")
	templateSaveCmd.Flags().StringVar(&templateOpts.description, "description", "", "Template description")
	templateNewCmd.Flags().StringVar(&templateOpts.name, "name", "", "Project name (default: the template name)")
	templateNewCmd.Flags().StringVarP(&templateOpts.out, "out", "o", "", "Project file to write")
	templateCmd.AddCommand(templateListCmd, templateSaveCmd, templateNewCmd)
}
