package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cjdelfin.dev/internal/services"
)

func newSkillsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Print the skills matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSkills(cmd.OutOrStdout(), services.NewSkillService(rt.cfg.Portfolio.Skills))
			return nil
		},
	}
}

func printSkills(w io.Writer, svc *services.SkillService) {
	for _, category := range svc.Categories() {
		fmt.Fprintln(w, formatTitle(category.Name))
		t := newTable(column{header: "Skill", width: 16}, column{header: "Level", width: 12})
		for _, skill := range category.Skills {
			t.addRow(skill.Name, services.Stars(skill.Level))
		}
		fmt.Fprint(w, t.render())
		fmt.Fprintln(w)
	}

	stats := svc.Stats()
	fmt.Fprintln(w, formatMuted(fmt.Sprintf("%d technologies · %d advanced · %d categories",
		stats.Total, stats.Advanced, stats.Categories)))
	for _, entry := range svc.Legend() {
		fmt.Fprintf(w, "  %s %s %s\n", entry.Stars, styleBold.Render(entry.Label), formatMuted(entry.Description))
	}
}
