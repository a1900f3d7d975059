package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"cjdelfin.dev/internal/models"
	"cjdelfin.dev/internal/services"
)

func newProjectsCmd(rt *runtime) *cobra.Command {
	var (
		query    string
		featured bool
	)

	cmd := &cobra.Command{
		Use:     "projects",
		Short:   "List projects matching a search",
		Aliases: []string{"ls"},
		Long: `List the project catalog the way the projects page shows it.

Examples:
  portfolio projects
  portfolio projects --query react
  portfolio projects -q go --featured`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := models.NewFilterState()
			state.Query = query
			if featured {
				state.Scope = models.ScopeFeatured
			}
			view := services.NewProjectService(rt.cfg.Portfolio.Projects).Listing(state)
			printListing(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "match title, description or technology")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured projects")
	return cmd
}

func printListing(w io.Writer, view services.ListingView) {
	fmt.Fprintln(w, formatTitle("Projects"))
	fmt.Fprintln(w, formatMuted(fmt.Sprintf("All (%d)  Featured (%d)", view.Total, view.FeaturedCount)))
	fmt.Fprintln(w)

	if view.Empty {
		fmt.Fprintln(w, formatWarning("No projects found matching your criteria."))
		fmt.Fprintln(w, formatInfo("Try adjusting your search or filter settings."))
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatMuted(view.Summary()))
		return
	}

	t := newTable(
		column{header: "ID", width: 4},
		column{header: "Title", width: 24},
		column{header: "Technologies", width: 30},
		column{header: "Featured", width: 8},
	)
	for _, p := range view.Projects {
		star := ""
		if p.Featured {
			star = "★"
		}
		t.addRow(p.ID, truncate(p.Title, 32), truncate(strings.Join(p.Technologies, ", "), 40), star)
	}
	fmt.Fprint(w, t.render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatMuted(view.Summary()))
}

func newSearchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Fuzzy find a project and print its card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := rt.cfg.Portfolio.Projects
			if catalog.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatWarning("The catalog is empty"))
				return nil
			}

			idx, err := fuzzyfinder.Find(
				catalog,
				func(i int) string {
					return catalog[i].Title + " " + strings.Join(catalog[i].Technologies, " ")
				},
				fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
					if i == -1 {
						return ""
					}
					return cardText(services.NewCard(catalog[i]))
				}),
			)
			if err != nil {
				return finderResult(cmd.OutOrStdout(), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), styleCard.Render(cardText(services.NewCard(catalog[idx]))))
			return nil
		},
	}
}

// finderResult turns a failed Find into the command's outcome. Ctrl+C and
// Esc are not errors.
func finderResult(w io.Writer, err error) error {
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		fmt.Fprintln(w, formatInfo("Search cancelled."))
		return nil
	}
	return fmt.Errorf("fuzzy finder: %w", err)
}

// cardText is the plain text rendition of a card
func cardText(card services.Card) string {
	var b strings.Builder
	b.WriteString(styleBold.Render(card.Title))
	if card.Featured {
		b.WriteString(" " + styleWarning.Render("★ Featured"))
	}
	b.WriteString("\n")
	if !card.HasImage() {
		b.WriteString(formatMuted(card.Placeholder) + "\n")
	}
	b.WriteString(card.Description + "\n")
	if len(card.Technologies) > 0 {
		b.WriteString("\n" + styleAccent.Render(strings.Join(card.Technologies, " · ")) + "\n")
	}
	for _, action := range card.Actions {
		b.WriteString(fmt.Sprintf("\n%s: %s", action.Label, action.URL))
	}
	return strings.TrimRight(b.String(), "\n")
}
