package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pharmindex/repurpose/internal/application/search"
)

// newSearchCmd builds the one-shot lookup command.  It runs the full
// classification and enrichment chain without touching the database.
func newSearchCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Classify and enrich a query, printing the record as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providers := app.buildProviders(nil)
			dict, classifier, enricher := app.buildPipeline(providers)
			svc := search.NewService(classifier, enricher, dict, nil, nil, nil, nil, app.log)

			result, err := svc.Search(cmd.Context(), &search.SearchInput{
				Query: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
