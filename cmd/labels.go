package cmd

import (
	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List filter labels and how many coupons each matches",
	Example: `  kcouper labels
  kcouper labels --flavor-search --json`,
	RunE: runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)
	labelsCmd.Flags().BoolVar(&flagFlavor, "flavor-search", false, "Count flavor matches too")
}

func runLabels(cmd *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	counts := filter.LabelCounts(sess.dataset.Coupons, sess.catalog, flagFlavor)

	if flagJSON {
		return display.PrintLabelsJSON(cmd.OutOrStdout(), counts)
	}
	display.PrintLabels(cmd.OutOrStdout(), sess.catalog.Labels(), counts)
	return nil
}
