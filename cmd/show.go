package cmd

import (
	"fmt"
	"strconv"

	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show CODE",
	Short: "Show one coupon with its substitution options",
	Example: `  kcouper show 24693
  kcouper show 24693 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return invalidArgsError(
			fmt.Sprintf("coupon code must be a number, got %q", args[0]),
			"kcouper show 24693",
		)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	coupon, ok := sess.dataset.ByCode(code)
	if !ok {
		return notFoundError(
			fmt.Sprintf("no coupon with code %d in the dataset", code),
			"Run `kcouper labels` to browse what is available.",
		)
	}

	if flagJSON {
		return display.PrintCouponsJSON(cmd.OutOrStdout(), []*menu.Coupon{coupon}, sess.favs.Lookup())
	}
	display.PrintCouponDetail(cmd.OutOrStdout(), coupon, sess.favs.Contains(code))
	return nil
}
