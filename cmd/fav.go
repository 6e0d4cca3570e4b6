package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/spf13/cobra"
)

var favCmd = &cobra.Command{
	Use:   "fav [CODE]",
	Short: "Toggle a coupon as favorite, or list favorites",
	Long: "With a coupon code, toggles its favorite state and persists the set\n" +
		"immediately. Without arguments, lists the starred coupons.",
	Example: `  kcouper fav 24693
  kcouper fav
  kcouper fav --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFav,
}

func init() {
	rootCmd.AddCommand(favCmd)
}

type favToggleJSON struct {
	CouponCode int  `json:"couponCode"`
	Favorite   bool `json:"favorite"`
}

func runFav(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if flagJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(sess.favs.Codes())
		}
		display.PrintFavorites(cmd.OutOrStdout(), sess.favs.Codes(), sess.dataset)
		return nil
	}

	code, err := strconv.Atoi(args[0])
	if err != nil {
		return invalidArgsError(
			fmt.Sprintf("coupon code must be a number, got %q", args[0]),
			"kcouper fav 24693",
		)
	}
	if _, ok := sess.dataset.ByCode(code); !ok {
		return notFoundError(
			fmt.Sprintf("no coupon with code %d in the dataset", code),
			"Favorites can only reference coupons in the current dataset.",
		)
	}

	starred, err := sess.favs.Toggle(code)
	if err != nil {
		return dataError("saving favorites", err)
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(favToggleJSON{CouponCode: code, Favorite: starred})
	}
	if starred {
		fmt.Fprintf(cmd.OutOrStdout(), "★ coupon %d added to favorites\n", code)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "coupon %d removed from favorites\n", code)
	}
	return nil
}
