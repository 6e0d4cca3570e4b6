package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/spf13/cobra"
)

var flagBestCount int

type bestCouponResult struct {
	Rank          int     `json:"rank"`
	CouponCode    int     `json:"couponCode"`
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"originalPrice"`
	Discount      float64 `json:"discount"`
	Saved         int     `json:"saved"`
	EndDate       string  `json:"endDate"`
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Rank coupons by steepest computed discount",
	Long: "Ranks coupons whose original price could be fully reconstructed from\n" +
		"the single-item menu, steepest 折 first. Coupons with an unknown\n" +
		"discount are left out.",
	Example: `  kcouper best
  kcouper best --tag 炸雞 --count 10
  kcouper best --json`,
	RunE: runBest,
}

func init() {
	rootCmd.AddCommand(bestCmd)

	registerCouponFilterFlags(bestCmd.Flags())
	bestCmd.Flags().IntVar(&flagBestCount, "count", 5, "Number of coupons to rank (1-50)")
}

func runBest(cmd *cobra.Command, _ []string) error {
	if err := validateSortKey(); err != nil {
		return err
	}
	if flagBestCount < 1 || flagBestCount > 50 {
		return invalidArgsError(
			"--count must be between 1 and 50",
			"kcouper best --count 10",
		)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	opts := sess.filterOptions()
	opts.Sort = ""
	opts.Limit = 0
	coupons := filter.Apply(sess.dataset.Coupons, opts, sess.catalog, sess.favs.Lookup())

	ranked := make([]*menu.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if coupon.HasDiscount() {
			ranked = append(ranked, coupon)
		}
	}
	if len(ranked) == 0 {
		return notFoundError(
			"no coupons with a computable discount match your filters",
			"Relax filters like --tag, or check the dataset with `kcouper labels`.",
		)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Discount != ranked[j].Discount {
			return ranked[i].Discount < ranked[j].Discount
		}
		savedI := ranked[i].OriginalPrice - ranked[i].Price
		savedJ := ranked[j].OriginalPrice - ranked[j].Price
		if savedI != savedJ {
			return savedI > savedJ
		}
		return ranked[i].CouponCode < ranked[j].CouponCode
	})
	if len(ranked) > flagBestCount {
		ranked = ranked[:flagBestCount]
	}

	results := make([]bestCouponResult, 0, len(ranked))
	for i, coupon := range ranked {
		results = append(results, bestCouponResult{
			Rank:          i + 1,
			CouponCode:    coupon.CouponCode,
			Name:          coupon.Name,
			Price:         coupon.Price,
			OriginalPrice: coupon.OriginalPrice,
			Discount:      coupon.Discount,
			Saved:         coupon.OriginalPrice - coupon.Price,
			EndDate:       coupon.EndDate,
		})
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nBest discounts (%d coupon(s))\n\n", len(results))
	for _, r := range results {
		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%d. #%d %s\n   %s | $%d instead of $%d | save $%d | until %s\n\n",
			r.Rank,
			r.CouponCode,
			r.Name,
			display.FormatDiscount(r.Discount),
			r.Price,
			r.OriginalPrice,
			r.Saved,
			r.EndDate,
		)
	}
	return nil
}
