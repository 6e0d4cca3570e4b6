package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chiawei-lin/kcouper/internal/menu"
)

// Styles for terminal output.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	favTag        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // yellow
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))            // green
	discountStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	strikeStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	cyanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// ItemJSON is the JSON output shape for one coupon item.
type ItemJSON struct {
	Name    string   `json:"name"`
	Count   int      `json:"count"`
	Flavors []string `json:"flavors,omitempty"`
}

// CouponJSON is the JSON output shape for a coupon. Discount carries the 折
// value; menu.NoDiscount means no discount is known.
type CouponJSON struct {
	Name          string     `json:"name"`
	CouponCode    int        `json:"couponCode"`
	ProductCode   string     `json:"productCode"`
	Price         int        `json:"price"`
	OriginalPrice int        `json:"originalPrice"`
	Discount      float64    `json:"discount"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	Items         []ItemJSON `json:"items"`
	Favorite      bool       `json:"favorite"`
}

// PrintCoupons renders a list of coupons to the writer.
func PrintCoupons(w io.Writer, coupons []*menu.Coupon, favs map[int]bool) {
	fmt.Fprintf(w, "\n%s — %s\n\n",
		headerStyle.Render("KFC Coupons"),
		cyanStyle.Render(fmt.Sprintf("%d coupons", len(coupons))),
	)

	for _, coupon := range coupons {
		printCoupon(w, coupon, favs[coupon.CouponCode])
		fmt.Fprintln(w)
	}
}

// PrintCouponsJSON renders coupons as JSON.
func PrintCouponsJSON(w io.Writer, coupons []*menu.Coupon, favs map[int]bool) error {
	out := make([]CouponJSON, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, toCouponJSON(coupon, favs[coupon.CouponCode]))
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintCouponDetail renders one coupon with its substitution options.
func PrintCouponDetail(w io.Writer, coupon *menu.Coupon, favorite bool) {
	fmt.Fprintln(w)
	printCoupon(w, coupon, favorite)

	fmt.Fprintf(w, "\n  %s\n", titleStyle.Render("餐點可以更換的品項"))
	for _, item := range coupon.Items {
		fmt.Fprintf(w, "  %s x %d\n", item.Name, item.Count)
		if len(item.Flavors) == 0 {
			fmt.Fprintf(w, "    %s\n", dimStyle.Render("沒有可以更換的品項"))
			continue
		}
		for _, flavor := range item.Flavors {
			fmt.Fprintf(w, "    %s %s\n", flavor.Name, priceStyle.Render(fmt.Sprintf("+$%d", flavor.AdditionPrice)))
		}
	}
	fmt.Fprintln(w)
}

// PrintLabels renders filter labels and their match counts. Labels are shown
// in catalog insertion order; counts come from the filter engine.
func PrintLabels(w io.Writer, labels []string, counts map[string]int) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("Filter labels:"))
	for _, label := range labels {
		fmt.Fprintf(w, "  %s: %d coupons\n", cyanStyle.Render(label), counts[label])
	}
	fmt.Fprintln(w)
}

// PrintLabelsJSON renders label counts as JSON.
func PrintLabelsJSON(w io.Writer, counts map[string]int) error {
	return json.NewEncoder(w).Encode(counts)
}

// PrintFavorites renders the starred codes with their coupon names when the
// dataset still carries them.
func PrintFavorites(w io.Writer, codes []int, ds *menu.Dataset) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render(fmt.Sprintf("Favorites (%d):", len(codes))))
	for _, code := range codes {
		if coupon, ok := ds.ByCode(code); ok {
			fmt.Fprintf(w, "  %s  %s\n", cyanStyle.Render(fmt.Sprintf("#%d", code)), coupon.Name)
		} else {
			fmt.Fprintf(w, "  %s  %s\n", cyanStyle.Render(fmt.Sprintf("#%d", code)), dimStyle.Render("(no longer in dataset)"))
		}
	}
	fmt.Fprintln(w)
}

// PrintDataContext prints a dim line showing the dataset vintage.
func PrintDataContext(w io.Writer, ds *menu.Dataset) {
	fmt.Fprintf(w, "%s\n\n",
		dimStyle.Render(fmt.Sprintf("Dataset: %d coupons, updated %s", len(ds.Coupons), ds.LastUpdate)),
	)
}

// FormatDiscount renders a discount value in the 折 convention, or "" when no
// discount is known.
func FormatDiscount(discount float64) string {
	if discount == 0 || discount == menu.NoDiscount {
		return ""
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", discount), ".0") + "折"
}

func printCoupon(w io.Writer, coupon *menu.Coupon, favorite bool) {
	tag := ""
	if favorite {
		tag = favTag.Render("★") + " "
	}

	title := fmt.Sprintf("%s%s", tag, titleStyle.Render(coupon.Name))
	price := priceStyle.Render(fmt.Sprintf("$%d", coupon.Price))
	if badge := FormatDiscount(coupon.Discount); badge != "" {
		price += " " + discountStyle.Render(badge)
		price += " " + strikeStyle.Render(fmt.Sprintf("$%d", coupon.OriginalPrice))
	}
	fmt.Fprintf(w, "  %s  %s\n", title, price)

	for _, item := range coupon.Items {
		fmt.Fprintf(w, "    %s x %d\n", item.Name, item.Count)
	}

	meta := []string{
		fmt.Sprintf("%s ~ %s", coupon.StartDate, coupon.EndDate),
		fmt.Sprintf("code %d", coupon.CouponCode),
		coupon.ProductCode,
	}
	fmt.Fprintf(w, "    %s\n", dimStyle.Render(strings.Join(meta, " | ")))
}

func toCouponJSON(coupon *menu.Coupon, favorite bool) CouponJSON {
	items := make([]ItemJSON, 0, len(coupon.Items))
	for _, item := range coupon.Items {
		var flavors []string
		for _, f := range item.Flavors {
			flavors = append(flavors, f.Name)
		}
		items = append(items, ItemJSON{Name: item.Name, Count: item.Count, Flavors: flavors})
	}

	return CouponJSON{
		Name:          coupon.Name,
		CouponCode:    coupon.CouponCode,
		ProductCode:   coupon.ProductCode,
		Price:         coupon.Price,
		OriginalPrice: coupon.OriginalPrice,
		Discount:      coupon.Discount,
		StartDate:     coupon.StartDate,
		EndDate:       coupon.EndDate,
		Items:         items,
		Favorite:      favorite,
	}
}
