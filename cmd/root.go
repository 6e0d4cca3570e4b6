package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chiawei-lin/kcouper/internal/catalog"
	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/favorites"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/chiawei-lin/kcouper/internal/menu"
	"github.com/chiawei-lin/kcouper/internal/pricing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagData     string
	flagFavFile  string
	flagJSON     bool
	flagTags     []string
	flagFlavor   bool
	flagFavsOnly bool
	flagSort     string
	flagLimit    int
)

var rootCmd = &cobra.Command{
	Use:   "kcouper",
	Short: "Browse KFC Taiwan coupons from the local dataset",
	Long: "CLI tool that browses the scraped KFC Taiwan coupon dataset: filter\n" +
		"coupons by item tags, sort them, star favorites, and inspect computed\n" +
		"original prices and 折 discounts.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -tag 蛋撻, tag=蛋撻, --tga 蛋撻).",
	Example: `  kcouper --tag 蛋撻
  kcouper --tag 炸雞 --tag 脆薯 --flavor-search
  kcouper --sort discount-asc --limit 10
  kcouper labels
  kcouper show 24693
  kcouper fav 24693`,
	RunE: runCoupons,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagData, "data", "data", "Directory holding coupon.json and single.json")
	pf.StringVar(&flagFavFile, "favorites-file", "", "Favorites file (default: user config dir)")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")

	registerCouponFilterFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	flagData = "data"
	flagFavFile = ""
	flagJSON = false
	flagTags = nil
	flagFlavor = false
	flagFavsOnly = false
	flagSort = ""
	flagLimit = 0
	flagBestCount = 5
}

func registerCouponFilterFlags(f *pflag.FlagSet) {
	f.StringArrayVarP(&flagTags, "tag", "t", nil, "Filter by item tag; repeatable, all tags must match")
	f.BoolVar(&flagFlavor, "flavor-search", false, "Match tags against substitution flavors too")
	f.BoolVar(&flagFavsOnly, "favorites", false, "Show only starred coupons")
	f.StringVar(&flagSort, "sort", "", "Sort by coupon_code, price, end_date, or discount (-asc/-desc)")
	f.IntVarP(&flagLimit, "limit", "n", 0, "Limit number of results (0 = all)")
}

func validateSortKey() error {
	if filter.ValidSortKey(flagSort) {
		return nil
	}
	return invalidArgsError(
		"invalid value for --sort (use coupon_code, price, end_date, or discount with -asc/-desc)",
		"kcouper --sort price-asc",
		"kcouper --sort discount-asc",
	)
}

// session bundles the startup artifacts every command needs: the immutable
// dataset with derived prices, the frozen label catalog, and the favorite set.
type session struct {
	dataset *menu.Dataset
	table   menu.PriceTable
	catalog *catalog.Catalog
	favs    *favorites.Set
}

func openSession() (*session, error) {
	return openSessionAt(flagData, flagFavFile)
}

func openSessionAt(dataDir, favPath string) (*session, error) {
	ds, table, err := menu.Load(dataDir)
	if err != nil {
		return nil, dataError("loading dataset", err)
	}

	cat := catalog.Build(catalog.Seed(), ds.Coupons)
	pricing.NewAnnotator(pricing.NewResolver(table)).AnnotateAll(ds)

	if favPath == "" {
		favPath, err = favorites.DefaultPath()
		if err != nil {
			return nil, dataError("locating favorites", err)
		}
	}
	favs, err := favorites.Load(favPath)
	if err != nil {
		return nil, dataError("loading favorites", err)
	}

	return &session{dataset: ds, table: table, catalog: cat, favs: favs}, nil
}

func (s *session) filterOptions() filter.Options {
	return filter.Options{
		Labels:        flagTags,
		FlavorSearch:  flagFlavor,
		FavoritesOnly: flagFavsOnly,
		Sort:          flagSort,
		Limit:         flagLimit,
	}
}

func runCoupons(cmd *cobra.Command, _ []string) error {
	if err := validateSortKey(); err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	coupons := filter.Apply(sess.dataset.Coupons, sess.filterOptions(), sess.catalog, sess.favs.Lookup())
	if len(coupons) == 0 {
		return notFoundError(
			"no coupons match your filters",
			"Relax filters like --tag/--favorites, or enable --flavor-search.",
		)
	}

	if flagJSON {
		return display.PrintCouponsJSON(cmd.OutOrStdout(), coupons, sess.favs.Lookup())
	}
	display.PrintDataContext(cmd.OutOrStdout(), sess.dataset)
	display.PrintCoupons(cmd.OutOrStdout(), coupons, sess.favs.Lookup())
	return nil
}
