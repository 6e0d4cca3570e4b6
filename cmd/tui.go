package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse coupons interactively in the terminal",
	Example: `  kcouper tui
  kcouper tui --tag 炸雞 --sort discount-asc`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	registerCouponFilterFlags(tuiCmd.Flags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if err := validateSortKey(); err != nil {
		return err
	}
	if flagJSON {
		// Pipelines occasionally reach for `tui --json`; serve the plain
		// listing instead of refusing.
		return runCoupons(cmd, nil)
	}
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`kcouper tui` requires an interactive terminal",
			"Use `kcouper --tag 蛋撻 --json` in pipelines.",
		)
	}

	model := newLoadingCouponTUIModel(tuiLoadConfig{
		dataDir:     flagData,
		favPath:     flagFavFile,
		initialOpts: sessionlessFilterOptions(),
	})

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(couponTUIModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

func sessionlessFilterOptions() filter.Options {
	return filter.Options{
		Labels:        flagTags,
		FlavorSearch:  flagFlavor,
		FavoritesOnly: flagFavsOnly,
		Sort:          flagSort,
		Limit:         flagLimit,
	}
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}

func loadTUIData(cfg tuiLoadConfig) (*session, error) {
	return openSessionAt(cfg.dataDir, cfg.favPath)
}
