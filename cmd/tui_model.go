package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chiawei-lin/kcouper/internal/display"
	"github.com/chiawei-lin/kcouper/internal/filter"
	"github.com/chiawei-lin/kcouper/internal/menu"
)

const (
	minTUIWidth  = 92
	minTUIHeight = 24

	orderLink = "https://www.kfcclub.com.tw/meal"
)

var (
	tuiHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiFavStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	tuiDiscountStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tuiMutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tuiSectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

const favoritesGroup = "★ Favorites"

type tuiLoadConfig struct {
	dataDir     string
	favPath     string
	initialOpts filter.Options
}

type tuiDataLoadedMsg struct {
	sess        *session
	initialOpts filter.Options
}

type tuiDataLoadErrMsg struct {
	err error
}

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
)

type tuiGroupItem struct {
	name    string
	count   int
	ordinal int
}

func (g tuiGroupItem) FilterValue() string { return strings.ToLower(g.name) }
func (g tuiGroupItem) Title() string       { return fmt.Sprintf("%d. %s", g.ordinal, g.name) }
func (g tuiGroupItem) Description() string {
	return fmt.Sprintf("Section header • %d coupons", g.count)
}

type tuiCouponItem struct {
	coupon      *menu.Coupon
	group       string
	title       string
	description string
	filterValue string
}

func (c tuiCouponItem) FilterValue() string { return c.filterValue }
func (c tuiCouponItem) Title() string       { return c.title }
func (c tuiCouponItem) Description() string { return c.description }

type couponTUIModel struct {
	loading  bool
	spinner  spinner.Model
	loadCmd  tea.Cmd
	fatalErr error

	sess *session

	opts        filter.Options
	initialOpts filter.Options

	sortChoices  []string
	sortIndex    int
	labelChoices []string
	labelIndex   int
	limitChoices []int
	limitIndex   int

	list   list.Model
	detail viewport.Model

	focus      tuiFocus
	showHelp   bool
	selectedID string

	groupStarts    []int
	visibleCoupons int

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newLoadingCouponTUIModel(cfg tuiLoadConfig) couponTUIModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Coupons"
	lst.SetStatusBarItemName("item", "items")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("b", "pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return couponTUIModel{
		loading:     true,
		spinner:     spin,
		loadCmd:     loadTUIDataCmd(cfg),
		initialOpts: cfg.initialOpts,
		opts:        cfg.initialOpts,
		list:        lst,
		detail:      detail,
		focus:       tuiFocusList,
	}
}

func loadTUIDataCmd(cfg tuiLoadConfig) tea.Cmd {
	return func() tea.Msg {
		sess, err := loadTUIData(cfg)
		if err != nil {
			return tuiDataLoadErrMsg{err: err}
		}
		return tuiDataLoadedMsg{
			sess:        sess,
			initialOpts: cfg.initialOpts,
		}
	}
}

func (m couponTUIModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd)
}

func (m couponTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tuiDataLoadedMsg:
		m.loading = false
		m.sess = msg.sess
		m.initialOpts = canonicalizeTUIOptions(msg.initialOpts)
		m.opts = m.initialOpts
		m.initializeInlineChoices()
		m.applyCurrentFilters(true)
		m.resize()
		return m, nil

	case tuiDataLoadErrMsg:
		m.loading = false
		m.fatalErr = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.loading || m.sess == nil {
		return m, nil
	}

	if isKey {
		filtering := m.list.FilterState() == list.Filtering
		key := keyMsg.String()

		switch key {
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "tab":
			if !filtering {
				if m.focus == tuiFocusList {
					m.focus = tuiFocusDetail
				} else {
					m.focus = tuiFocusList
				}
				return m, nil
			}
		case "esc":
			if m.focus == tuiFocusDetail && !filtering {
				m.focus = tuiFocusList
				return m, nil
			}
		case "?":
			if !filtering {
				m.showHelp = !m.showHelp
				m.resize()
				return m, nil
			}
		case "s":
			if !filtering {
				m.cycleSortKey()
				return m, nil
			}
		case "t":
			if !filtering {
				m.cycleLabel()
				return m, nil
			}
		case "v":
			if !filtering {
				m.opts.FavoritesOnly = !m.opts.FavoritesOnly
				m.applyCurrentFilters(false)
				return m, nil
			}
		case "o":
			if !filtering {
				m.opts.FlavorSearch = !m.opts.FlavorSearch
				m.applyCurrentFilters(false)
				return m, nil
			}
		case "l":
			if !filtering {
				m.cycleLimit()
				return m, nil
			}
		case "x":
			if !filtering {
				return m, m.toggleSelectedFavorite()
			}
		case "r":
			if !filtering {
				m.opts = m.initialOpts
				m.syncChoiceIndexesFromOptions()
				m.applyCurrentFilters(false)
				return m, nil
			}
		case "]":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				m.jumpSection(1)
				return m, nil
			}
		case "[":
			if !filtering {
				if m.list.IsFiltered() {
					return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
				}
				m.jumpSection(-1)
				return m, nil
			}
		}

		if !filtering && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if m.list.IsFiltered() {
				return m, m.list.NewStatusMessage("Clear fuzzy filter before section jumps.")
			}
			m.jumpToSection(int(key[0] - '1'))
			return m, nil
		}

		if m.focus == tuiFocusDetail && !filtering {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

func (m couponTUIModel) View() string {
	if m.loading {
		return m.loadingView()
	}
	if m.sess == nil {
		return tuiMetaStyle.Render("Loading failed; exiting...")
	}
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the two-pane coupon explorer.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m couponTUIModel) loadingView() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	skeletonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	lines := []string{
		tuiHeaderStyle.Render("kcouper tui"),
		tuiMetaStyle.Render("Preparing interactive interface..."),
		"",
		fmt.Sprintf("%s Loading coupon dataset and price table", m.spinner.View()),
		tuiHintStyle.Render("Tip: press q to cancel."),
		"",
		skeletonStyle.Render("┌──────────────────────────────┬─────────────────────────────────────────┐"),
		skeletonStyle.Render("│  Loading coupon list...      │  Loading detail panel...               │"),
		skeletonStyle.Render("│  • filter labels             │  • price and discount annotations      │"),
		skeletonStyle.Render("│  • sections                  │  • substitution flavors                │"),
		skeletonStyle.Render("│  • favorites                 │  • scroll viewport                     │"),
		skeletonStyle.Render("└──────────────────────────────┴─────────────────────────────────────────┘"),
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *couponTUIModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	if m.loading {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 3
	footerH := 2
	if m.showHelp {
		footerH = 7
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	listWidth := maxInt(40, int(float64(m.width)*0.43))
	if listWidth > m.width-42 {
		listWidth = m.width / 2
	}
	detailWidth := m.width - listWidth - 1
	if detailWidth < 36 {
		detailWidth = 36
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	listInnerWidth := maxInt(24, listWidth-4)
	detailInnerWidth := maxInt(24, detailWidth-4)
	panelInnerHeight := maxInt(6, m.bodyHeight-2)

	m.list.SetSize(listInnerWidth, panelInnerHeight)
	m.detail.Width = detailInnerWidth
	m.detail.Height = panelInnerHeight
	m.refreshDetail(false)
}

func (m couponTUIModel) headerView() string {
	focus := "list"
	if m.focus == tuiFocusDetail {
		focus = "detail"
	}

	top := fmt.Sprintf("kcouper tui  |  dataset updated %s", m.sess.dataset.LastUpdate)
	bottom := fmt.Sprintf(
		"coupons: %d visible / %d total  |  filters: %s  |  focus: %s",
		m.visibleCoupons, len(m.sess.dataset.Coupons), m.activeFilterSummary(), focus,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(tuiHeaderStyle.Render(top) + "\n" + tuiMetaStyle.Render(bottom))
}

func (m couponTUIModel) bodyView() string {
	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	detailBorder := listBorder

	if m.focus == tuiFocusList {
		listBorder = listBorder.BorderForeground(lipgloss.Color("86"))
	} else {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("86"))
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m couponTUIModel) footerView() string {
	base := "Tab switch pane • / fuzzy filter • t tag • s sort • v favorites • o flavor search • x star • l limit • r reset • [/] sections • q quit"
	if m.focus == tuiFocusDetail {
		base = "Detail: j/k or ↑/↓ scroll • u/d half-page • b/f page • esc list • ? help • q quit"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"list pane: ↑/↓ or j/k move • / fuzzy filter • t cycle tag • s cycle sort • l cycle limit",
		"toggles: v favorites-only • o flavor search • x star/unstar selected coupon (saved immediately)",
		"group jumps: ] next section • [ previous section • 1..9 jump to numbered section header",
		"global: tab switch pane • esc list • r reset inline options • ? toggle help • q quit • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

func (m *couponTUIModel) initializeInlineChoices() {
	m.opts = canonicalizeTUIOptions(m.opts)

	m.sortChoices = append([]string{""}, filter.SortKeys...)
	m.labelChoices = buildLabelChoices(m.sess, m.opts.Labels)
	m.limitChoices = buildLimitChoices(m.opts.Limit)

	m.syncChoiceIndexesFromOptions()
}

func (m *couponTUIModel) syncChoiceIndexesFromOptions() {
	m.sortIndex = indexOfString(m.sortChoices, filter.NormalizeSortKey(m.opts.Sort))
	if m.sortIndex < 0 {
		m.sortIndex = 0
	}
	m.opts.Sort = m.sortChoices[m.sortIndex]

	// Label cycling drives a single tag; a multi-tag CLI start keeps its
	// tags until the first cycle replaces them.
	m.labelIndex = 0
	if len(m.opts.Labels) == 1 {
		if idx := indexOfString(m.labelChoices, m.opts.Labels[0]); idx >= 0 {
			m.labelIndex = idx
		}
	}

	m.limitIndex = indexOfInt(m.limitChoices, m.opts.Limit)
	if m.limitIndex < 0 {
		m.limitIndex = 0
		m.opts.Limit = m.limitChoices[m.limitIndex]
	}
}

func (m *couponTUIModel) cycleSortKey() {
	if len(m.sortChoices) == 0 {
		return
	}
	m.sortIndex = (m.sortIndex + 1) % len(m.sortChoices)
	m.opts.Sort = m.sortChoices[m.sortIndex]
	m.applyCurrentFilters(false)
}

func (m *couponTUIModel) cycleLabel() {
	if len(m.labelChoices) == 0 {
		return
	}
	m.labelIndex = (m.labelIndex + 1) % len(m.labelChoices)
	if choice := m.labelChoices[m.labelIndex]; choice == "" {
		m.opts.Labels = nil
	} else {
		m.opts.Labels = []string{choice}
	}
	m.applyCurrentFilters(false)
}

func (m *couponTUIModel) cycleLimit() {
	if len(m.limitChoices) == 0 {
		return
	}
	m.limitIndex = (m.limitIndex + 1) % len(m.limitChoices)
	m.opts.Limit = m.limitChoices[m.limitIndex]
	m.applyCurrentFilters(false)
}

func (m *couponTUIModel) toggleSelectedFavorite() tea.Cmd {
	item, ok := m.list.SelectedItem().(tuiCouponItem)
	if !ok {
		return m.list.NewStatusMessage("Select a coupon to star it.")
	}

	code := item.coupon.CouponCode
	starred, err := m.sess.favs.Toggle(code)
	if err != nil {
		return m.list.NewStatusMessage(fmt.Sprintf("Saving favorites failed: %v", err))
	}

	m.applyCurrentFilters(false)
	if starred {
		return m.list.NewStatusMessage(fmt.Sprintf("★ coupon %d starred", code))
	}
	return m.list.NewStatusMessage(fmt.Sprintf("coupon %d unstarred", code))
}

func (m couponTUIModel) activeFilterSummary() string {
	parts := []string{}
	if len(m.opts.Labels) > 0 {
		parts = append(parts, "tags:"+strings.Join(m.opts.Labels, "+"))
	}
	if m.opts.FlavorSearch {
		parts = append(parts, "flavor-search")
	}
	if m.opts.FavoritesOnly {
		parts = append(parts, "favorites")
	}
	if m.opts.Sort != "" {
		parts = append(parts, "sort:"+m.opts.Sort)
	}
	if m.opts.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit:%d", m.opts.Limit))
	}
	if fuzzy := strings.TrimSpace(m.list.FilterValue()); fuzzy != "" {
		parts = append(parts, "fuzzy:"+fuzzy)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (m *couponTUIModel) applyCurrentFilters(resetSelection bool) {
	currentID := m.selectedID
	favs := m.sess.favs.Lookup()
	filtered := filter.Apply(m.sess.dataset.Coupons, m.opts, m.sess.catalog, favs)
	m.visibleCoupons = len(filtered)

	items, starts := m.buildGroupedListItems(filtered, favs)
	m.groupStarts = starts

	m.list.Title = fmt.Sprintf("Coupons • %d visible", m.visibleCoupons)
	m.list.SetItems(items)

	target := -1
	if !resetSelection && currentID != "" {
		target = findItemIndexByID(items, currentID)
	}
	if target < 0 {
		target = firstCouponItemIndex(items)
	}
	if target < 0 && len(items) > 0 {
		target = 0
	}
	if target >= 0 {
		m.list.Select(target)
	}

	m.refreshDetail(true)
}

func (m *couponTUIModel) refreshDetail(resetScroll bool) {
	var content string
	nextID := ""

	if selected := m.list.SelectedItem(); selected != nil {
		switch item := selected.(type) {
		case tuiCouponItem:
			content = renderCouponDetailContent(item.coupon, m.sess.favs.Contains(item.coupon.CouponCode), m.detail.Width)
			nextID = stableIDForCoupon(item.coupon)
		case tuiGroupItem:
			content = m.renderGroupDetail(item)
			nextID = stableIDForGroup(item.name)
		}
	}
	if content == "" {
		content = "No coupons match the current inline filters.\n\nTry pressing r to reset filters."
	}

	if resetScroll || nextID != m.selectedID {
		m.detail.GotoTop()
	}
	m.selectedID = nextID
	m.detail.SetContent(content)
}

func (m couponTUIModel) renderGroupDetail(group tuiGroupItem) string {
	preview := m.groupPreviewTitles(group.name, 5)

	lines := []string{
		tuiSectionStyle.Render(fmt.Sprintf("Section %d: %s", group.ordinal, group.name)),
		tuiMetaStyle.Render(fmt.Sprintf("%d coupons in this section", group.count)),
		"",
		tuiMetaStyle.Render("Jump keys:"),
		"- `]` next section, `[` previous section",
		"- `1..9` jump directly to section number",
	}
	if len(preview) > 0 {
		lines = append(lines, "")
		lines = append(lines, tuiMetaStyle.Render("Preview:"))
		for _, title := range preview {
			lines = append(lines, "• "+title)
		}
	}

	return strings.Join(lines, "\n")
}

func (m couponTUIModel) groupPreviewTitles(group string, max int) []string {
	out := make([]string, 0, max)
	for _, item := range m.list.Items() {
		coupon, ok := item.(tuiCouponItem)
		if !ok || coupon.group != group {
			continue
		}
		out = append(out, coupon.title)
		if len(out) >= max {
			break
		}
	}
	return out
}

func (m *couponTUIModel) jumpToSection(index int) {
	if index < 0 || index >= len(m.groupStarts) {
		return
	}

	target := firstCouponIndexFrom(m.list.Items(), m.groupStarts[index])
	if target < 0 {
		target = m.groupStarts[index]
	}
	m.list.Select(target)
	m.refreshDetail(true)
}

func (m *couponTUIModel) jumpSection(delta int) {
	if len(m.groupStarts) == 0 {
		return
	}

	current := m.currentSectionIndex()
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = len(m.groupStarts) - 1
	}
	if next >= len(m.groupStarts) {
		next = 0
	}
	m.jumpToSection(next)
}

func (m couponTUIModel) currentSectionIndex() int {
	if len(m.groupStarts) == 0 {
		return -1
	}
	cursor := m.list.GlobalIndex()
	current := 0
	for i, start := range m.groupStarts {
		if start <= cursor {
			current = i
			continue
		}
		break
	}
	return current
}

func (m couponTUIModel) buildGroupedListItems(coupons []*menu.Coupon, favs map[int]bool) (items []list.Item, starts []int) {
	if len(coupons) == 0 {
		return nil, nil
	}

	groups := map[string][]*menu.Coupon{}
	for _, coupon := range coupons {
		group := m.couponGroupLabel(coupon, favs)
		groups[group] = append(groups[group], coupon)
	}

	type groupMeta struct {
		name  string
		count int
	}

	metas := make([]groupMeta, 0, len(groups))
	for name, coupons := range groups {
		metas = append(metas, groupMeta{name: name, count: len(coupons)})
	}
	sort.Slice(metas, func(i, j int) bool {
		if metas[i].name == favoritesGroup && metas[j].name != favoritesGroup {
			return true
		}
		if metas[j].name == favoritesGroup && metas[i].name != favoritesGroup {
			return false
		}
		if metas[i].count != metas[j].count {
			return metas[i].count > metas[j].count
		}
		return metas[i].name < metas[j].name
	})

	items = make([]list.Item, 0, len(coupons)+len(metas))
	starts = make([]int, 0, len(metas))
	for idx, meta := range metas {
		starts = append(starts, len(items))

		items = append(items, tuiGroupItem{
			name:    meta.name,
			count:   meta.count,
			ordinal: idx + 1,
		})
		for _, coupon := range groups[meta.name] {
			items = append(items, buildTUICouponItem(coupon, meta.name, favs[coupon.CouponCode]))
		}
	}

	return items, starts
}

// couponGroupLabel buckets a coupon under the favorites section, the first
// catalog label that matches it, or a catch-all.
func (m couponTUIModel) couponGroupLabel(coupon *menu.Coupon, favs map[int]bool) string {
	if favs[coupon.CouponCode] {
		return favoritesGroup
	}
	for _, label := range m.sess.catalog.Labels() {
		opts := filter.Options{Labels: []string{label}}
		if filter.Visible(coupon, opts, m.sess.catalog, nil) {
			return label
		}
	}
	return "其他"
}

func buildTUICouponItem(coupon *menu.Coupon, group string, favorite bool) tuiCouponItem {
	title := fmt.Sprintf("#%d %s", coupon.CouponCode, coupon.Name)
	if favorite {
		title = "★ " + title
	}

	descParts := []string{fmt.Sprintf("$%d", coupon.Price)}
	if badge := display.FormatDiscount(coupon.Discount); badge != "" {
		descParts = append(descParts, badge)
	}
	descParts = append(descParts, "ends "+coupon.EndDate)

	filterTokens := []string{
		coupon.Name,
		coupon.ProductCode,
		fmt.Sprintf("%d", coupon.CouponCode),
		group,
	}
	for _, item := range coupon.Items {
		filterTokens = append(filterTokens, item.Name)
		for _, flavor := range item.Flavors {
			filterTokens = append(filterTokens, flavor.Name)
		}
	}

	return tuiCouponItem{
		coupon:      coupon,
		group:       group,
		title:       title,
		description: strings.Join(descParts, "  •  "),
		filterValue: strings.ToLower(strings.Join(filterTokens, " ")),
	}
}

func renderCouponDetailContent(coupon *menu.Coupon, favorite bool, width int) string {
	maxWidth := maxInt(24, width)

	title := fmt.Sprintf("#%d %s", coupon.CouponCode, coupon.Name)
	lines := []string{
		tuiValueStyle.Render(wrapText(title, maxWidth)),
	}

	metaBits := []string{}
	if favorite {
		metaBits = append(metaBits, tuiFavStyle.Render("★ favorite"))
	}
	if badge := display.FormatDiscount(coupon.Discount); badge != "" {
		metaBits = append(metaBits, tuiDiscountStyle.Render(badge))
	}
	if len(metaBits) > 0 {
		lines = append(lines, tuiMetaStyle.Render(strings.Join(metaBits, "  |  ")))
	}

	lines = append(lines, "")
	price := fmt.Sprintf("$%d", coupon.Price)
	if coupon.HasDiscount() {
		price += fmt.Sprintf("  (原價 $%d)", coupon.OriginalPrice)
	} else if coupon.OriginalPrice > 0 {
		price += fmt.Sprintf("  (品項合計 $%d)", coupon.OriginalPrice)
	}
	lines = append(lines, fmt.Sprintf("%s %s", tuiMetaStyle.Render("Price:"), tuiValueStyle.Render(price)))
	lines = append(lines, fmt.Sprintf("%s %s ~ %s", tuiMetaStyle.Render("Valid:"), coupon.StartDate, coupon.EndDate))
	lines = append(lines, "")
	lines = append(lines, tuiMetaStyle.Render("餐點內容:"))
	for _, item := range coupon.Items {
		lines = append(lines, fmt.Sprintf("%s x %d", item.Name, item.Count))
		if len(item.Flavors) == 0 {
			lines = append(lines, tuiMutedStyle.Render("  沒有可以更換的品項"))
			continue
		}
		for _, flavor := range item.Flavors {
			lines = append(lines, tuiMutedStyle.Render(fmt.Sprintf("  可換 %s +$%d", flavor.Name, flavor.AdditionPrice)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, tuiMutedStyle.Render("線上點餐:"))
	lines = append(lines, tuiMutedStyle.Render(wrapText(fmt.Sprintf("%s/%s", orderLink, coupon.ProductCode), maxWidth)))

	return strings.Join(lines, "\n")
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func canonicalizeTUIOptions(opts filter.Options) filter.Options {
	opts.Sort = filter.NormalizeSortKey(opts.Sort)
	labels := make([]string, 0, len(opts.Labels))
	for _, label := range opts.Labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	opts.Labels = labels
	return opts
}

func buildLabelChoices(sess *session, current []string) []string {
	choices := append([]string{""}, sess.catalog.Labels()...)
	if len(current) == 1 && indexOfString(choices, current[0]) < 0 {
		choices = append(choices, current[0])
	}
	return choices
}

func buildLimitChoices(current int) []int {
	values := []int{0, 10, 25, 50, 100}
	if current > 0 && indexOfInt(values, current) < 0 {
		values = append(values, current)
		sort.Ints(values)
	}
	return values
}

func indexOfString(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}

func indexOfInt(values []int, target int) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}

func findItemIndexByID(items []list.Item, stableID string) int {
	for i, item := range items {
		if stableIDForItem(item) == stableID {
			return i
		}
	}
	return -1
}

func firstCouponItemIndex(items []list.Item) int {
	return firstCouponIndexFrom(items, 0)
}

func firstCouponIndexFrom(items []list.Item, start int) int {
	for i := start; i < len(items); i++ {
		if _, ok := items[i].(tuiCouponItem); ok {
			return i
		}
	}
	return -1
}

func stableIDForItem(item list.Item) string {
	switch value := item.(type) {
	case tuiCouponItem:
		return stableIDForCoupon(value.coupon)
	case tuiGroupItem:
		return stableIDForGroup(value.name)
	default:
		return ""
	}
}

func stableIDForCoupon(coupon *menu.Coupon) string {
	return fmt.Sprintf("coupon:%d", coupon.CouponCode)
}

func stableIDForGroup(group string) string {
	return "group:" + strings.ToLower(strings.TrimSpace(group))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
