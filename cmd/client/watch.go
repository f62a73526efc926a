// Package main – watch subcommand: live replica set table rendered with
// bubbletea + lipgloss.
package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	replpb "github.com/i-melnichenko/replset-lab/pkg/proto/replv1"
)

const watchRefreshInterval = 500 * time.Millisecond

// ---- Data types -------------------------------------------------------------

type watchConn struct {
	addr   string
	conn   *grpc.ClientConn
	client replpb.ReplServiceClient
}

type watchRow struct {
	addr       string
	set        string
	state      string
	stateCode  int32
	term       int64
	syncSource string
	committed  string
	applied    string
	cfgVersion int64
	members    int
	memberList string
	err        string
}

// ---- Bubbletea messages -----------------------------------------------------

type tickMsg time.Time

type rowsMsg struct {
	rows []watchRow
	ts   time.Time
}

// ---- Lipgloss styles --------------------------------------------------------

type uiStyles struct {
	dotHealthy  lipgloss.Style
	dotUnavail  lipgloss.Style
	dotUnknown  lipgloss.Style
	dotSelected lipgloss.Style
	addr        lipgloss.Style
	statePri    lipgloss.Style
	stateSec    lipgloss.Style
	stateOther  lipgloss.Style
	syncVal     lipgloss.Style
	syncNone    lipgloss.Style
	termVal     lipgloss.Style
	metric      lipgloss.Style
	cfgVal      lipgloss.Style
	tableHeader lipgloss.Style
	appHeader   lipgloss.Style
	tsStyle     lipgloss.Style
	footer      lipgloss.Style
	divider     lipgloss.Style
	alertsHdr   lipgloss.Style
	errorDot    lipgloss.Style
	errorKind   lipgloss.Style
	memberLabel lipgloss.Style
	memberValue lipgloss.Style
	sumDim      lipgloss.Style
	sumHealthy  lipgloss.Style
	sumErrors   lipgloss.Style
	sumPrimary  lipgloss.Style
	priMissing  lipgloss.Style
}

var styles = buildStyles()

func buildStyles() uiStyles {
	// "1"=red  "2"=green  "3"=yellow  "4"=blue  "5"=magenta  "6"=cyan
	// "7"=white  "8"=bright-black
	return uiStyles{
		dotHealthy:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		dotUnavail:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		dotUnknown:  lipgloss.NewStyle().Faint(true),
		dotSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		addr:        lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("6")),
		statePri:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		stateSec:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		stateOther:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		syncVal:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		syncNone:    lipgloss.NewStyle().Faint(true),
		termVal:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		metric:      lipgloss.NewStyle().Faint(true),
		cfgVal:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		tableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Background(lipgloss.Color("8")),
		appHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		tsStyle:     lipgloss.NewStyle().Faint(true),
		footer:      lipgloss.NewStyle().Faint(true),
		divider:     lipgloss.NewStyle().Faint(true),
		alertsHdr:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		errorDot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		errorKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		memberLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		memberValue: lipgloss.NewStyle().Faint(true),
		sumDim:      lipgloss.NewStyle().Faint(true),
		sumHealthy:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		sumErrors:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		sumPrimary:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		priMissing:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// ---- Column widths ----------------------------------------------------------

type watchColWidths struct {
	addr  int
	state int
	sync  int
}

// watchColumnsForWidth computes variable column widths to fill contentWidth.
// Returns (cols, showSync) where showSync indicates the SYNC column is visible.
func watchColumnsForWidth(rows []watchRow, contentWidth int) (watchColWidths, bool) {
	col := watchColWidths{addr: 14, state: 10, sync: 14}

	maxAddr := len("ADDR")
	maxState := len("STATE")
	maxSync := len("SYNC")
	for _, r := range rows {
		if len(r.addr) > maxAddr {
			maxAddr = len(r.addr)
		}
		if len(r.state) > maxState {
			maxState = len(r.state)
		}
		if len(r.syncSource) > maxSync {
			maxSync = len(r.syncSource)
		}
	}
	col.addr = clampInt(maxAddr, 8, 20)
	col.state = clampInt(maxState, 7, 10)
	col.sync = clampInt(maxSync, 4, 20)

	showSync := contentWidth >= 90
	// Fixed chars (without SYNC): ST(2)+TERM(4)+CMT(12)+APL(12)+CFG(3)+6 spaces = 39
	// Fixed chars (with SYNC):    add one separating space = 40
	fixed := 39
	baseVar := col.addr + col.state
	if showSync {
		fixed = 40
		baseVar += col.sync
	}
	targetVar := contentWidth - fixed
	if targetVar <= 0 {
		return col, showSync
	}

	extra := targetVar - baseVar
	if extra < 0 {
		// Narrow terminal: shrink variable columns down to minimums.
		type shrinkEntry struct {
			cur *int
			min int
		}
		deficit := -extra
		for _, s := range []shrinkEntry{
			{&col.sync, 4},
			{&col.addr, 8},
			{&col.state, 7},
		} {
			if deficit == 0 {
				break
			}
			capacity := *s.cur - s.min
			if capacity <= 0 {
				continue
			}
			delta := minInt(deficit, capacity)
			*s.cur -= delta
			deficit -= delta
		}
		return col, showSync
	}
	// Wider terminal: stretch ADDR up to 8 extra chars.
	col.addr += minInt(extra, 8)
	return col, showSync
}

// ---- Cell renderers ---------------------------------------------------------
// Each renderer pads the raw value to `width` visible chars, then applies a
// lipgloss style.  No padding is added inside the style itself so column-width
// math stays exact.

func renderStatusDot(r watchRow, selected bool) string {
	if selected {
		return styles.dotSelected.Render("▶") + " "
	}
	if r.err != "" {
		return styles.dotUnavail.Render("●") + " "
	}
	switch r.stateCode {
	case 1, 2, 7:
		return styles.dotHealthy.Render("●") + " "
	default:
		return styles.dotUnknown.Render("·") + " "
	}
}

func renderAddrCell(s string, width int) string {
	return styles.addr.Render(fmt.Sprintf("%-*s", width, shorten(s, width)))
}

func renderStateCell(s string, width int, stateCode int32) string {
	padded := fmt.Sprintf("%-*s", width, shorten(s, width))
	switch stateCode {
	case 1:
		return styles.statePri.Render(padded)
	case 2:
		return styles.stateSec.Render(padded)
	default:
		return styles.stateOther.Render(padded)
	}
}

func renderSyncCell(s string, width int) string {
	padded := fmt.Sprintf("%-*s", width, shorten(s, width))
	if s == "" || s == "-" {
		return styles.syncNone.Render(fmt.Sprintf("%-*s", width, "-"))
	}
	return styles.syncVal.Render(padded)
}

func renderTermCell(v int64, width int) string {
	return styles.termVal.Render(fmt.Sprintf("%*d", width, v))
}

func renderOpTimeCell(s string, width int) string {
	return styles.metric.Render(fmt.Sprintf("%*s", width, shorten(s, width)))
}

func renderCFGCell(v int64, width int) string {
	if v <= 0 {
		return fmt.Sprintf("%*s", width, "-")
	}
	return styles.cfgVal.Render(fmt.Sprintf("%*d", width, v))
}

// makeTableRow builds the single-line string for one watch row.
// selected=true replaces the status dot with the cursor arrow ▶.
func makeTableRow(r watchRow, cols watchColWidths, showSync, selected bool) string {
	dot := renderStatusDot(r, selected)

	if r.err != "" {
		dash := "-"
		base := dot + " " +
			renderAddrCell(r.addr, cols.addr) +
			" " + fmt.Sprintf("%-*s", cols.state, dash) +
			" " + fmt.Sprintf("%4s", dash) +
			" " + fmt.Sprintf("%12s", dash) +
			" " + fmt.Sprintf("%12s", dash)
		if showSync {
			base += " " + fmt.Sprintf("%-*s", cols.sync, dash)
		}
		return base + " " + fmt.Sprintf("%3s", dash)
	}

	base := dot + " " +
		renderAddrCell(r.addr, cols.addr) +
		" " + renderStateCell(r.state, cols.state, r.stateCode) +
		" " + renderTermCell(r.term, 4) +
		" " + renderOpTimeCell(r.committed, 12) +
		" " + renderOpTimeCell(r.applied, 12)
	if showSync {
		base += " " + renderSyncCell(r.syncSource, cols.sync)
	}
	return base + " " + renderCFGCell(r.cfgVersion, 3)
}

// renderHeader returns the styled table header line padded to contentWidth.
func renderHeader(cols watchColWidths, showSync bool, contentWidth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-2s", "ST")
	fmt.Fprintf(&b, " %-*s", cols.addr, headerLabel("ADDR", cols.addr))
	fmt.Fprintf(&b, " %-*s", cols.state, headerLabel("STATE", cols.state))
	fmt.Fprintf(&b, " %4s", "TERM")
	fmt.Fprintf(&b, " %12s", "CMT")
	fmt.Fprintf(&b, " %12s", "APL")
	if showSync {
		fmt.Fprintf(&b, " %-*s", cols.sync, headerLabel("SYNC", cols.sync))
	}
	fmt.Fprintf(&b, " %3s", "CFG")
	return styles.tableHeader.Width(contentWidth).MaxWidth(contentWidth).Render(b.String())
}

// renderSummary returns the "[N total] [N healthy] ..." line.
func renderSummary(rows []watchRow) string {
	total := len(rows)
	healthy, errorsN, primaries, secondaries := 0, 0, 0, 0
	for _, r := range rows {
		if r.err != "" {
			errorsN++
			continue
		}
		switch r.stateCode {
		case 1:
			healthy++
			primaries++
		case 2:
			healthy++
			secondaries++
		case 7:
			healthy++
		}
	}
	bracket := func(st lipgloss.Style, label string, n int) string {
		d := styles.sumDim
		return d.Render("[") + st.Render(fmt.Sprintf("%d", n)) + d.Render(" "+label+"]")
	}
	return strings.Join([]string{
		bracket(lipgloss.NewStyle(), "total", total),
		bracket(styles.sumHealthy, "healthy", healthy),
		bracket(styles.sumErrors, "errors", errorsN),
		bracket(styles.sumPrimary, "primary", primaries),
		bracket(styles.sumHealthy, "secondary", secondaries),
	}, " ")
}

// buildAlertLines returns alert lines (without the divider/header).
func buildAlertLines(rows []watchRow, contentWidth int) []string {
	var lines []string
	if missing, majority, healthy := detectPrimaryMissing(rows); missing {
		lines = append(lines, fmt.Sprintf("%s healthy=%d majority=%d (%s)",
			styles.priMissing.Render("PRIMARY_MISSING"),
			healthy, majority,
			"election in progress or stalled",
		))
	}
	for _, r := range rows {
		if r.err == "" {
			continue
		}
		summary := shorten(errorSummary(r.err), maxInt(20, contentWidth-28))
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			styles.errorDot.Render("●"),
			r.addr,
			styles.errorKind.Render(errorKind(r.err)),
			summary,
		))
	}
	return lines
}

// ---- Bubbletea model --------------------------------------------------------

type watchModel struct {
	rows         []watchRow
	ts           time.Time
	conns        []watchConn
	timeout      time.Duration
	width        int
	height       int
	cursor       int
	scrollOff    int
	selectedAddr string
	showSync     bool
	cols         watchColWidths
}

func newWatchModel(conns []watchConn, timeout time.Duration) watchModel {
	return watchModel{
		conns:   conns,
		timeout: timeout,
		width:   120,
		height:  40,
	}
}

func (m watchModel) Init() tea.Cmd {
	// Only fire the initial poll.  rowsMsg schedules the first tick, which
	// in turn fires the next poll — keeping exactly one poll in flight at a
	// time and preventing out-of-order rowsMsg overwrites.
	return m.pollCmd()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcCols()
		return m, nil

	case tickMsg:
		// Tick fires a poll; the next tick is scheduled when the poll returns.
		return m, m.pollCmd()

	case rowsMsg:
		m.rows = msg.rows
		m.ts = msg.ts
		m.recalcCols()
		m.restoreSelection()
		tickFn := func(t time.Time) tea.Msg { return tickMsg(t) }
		return m, tea.Tick(watchRefreshInterval, tickFn)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	contentWidth := m.width - 2
	if contentWidth <= 0 {
		contentWidth = 80
	}

	var b strings.Builder

	// Title line
	setName := "-"
	for _, r := range m.rows {
		if r.set != "" {
			setName = r.set
			break
		}
	}
	b.WriteString("  ")
	b.WriteString(styles.appHeader.Render("Replica set " + setName))
	b.WriteString("  ")
	b.WriteString(styles.tsStyle.Render(m.ts.Format(time.RFC3339)))
	b.WriteString("\n")

	// Summary line
	b.WriteString(renderSummary(m.rows))
	b.WriteString("\n")

	// Blank
	b.WriteString("\n")

	// Table header
	b.WriteString(renderHeader(m.cols, m.showSync, contentWidth))
	b.WriteString("\n")

	// Rows (viewport-clipped)
	visRows := m.visibleRowCount()
	start := m.scrollOff
	end := minInt(start+visRows, len(m.rows))
	for i := start; i < end; i++ {
		b.WriteString(makeTableRow(m.rows[i], m.cols, m.showSync, i == m.cursor))
		b.WriteString("\n")
	}

	// Blank + members pane
	b.WriteString("\n")
	members := "-"
	if m.cursor >= 0 && m.cursor < len(m.rows) && m.rows[m.cursor].memberList != "" {
		members = m.rows[m.cursor].memberList
	}
	b.WriteString("  ")
	b.WriteString(styles.memberLabel.Render("members:"))
	b.WriteString(" ")
	b.WriteString(styles.memberValue.Render(shorten(members, maxInt(10, contentWidth-12))))
	b.WriteString("\n")

	// Alerts section
	alertLines := buildAlertLines(m.rows, contentWidth)
	if len(alertLines) > 0 {
		b.WriteString(styles.divider.Render(strings.Repeat("-", contentWidth)))
		b.WriteString("\n")
		b.WriteString(styles.alertsHdr.Render("Alerts"))
		b.WriteString("\n")
		for _, line := range alertLines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	// Footer
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(styles.footer.Render("Ctrl+C to exit"))

	// Pad to terminal height with blank lines.
	// Bubbletea's diff renderer writes the new frame from the top and does
	// not always erase lines below the last line of the new frame.  When
	// the alerts section disappears (shorter frame), ghost lines remain on
	// screen.  Filling to m.height forces those old lines to be overwritten
	// with blanks on every render cycle.
	out := b.String()
	if m.height > 0 {
		lines := strings.Split(out, "\n")
		for len(lines) < m.height {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}
	return out
}

// ---- Model helpers ----------------------------------------------------------

func (m *watchModel) recalcCols() {
	contentWidth := m.width - 2
	if contentWidth <= 0 {
		contentWidth = 80
	}
	m.cols, m.showSync = watchColumnsForWidth(m.rows, contentWidth)
}

func (m *watchModel) restoreSelection() {
	if m.selectedAddr == "" {
		if len(m.rows) > 0 {
			m.cursor = 0
			m.selectedAddr = m.rows[0].addr
		}
		return
	}
	for i, r := range m.rows {
		if r.addr == m.selectedAddr {
			m.cursor = i
			m.clampScroll()
			return
		}
	}
	// Previously selected node not in new rows; sync from current cursor.
	if m.cursor >= len(m.rows) {
		m.cursor = maxInt(0, len(m.rows)-1)
	}
	if len(m.rows) > 0 {
		m.selectedAddr = m.rows[m.cursor].addr
	}
}

func (m *watchModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = clampInt(m.cursor+delta, 0, len(m.rows)-1)
	m.clampScroll()
	m.selectedAddr = m.rows[m.cursor].addr
}

func (m *watchModel) clampScroll() {
	visRows := m.visibleRowCount()
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	} else if m.cursor >= m.scrollOff+visRows {
		m.scrollOff = m.cursor - visRows + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}
}

func (m watchModel) visibleRowCount() int {
	// Overhead: title(1)+summary(1)+blank(1)+header(1)+blank(1)+members(1)+blank(1)+footer(1) = 8
	// Plus worst-case alerts: divider(1)+alertsHdr(1)+N lines
	return maxInt(2, m.height-9)
}

func (m watchModel) pollCmd() tea.Cmd {
	conns := m.conns
	timeout := m.timeout
	return func() tea.Msg {
		rows, ts := pollWatchRows(context.Background(), conns, timeout)
		return rowsMsg{rows: rows, ts: ts}
	}
}

// ---- Polling ----------------------------------------------------------------

func cmdWatch(addrs []string, timeout time.Duration) error {
	conns, err := openWatchConns(addrs)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range conns {
			_ = c.conn.Close()
		}
	}()

	p := tea.NewProgram(newWatchModel(conns, timeout), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func openWatchConns(addrs []string) ([]watchConn, error) {
	conns := make([]watchConn, 0, len(addrs))
	for _, addr := range addrs {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			for _, c := range conns {
				_ = c.conn.Close()
			}
			return nil, fmt.Errorf("dial node %s: %w", addr, err)
		}
		conns = append(conns, watchConn{
			addr:   addr,
			conn:   conn,
			client: replpb.NewReplServiceClient(conn),
		})
	}
	return conns, nil
}

func pollWatchRows(ctx context.Context, conns []watchConn, timeout time.Duration) ([]watchRow, time.Time) {
	rows := make([]watchRow, len(conns))
	var wg sync.WaitGroup
	wg.Add(len(conns))

	for i, c := range conns {
		go func(i int, c watchConn) {
			defer wg.Done()

			row := watchRow{addr: c.addr}

			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			resp, err := c.client.Status(reqCtx, &replpb.StatusRequest{})
			cancel()
			if err != nil {
				row.err = err.Error()
				rows[i] = row
				return
			}

			row.set = resp.GetSet()
			row.stateCode = resp.GetMyState()
			row.state = stateName(resp.GetMyState())
			row.term = resp.GetTerm()
			row.syncSource = resp.GetSyncSource()
			row.committed = formatOpTime(resp.GetOptimes().GetLastCommittedOpTime())
			row.members = len(resp.GetMembers())

			names := make([]string, 0, len(resp.GetMembers()))
			for _, mem := range resp.GetMembers() {
				if mem.GetSelf() {
					row.applied = formatOpTime(mem.GetOpTime())
					row.cfgVersion = mem.GetConfigVersion()
				}
				names = append(names, mem.GetName())
			}
			sort.Strings(names)
			row.memberList = strings.Join(names, ",")

			rows[i] = row
		}(i, c)
	}

	wg.Wait()

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].addr < rows[j].addr
	})

	return rows, time.Now()
}

// ---- Pure logic -------------------------------------------------------------

func errorKind(err string) string {
	switch {
	case strings.Contains(err, "code = Unavailable"):
		return "Unavailable"
	case strings.Contains(err, "code = Unimplemented"):
		return "Unimplemented"
	case strings.Contains(err, "code = DeadlineExceeded"):
		return "Timeout"
	default:
		return "Error"
	}
}

func errorSummary(err string) string {
	err = strings.TrimSpace(err)
	err = strings.ReplaceAll(err, "\n", " ")
	err = strings.Join(strings.Fields(err), " ")
	return err
}

// detectPrimaryMissing reports whether a majority of members is reachable and
// healthy yet no node reports itself primary.
func detectPrimaryMissing(rows []watchRow) (bool, int, int) {
	memberCount := 0
	healthy := 0
	hasPrimary := false

	for _, r := range rows {
		if r.err != "" {
			continue
		}
		if r.stateCode == 1 {
			hasPrimary = true
		}
		switch r.stateCode {
		case 1, 2, 7:
			healthy++
		}
		if r.members > memberCount {
			memberCount = r.members
		}
	}

	if memberCount == 0 {
		return false, 0, healthy
	}
	majority := memberCount/2 + 1
	if healthy < majority {
		return false, majority, healthy
	}
	return !hasPrimary, majority, healthy
}

func shorten(s string, n int) string {
	if n <= 0 {
		return s
	}
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func headerLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(label) <= width {
		return label
	}
	switch label {
	case "STATE":
		if width >= 2 {
			return "ST"
		}
	case "ADDR":
		if width >= 2 {
			return "AD"
		}
	case "SYNC":
		if width >= 2 {
			return "SY"
		}
	}
	return label[:width]
}
