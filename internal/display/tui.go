package display

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ipfix-collector/internal/resolver"
	"ipfix-collector/internal/store"
	"ipfix-collector/pkg/types"
)

// TUI is the interactive terminal UI: a live flow table with sorting,
// filtering and optional reverse-DNS decoration.
type TUI struct {
	app         *tview.Application
	store       *store.FlowStore
	resolver    *resolver.Resolver
	table       *tview.Table
	statsView   *tview.TextView
	helpView    *tview.TextView
	filterInput *tview.InputField
	layout      *tview.Flex

	// State
	filter       store.Filter
	sortField    store.SortField
	paused       bool
	showDNS      bool
	showService  bool
	filterActive bool
	refreshRate  time.Duration
	stopChan     chan struct{}
}

// NewTUI creates the interactive display. The resolver may be nil.
func NewTUI(s *store.FlowStore, res *resolver.Resolver, refreshRate time.Duration) *TUI {
	if refreshRate == 0 {
		refreshRate = 500 * time.Millisecond
	}

	t := &TUI{
		app:         tview.NewApplication(),
		store:       s,
		resolver:    res,
		sortField:   store.SortByTime,
		refreshRate: refreshRate,
		stopChan:    make(chan struct{}),
	}

	t.statsView = tview.NewTextView().SetDynamicColors(true)
	t.statsView.SetBorder(false)

	t.table = tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)
	t.table.SetBorder(true).SetTitle(" Flows ")

	t.helpView = tview.NewTextView().SetDynamicColors(true)
	t.helpView.SetText("[yellow]q[-] quit  [yellow]p[-] pause  [yellow]s[-] sort  [yellow]d[-] dns  [yellow]n[-] services  [yellow]/[-] filter")

	t.filterInput = tview.NewInputField().SetLabel("Filter: ")
	t.filterInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			t.filter = store.ParseFilter(t.filterInput.GetText())
		}
		t.filterActive = false
		t.app.SetFocus(t.table)
		t.refresh()
	})

	t.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.statsView, 2, 0, false).
		AddItem(t.table, 0, 1, true).
		AddItem(t.helpView, 1, 0, false)

	t.app.SetInputCapture(t.handleKey)
	t.app.SetRoot(t.layout, true)

	return t
}

// Run blocks until the user quits.
func (t *TUI) Run() error {
	go t.refreshLoop()
	defer close(t.stopChan)
	return t.app.Run()
}

// Stop terminates the UI from outside.
func (t *TUI) Stop() {
	t.app.Stop()
}

func (t *TUI) refreshLoop() {
	ticker := time.NewTicker(t.refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			if t.paused {
				continue
			}
			t.app.QueueUpdateDraw(t.refresh)
		}
	}
}

func (t *TUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if t.filterActive {
		return event
	}

	switch event.Rune() {
	case 'q':
		t.app.Stop()
		return nil
	case 'p':
		t.paused = !t.paused
		t.refresh()
		return nil
	case 's':
		t.cycleSort()
		t.refresh()
		return nil
	case 'd':
		t.showDNS = !t.showDNS
		t.refresh()
		return nil
	case 'n':
		t.showService = !t.showService
		t.refresh()
		return nil
	case '/':
		t.filterActive = true
		t.filterInput.SetText(t.filter.Raw)
		t.layout.AddItem(t.filterInput, 1, 0, true)
		t.app.SetFocus(t.filterInput)
		return nil
	}

	if event.Key() == tcell.KeyEscape {
		t.app.Stop()
		return nil
	}

	return event
}

func (t *TUI) cycleSort() {
	switch t.sortField {
	case store.SortByTime:
		t.sortField = store.SortByBytes
	case store.SortByBytes:
		t.sortField = store.SortByPackets
	default:
		t.sortField = store.SortByTime
	}
}

func (t *TUI) sortName() string {
	switch t.sortField {
	case store.SortByBytes:
		return "bytes"
	case store.SortByPackets:
		return "packets"
	default:
		return "time"
	}
}

func (t *TUI) refresh() {
	if t.filterActive {
		return
	}
	t.layout.RemoveItem(t.filterInput)

	t.renderStats()
	t.renderTable()
}

func (t *TUI) renderStats() {
	stats := t.store.GetStats()

	state := ""
	if t.paused {
		state = " [red]PAUSED[-]"
	}
	filter := ""
	if !t.filter.IsEmpty() {
		filter = fmt.Sprintf(" [green]filter:[-] %s", t.filter.Raw)
	}

	t.statsView.SetText(fmt.Sprintf(
		"[white]Flows:[-] %s  [white]Bytes:[-] %s  [white]Rate:[-] %.1f/s  [white]v5:[-] %s  [white]IPFIX:[-] %s  [white]Exporters:[-] %d  [white]sort:[-] %s%s%s",
		formatNumber(stats.TotalFlows),
		formatBytes(stats.TotalBytes),
		stats.FlowsPerSecond,
		formatNumber(stats.V5Flows),
		formatNumber(stats.IPFIXFlows),
		stats.UniqueExporters,
		t.sortName(),
		filter,
		state,
	))
}

func (t *TUI) renderTable() {
	_, _, _, height := t.table.GetInnerRect()
	limit := height - 1
	if limit < 1 {
		limit = 20
	}

	flows := t.store.Query(&t.filter, t.sortField, false, limit)

	t.table.Clear()
	headers := []string{"Version", "Source", "Destination", "Proto", "Bytes", "Packets", "Flags", "Age"}
	for col, h := range headers {
		cell := tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold)
		t.table.SetCell(0, col, cell)
	}

	for row, flow := range flows {
		t.setFlowRow(row+1, flow)
	}
}

func (t *TUI) setFlowRow(row int, flow types.Flow) {
	src := t.endpoint(flow.SrcAddr.String(), flow.SrcPort, flow.Protocol)
	dst := t.endpoint(flow.DstAddr.String(), flow.DstPort, flow.Protocol)

	cells := []string{
		flow.Version.String(),
		src,
		dst,
		flow.ProtocolName(),
		formatBytes(flow.Bytes),
		fmt.Sprintf("%d", flow.Packets),
		flow.TCPFlagsString(),
		formatAge(time.Since(flow.ReceivedAt)),
	}

	for col, text := range cells {
		cell := tview.NewTableCell(text)
		if col == 4 || col == 5 {
			cell.SetAlign(tview.AlignRight)
		}
		t.table.SetCell(row, col, cell)
	}
}

// endpoint renders addr:port, optionally swapping in hostnames and
// service names.
func (t *TUI) endpoint(addr string, port uint16, protocol uint8) string {
	host := addr
	if t.showDNS && t.resolver != nil {
		if ip := parseIP(addr); ip != nil {
			host = t.resolver.Resolve(ip)
		}
	}

	if t.showService && port != 0 {
		if svc := resolver.GetServiceName(port, protocol); svc != "" {
			return fmt.Sprintf("%s:%s", host, svc)
		}
	}
	return formatEndpoint(host, port)
}
