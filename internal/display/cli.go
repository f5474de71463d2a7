package display

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"ipfix-collector/internal/store"
	"ipfix-collector/pkg/types"
)

// CLI renders a periodically refreshing plain-terminal view of the store.
type CLI struct {
	store       *store.FlowStore
	refreshRate time.Duration
	stopChan    chan struct{}
}

// New creates a new CLI display
func New(s *store.FlowStore, refreshRate time.Duration) *CLI {
	if refreshRate == 0 {
		refreshRate = time.Second
	}
	return &CLI{
		store:       s,
		refreshRate: refreshRate,
		stopChan:    make(chan struct{}),
	}
}

// getTerminalSize returns current terminal width and height
func getTerminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 100, 24
	}
	return width, height
}

// Start begins the display loop
func (c *CLI) Start() {
	ticker := time.NewTicker(c.refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.render()
		}
	}
}

// Stop stops the display loop
func (c *CLI) Stop() {
	close(c.stopChan)
}

// render updates the terminal display
func (c *CLI) render() {
	width, height := getTerminalSize()

	// Clear screen
	fmt.Print("\033[2J\033[H")

	c.renderHeader(width)
	c.renderStats(width)
	fmt.Println()

	maxRows := height - 12
	if maxRows < 1 {
		maxRows = 1
	}

	c.renderFlows(c.store.GetRecent(maxRows), width)
	c.renderFooter(width)
}

func (c *CLI) renderHeader(width int) {
	if width < 60 {
		fmt.Println("═══ NetFlow/IPFIX Collector ═══")
		return
	}

	title := "NetFlow/IPFIX Collector"
	innerWidth := width - 2
	padding := (innerWidth - len(title)) / 2
	paddingRight := innerWidth - len(title) - padding

	fmt.Println("╔" + strings.Repeat("═", innerWidth) + "╗")
	fmt.Println("║" + strings.Repeat(" ", padding) + title + strings.Repeat(" ", paddingRight) + "║")
	fmt.Println("╚" + strings.Repeat("═", innerWidth) + "╝")
}

func (c *CLI) renderStats(width int) {
	stats := c.store.GetStats()

	if width >= 100 {
		fmt.Printf("│ Flows: %s │ Bytes: %s │ Packets: %s │ Rate: %.1f flows/s │ Throughput: %s/s │\n",
			formatNumber(stats.TotalFlows),
			formatBytes(stats.TotalBytes),
			formatNumber(stats.TotalPackets),
			stats.FlowsPerSecond,
			formatBytes(uint64(stats.BytesPerSecond)),
		)
		fmt.Printf("│ v5: %s │ IPFIX: %s │ Exporters: %d │ Stored: %d │\n",
			formatNumber(stats.V5Flows),
			formatNumber(stats.IPFIXFlows),
			stats.UniqueExporters,
			c.store.GetFlowCount(),
		)
	} else {
		fmt.Printf("Flows: %s  Bytes: %s  Rate: %.1f/s\n",
			formatNumber(stats.TotalFlows),
			formatBytes(stats.TotalBytes),
			stats.FlowsPerSecond,
		)
	}
}

func (c *CLI) renderFlows(flows []types.Flow, width int) {
	fmt.Print("\n=== Recent Flows ===\n\n")

	if len(flows) == 0 {
		fmt.Println("No flows received yet. Waiting for data...")
		return
	}

	srcWidth := 21
	dstWidth := 21
	if width >= 120 {
		srcWidth = 25
		dstWidth = 25
	}

	fmt.Printf("%-10s %-*s %-*s %-5s %10s %8s %-5s\n",
		"Version", srcWidth, "Source", dstWidth, "Destination", "Proto", "Bytes", "Pkts", "Flags")
	fmt.Println(strings.Repeat("─", width-1))

	for _, flow := range flows {
		src := formatEndpoint(flow.SrcAddr.String(), flow.SrcPort)
		dst := formatEndpoint(flow.DstAddr.String(), flow.DstPort)

		fmt.Printf("%-10s %-*s %-*s %-5s %10s %8d %-5s\n",
			flow.Version.String(),
			srcWidth, truncate(src, srcWidth),
			dstWidth, truncate(dst, dstWidth),
			flow.ProtocolName(),
			formatBytes(flow.Bytes),
			flow.Packets,
			flow.TCPFlagsString(),
		)
	}
}

func (c *CLI) renderFooter(width int) {
	fmt.Println()
	fmt.Println(strings.Repeat("─", width-1))
	fmt.Printf("Press Ctrl+C to exit │ Updated: %s\n", time.Now().Format("15:04:05"))
}
