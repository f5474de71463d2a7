package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ipfix-collector/internal/api"
	"ipfix-collector/internal/config"
	"ipfix-collector/internal/display"
	"ipfix-collector/internal/listener"
	"ipfix-collector/internal/logging"
	"ipfix-collector/internal/metrics"
	"ipfix-collector/internal/parser"
	"ipfix-collector/internal/resolver"
	"ipfix-collector/internal/store"
	"ipfix-collector/pkg/types"
)

var (
	configFile  string
	listenAddr  string
	metricsAddr string
	apiAddr     string
	logLevel    string
	maxFlows    int
	channelSize int
	templateTTL time.Duration
	resolveDNS  bool
	tuiMode     bool
	simpleMode  bool
	refreshRate time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "collector",
		Short: "Passive NetFlow v5 / IPFIX collector",
		Long: `A passive UDP collector for NetFlow v5 and IPFIX (NetFlow v10).

Datagrams from exporters are decoded against per-exporter template state
and handed to the configured sinks: the structured log, the in-memory
store behind the JSON API, and optionally a live terminal view.

Example:
  collector --listen 0.0.0.0:9999 --metrics 127.0.0.1:9100 --tui`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML configuration file")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "UDP listen address (default 0.0.0.0:9999)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics", "", "Prometheus exposition address (disabled when empty)")
	rootCmd.Flags().StringVar(&apiAddr, "api", "", "JSON API address (disabled when empty)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().IntVar(&maxFlows, "max-flows", 0, "Maximum flows to keep in memory")
	rootCmd.Flags().IntVar(&channelSize, "channel-size", 0, "Record channel capacity")
	rootCmd.Flags().DurationVar(&templateTTL, "template-ttl", 0, "Age out idle exporter templates (0 = never)")
	rootCmd.Flags().BoolVar(&resolveDNS, "resolve", false, "Reverse-resolve addresses in the API and the TUI")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "Interactive TUI flow view")
	rootCmd.Flags().BoolVar(&simpleMode, "simple", false, "Simple periodic CLI view")
	rootCmd.Flags().DurationVar(&refreshRate, "refresh", 500*time.Millisecond, "Display refresh rate")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// flags win over file and environment
	if listenAddr != "" {
		cfg.Listener.Host = listenAddr
	}
	if metricsAddr != "" {
		cfg.Metrics.Host = metricsAddr
	}
	if apiAddr != "" {
		cfg.API.Host = apiAddr
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if maxFlows > 0 {
		cfg.Store.MaxFlows = maxFlows
	}
	if channelSize > 0 {
		cfg.Listener.ChannelSize = channelSize
	}
	if templateTTL > 0 {
		cfg.Listener.TemplateTTLSeconds = int(templateTTL.Seconds())
	}
	if resolveDNS {
		cfg.Resolver.Enabled = true
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting collector",
		zap.String("listen", cfg.Listener.Host),
		zap.String("metrics", cfg.Metrics.Host),
		zap.String("api", cfg.API.Host))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flowParser := parser.New(
		parser.WithLogger(logger.Named("parser")),
		parser.WithTemplateTTL(cfg.TemplateTTL()),
	)
	udpListener := listener.New(cfg.Listener.Host, flowParser, cfg.Listener.ChannelSize, logger.Named("listener"))
	flowStore := store.New(cfg.Store.MaxFlows)

	var res *resolver.Resolver
	if cfg.Resolver.Enabled {
		res = resolver.New()
	}

	if err := udpListener.Start(ctx); err != nil {
		logger.Error("fatal bind failure", zap.Error(err))
		return err
	}

	if cfg.Metrics.Host != "" {
		metricsServer := metrics.NewServer(cfg.Metrics.Host)
		metricsServer.Start()
		defer metricsServer.Stop()
	}

	if cfg.API.Host != "" {
		apiServer := api.NewServer(flowStore, cfg.API.Host, res, logger.Named("api"))
		apiServer.Start()
		defer apiServer.Stop()
	}

	// consumer: drains the record channel into the store and the log,
	// exits when the listener closes the channel on shutdown
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consume(udpListener, flowStore, logger.Named("sink"))
	}()

	switch {
	case tuiMode:
		tui := display.NewTUI(flowStore, res, refreshRate)
		go func() {
			<-ctx.Done()
			tui.Stop()
		}()
		if err := tui.Run(); err != nil {
			return fmt.Errorf("tui failed: %w", err)
		}
		stop()
	case simpleMode:
		cli := display.New(flowStore, refreshRate)
		go func() {
			<-ctx.Done()
			cli.Stop()
		}()
		cli.Start()
	default:
		<-ctx.Done()
	}

	wg.Wait()

	stats := flowStore.GetStats()
	logger.Info("collector stopped",
		zap.Uint64("total_flows", stats.TotalFlows),
		zap.Uint64("total_bytes", stats.TotalBytes),
		zap.Uint64("v5_flows", stats.V5Flows),
		zap.Uint64("ipfix_flows", stats.IPFIXFlows))

	return nil
}

// consume is the downstream worker: one batch per datagram, in order.
func consume(l *listener.UDPListener, flowStore *store.FlowStore, log *zap.Logger) {
	for batch := range l.Records() {
		flows := make([]types.Flow, 0, len(batch))
		for _, record := range batch {
			flows = append(flows, record.Summary())
			log.Debug("flow", zap.String("record", record.String()))
		}
		flowStore.Add(flows)
	}
}
