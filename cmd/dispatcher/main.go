package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/chain"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/config"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/dispatch"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/metrics"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/signer"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/tx"
)

// mnemonicEnv names the variable holding the account mnemonic. When it
// is unset the mnemonic is read from stdin so it never has to touch the
// process environment or the command line.
const mnemonicEnv = "DISPATCHER_MNEMONIC"

type appConfig struct {
	GRPCEndpoint     string        `long:"grpc-endpoint" env:"ALARMS_DISPATCHER_GRPC_ENDPOINT" description:"chain node gRPC endpoint" required:"true"`
	GRPCTLS          bool          `long:"grpc-tls" env:"ALARMS_DISPATCHER_GRPC_TLS" description:"dial the gRPC endpoint over TLS"`
	RPCEndpoint      string        `long:"rpc-endpoint" env:"ALARMS_DISPATCHER_RPC_ENDPOINT" description:"chain node JSON-RPC endpoint" required:"true"`
	ChainID          string        `long:"chain-id" env:"ALARMS_DISPATCHER_CHAIN_ID" description:"chain identifier transactions are bound to" required:"true"`
	AddressPrefix    string        `long:"address-prefix" env:"ALARMS_DISPATCHER_ADDRESS_PREFIX" description:"bech32 account address prefix" default:"nolus"`
	FeeDenom         string        `long:"fee-denom" env:"ALARMS_DISPATCHER_FEE_DENOM" description:"denomination fees are paid in" default:"unls"`
	HDPath           string        `long:"hd-path" env:"ALARMS_DISPATCHER_HD_PATH" description:"BIP-44 derivation path of the signing key" default:"m/44'/118'/0'/0/0"`
	HDPassphrase     string        `long:"hd-passphrase" env:"ALARMS_DISPATCHER_HD_PASSPHRASE" description:"optional BIP-39 passphrase"`
	AlarmsConfig     string        `long:"alarms-config" env:"ALARMS_DISPATCHER_ALARMS_CONFIG" description:"path to the alarm types YAML" default:"alarms.yaml"`
	PollPeriod       time.Duration `long:"poll-period" env:"ALARMS_DISPATCHER_POLL_PERIOD" description:"sleep between dispatch rounds" default:"1m"`
	MaxErrors        int           `long:"max-consecutive-errors" env:"ALARMS_DISPATCHER_MAX_CONSECUTIVE_ERRORS" description:"failed rounds tolerated back to back" default:"5"`
	QueriesPerSecond int           `long:"queries-per-second" env:"ALARMS_DISPATCHER_QUERIES_PER_SECOND" description:"cap on contract queries per second, 0 for unlimited" default:"0"`
	BroadcastTimeout time.Duration `long:"broadcast-timeout" env:"ALARMS_DISPATCHER_BROADCAST_TIMEOUT" description:"bound on one broadcast-and-commit round trip" default:"60s"`
	MetricsAddr      string        `long:"metrics-addr" env:"ALARMS_DISPATCHER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Debug            bool          `long:"debug" env:"ALARMS_DISPATCHER_DEBUG" description:"enable debug logging"`
}

func main() {
	_ = godotenv.Load()

	cfg := appConfig{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("dispatcher stopped")
			return
		}
		logger.Fatal("alarms dispatcher failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, cfg appConfig, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	alarms, err := config.Load(cfg.AlarmsConfig)
	if err != nil {
		return fmt.Errorf("load alarm types: %w", err)
	}

	mnemonic, err := readMnemonic()
	if err != nil {
		return fmt.Errorf("read mnemonic: %w", err)
	}
	key, err := signer.DeriveKey(mnemonic, cfg.HDPassphrase, cfg.HDPath)
	if err != nil {
		return fmt.Errorf("derive signing key: %w", err)
	}

	client, err := chain.Dial(chain.Config{
		GRPCEndpoint:     cfg.GRPCEndpoint,
		GRPCTLS:          cfg.GRPCTLS,
		RPCEndpoint:      cfg.RPCEndpoint,
		BroadcastTimeout: cfg.BroadcastTimeout,
	}, logger, metrics.NewChainRPC())
	if err != nil {
		return fmt.Errorf("connect to chain node: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	address, err := signer.AddressFromPubKey(key.PubKey(), cfg.AddressPrefix)
	if err != nil {
		return fmt.Errorf("derive account address: %w", err)
	}
	account, err := client.Account(ctx, address)
	if err != nil {
		return fmt.Errorf("fetch account %s: %w", address, err)
	}
	identity, err := signer.NewIdentity(key, cfg.AddressPrefix, cfg.ChainID, account.AccountNumber, account.Sequence)
	if err != nil {
		return err
	}
	logger.Info("dispatching as",
		zap.String("address", identity.Address()),
		zap.Uint64("account_number", account.AccountNumber),
		zap.Uint64("sequence", account.Sequence),
	)

	var limiter ratelimit.Limiter
	if cfg.QueriesPerSecond > 0 {
		limiter = ratelimit.New(cfg.QueriesPerSecond)
	}

	engines, err := buildEngines(alarms, identity, client, cfg.FeeDenom, limiter, logger)
	if err != nil {
		return err
	}

	scheduler, err := dispatch.NewScheduler(engines, cfg.PollPeriod, cfg.MaxErrors, logger)
	if err != nil {
		return err
	}
	return scheduler.Run(ctx)
}

func buildEngines(
	alarms []config.AlarmType,
	identity *signer.Identity,
	client *chain.Client,
	feeDenom string,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) ([]dispatch.EnginePass, error) {
	engines := make([]dispatch.EnginePass, 0, len(alarms))
	for _, alarm := range alarms {
		if !alarm.Enabled {
			logger.Info("alarm type disabled, skipping", zap.String("alarm_type", alarm.Name))
			continue
		}

		builder, err := tx.NewBuilder(feeDenom, alarm.GasLimitPerAlarm, alarm.GasPrice)
		if err != nil {
			return nil, fmt.Errorf("alarm type %s: %w", alarm.Name, err)
		}
		engine, err := dispatch.NewEngine(
			alarm, identity, client, client, builder,
			dispatch.AlarmsCodec(), metrics.NewDispatch(alarm.Name), limiter, logger,
		)
		if err != nil {
			return nil, fmt.Errorf("alarm type %s: %w", alarm.Name, err)
		}
		engines = append(engines, engine)
	}
	if len(engines) == 0 {
		return nil, errors.New("no enabled alarm types configured")
	}
	return engines, nil
}

// readMnemonic prefers the environment and falls back to an interactive
// stdin prompt.
func readMnemonic() (string, error) {
	if mnemonic := strings.TrimSpace(os.Getenv(mnemonicEnv)); mnemonic != "" {
		return mnemonic, nil
	}

	fmt.Fprint(os.Stderr, "Enter the dispatcher account mnemonic: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read from stdin: %w", err)
	}
	mnemonic := strings.TrimSpace(line)
	if mnemonic == "" {
		return "", errors.New("empty mnemonic")
	}
	return mnemonic, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
