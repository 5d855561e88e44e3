package main

import (
	"context"
	"log"

	"github.com/gabapcia/facetcore/internal/authgate"
	"github.com/gabapcia/facetcore/internal/config"
	"github.com/gabapcia/facetcore/internal/dispatch"
	"github.com/gabapcia/facetcore/internal/feeledger"
	"github.com/gabapcia/facetcore/internal/handlers/cli"
	hostwallet "github.com/gabapcia/facetcore/internal/infra/hostwallet/jsonrpc"
	"github.com/gabapcia/facetcore/internal/infra/storage/redis"
	"github.com/gabapcia/facetcore/internal/modregistry"
	"github.com/gabapcia/facetcore/internal/modstore"
	"github.com/gabapcia/facetcore/internal/pkg/logger"
	"github.com/gabapcia/facetcore/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/facetcore/internal/pkg/transport/http"
	"github.com/gabapcia/facetcore/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/facetcore/internal/pkg/validator"
	"github.com/gabapcia/facetcore/internal/reentry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.ServiceName)
	if err != nil {
		log.Fatalf("init telemetry: %v", err)
	}
	defer shutdownTelemetry(ctx)

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	validator.Init()

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "connect to redis", "error", err)
	}
	defer storage.Close()

	rpcConn := jsonrpc.NewClient(transporthttp.NewClient().StandardClient(), cfg.HostWalletEndpoint)
	wallet := hostwallet.NewClient(rpcConn)

	authSvc := authgate.New(wallet)
	storeSvc := modstore.New(storage, storage)
	guardSvc := reentry.New(storage)
	registrySvc := modregistry.New(authSvc, storage, storage)

	feeSvc, err := feeledger.New(cfg.TierSchedule(), authSvc, storage, wallet, storage)
	if err != nil {
		logger.Fatal(ctx, "build fee service", "error", err)
	}

	dispatchSvc := dispatch.New(cfg.PlatformWallet, registrySvc, authSvc, guardSvc, feeSvc, wallet)

	if err := cli.Run(ctx, dispatchSvc, registrySvc, feeSvc, storeSvc); err != nil {
		logger.Fatal(ctx, "run", "error", err)
	}
}
