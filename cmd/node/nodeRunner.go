package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	apiGin "github.com/multiversx/mx-chain-htlc-oracle-go/api/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/dataRetriever/txpool"
	"github.com/multiversx/mx-chain-htlc-oracle-go/facade"
	"github.com/multiversx/mx-chain-htlc-oracle-go/node"
	"github.com/multiversx/mx-chain-htlc-oracle-go/offchain"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/block"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/htlcEvents"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/oracle"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/transactionLog"
	"github.com/multiversx/mx-chain-htlc-oracle-go/state"
	"github.com/multiversx/mx-chain-htlc-oracle-go/statusHandler"
	storageFactory "github.com/multiversx/mx-chain-htlc-oracle-go/storage/factory"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

type closer interface {
	Close() error
}

type oracleStateComponent interface {
	oracle.OracleStateHandler
	offchain.OracleStateReader
	facade.OracleStateHandler
	closer
}

type nodeRunner struct {
	flags *flagsConfig
	cfg   *config.Config
}

func newNodeRunner(flags *flagsConfig) (*nodeRunner, error) {
	cfg, err := config.LoadConfig(flags.configurationFileName)
	if err != nil {
		return nil, err
	}
	log.Debug("config", "file", flags.configurationFileName)

	if !flags.isLogLevelSet && len(cfg.Logs.LogLevel) > 0 {
		err = logger.SetLogLevel(cfg.Logs.LogLevel)
		if err != nil {
			return nil, err
		}
	}

	applyFlagsOverrides(cfg, flags)

	return &nodeRunner{
		flags: flags,
		cfg:   cfg,
	}, nil
}

func applyFlagsOverrides(cfg *config.Config, flags *flagsConfig) {
	if len(flags.restApiInterface) > 0 {
		cfg.Api.RestApiInterface = flags.restApiInterface
	}
	if flags.restApiDebug {
		cfg.Api.DebugMode = true
	}
	if len(flags.adminKey) > 0 {
		cfg.Api.AdminKey = flags.adminKey
	}
}

// Start creates and wires all the components, then produces blocks until a stop signal is received
func (nr *nodeRunner) Start() error {
	enableGopsIfNeeded(nr.flags.enableGops)

	workingDir, err := getWorkingDir(nr.flags.workingDir)
	if err != nil {
		return err
	}
	log.Info("starting node", "working directory", workingDir)

	marshaller := &marshal.JsonMarshalizer{}
	hasher := blake2b.NewBlake2b()
	metrics := statusHandler.NewPrometheusStatusHandler()
	defer metrics.Close()

	oracleState, err := createOracleState(nr.cfg, workingDir, marshaller)
	if err != nil {
		return err
	}
	defer closeComponent("oracle state", oracleState)

	eventsLog, err := transactionLog.NewEventsLog(nr.cfg.Api.RecentEventsCapacity)
	if err != nil {
		return err
	}

	validator := dataValidators.NewUnsignedTxValidator()
	pool, err := txpool.NewUnsignedTxPool(txpool.ArgsUnsignedTxPool{
		Validator:     validator,
		Marshaller:    marshaller,
		Hasher:        hasher,
		StatusHandler: metrics,
		Capacity:      nr.cfg.Pool.Capacity,
	})
	if err != nil {
		return err
	}

	blockProcessor, err := createBlockProcessor(nr.cfg, oracleState, eventsLog, pool, validator, marshaller, hasher, metrics)
	if err != nil {
		return err
	}

	worker, err := createOffchainWorker(nr.cfg, oracleState, pool, marshaller, hasher, metrics)
	if err != nil {
		return err
	}

	genesisCalls, err := createGenesisCalls(nr.cfg.Oracle)
	if err != nil {
		return err
	}

	currentNode, err := node.NewNode(
		node.WithBlockProcessor(blockProcessor),
		node.WithOffchainWorker(worker),
		node.WithRoundDuration(time.Duration(nr.cfg.General.RoundDurationInMilliseconds)*time.Millisecond),
		node.WithGenesisCalls(genesisCalls...),
	)
	if err != nil {
		return err
	}

	nodeFacade, err := facade.NewNodeFacade(facade.ArgsNodeFacade{
		Node:      currentNode,
		State:     oracleState,
		Pool:      pool,
		EventsLog: eventsLog,
		Metrics:   metrics,
		ApiConfig: nr.cfg.Api,
	})
	if err != nil {
		return err
	}

	webServer, err := apiGin.NewGinWebServerHandler(apiGin.ArgsNewWebServer{Facade: nodeFacade})
	if err != nil {
		return err
	}
	err = webServer.StartHttpServer()
	if err != nil {
		return err
	}

	err = currentNode.Start(context.Background())
	if err != nil {
		_ = webServer.Close()
		return err
	}
	log.Info("node started", "round duration in ms", nr.cfg.General.RoundDurationInMilliseconds,
		"fetch period in blocks", nr.cfg.Oracle.FetchPeriodInBlocks, "rest api", nodeFacade.RestApiInterface())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	return waitForSignal(sigs, currentNode, webServer)
}

func createOracleState(cfg *config.Config, workingDir string, marshaller marshal.Marshalizer) (oracleStateComponent, error) {
	persisterFactory := storageFactory.NewPersisterFactory(workingDir)

	swapData, err := persisterFactory.Create(cfg.SwapDataStorage.DB)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create the swap data persister")
	}
	swapStates, err := persisterFactory.Create(cfg.SwapStatesStorage.DB)
	if err != nil {
		_ = swapData.Close()
		return nil, errors.Wrap(err, "cannot create the swap states persister")
	}
	oracleStorage, err := persisterFactory.Create(cfg.OracleStateStorage.DB)
	if err != nil {
		_ = swapData.Close()
		_ = swapStates.Close()
		return nil, errors.Wrap(err, "cannot create the oracle state persister")
	}

	oracleState, err := state.NewOracleState(state.ArgsOracleState{
		SwapDataPersister:    swapData,
		SwapStatesPersister:  swapStates,
		OracleStatePersister: oracleStorage,
		Marshaller:           marshaller,
	})
	if err != nil {
		_ = swapData.Close()
		_ = swapStates.Close()
		_ = oracleStorage.Close()
		return nil, err
	}

	return oracleState, nil
}

func createBlockProcessor(
	cfg *config.Config,
	oracleState oracle.OracleStateHandler,
	eventsLog oracle.EventsHandler,
	pool block.TransactionsSelector,
	validator block.UnsignedTxValidator,
	marshaller marshal.Marshalizer,
	hasher common.Hasher,
	metrics common.AppStatusHandler,
) (node.BlockProcessor, error) {
	ingestionHandler, err := oracle.NewIngestionHandler(oracle.ArgsIngestionHandler{
		State:         oracleState,
		Events:        eventsLog,
		StatusHandler: metrics,
	})
	if err != nil {
		return nil, err
	}

	adminHandler, err := oracle.NewAdminHandler(oracle.ArgsAdminHandler{
		State:  oracleState,
		Events: eventsLog,
	})
	if err != nil {
		return nil, err
	}

	dispatcher, err := oracle.NewCallDispatcher(oracle.ArgsCallDispatcher{
		State:              oracleState,
		Events:             eventsLog,
		IngestionProcessor: ingestionHandler,
		AdminProcessor:     adminHandler,
		Marshaller:         marshaller,
		Hasher:             hasher,
		StatusHandler:      metrics,
	})
	if err != nil {
		return nil, err
	}

	return block.NewBlockProcessor(block.ArgsBlockProcessor{
		CallExecutor:            dispatcher,
		TransactionsSelector:    pool,
		UnsignedTxValidator:     validator,
		StatusHandler:           metrics,
		MaxTransactionsPerBlock: cfg.General.MaxTransactionsPerBlock,
	})
}

func createOffchainWorker(
	cfg *config.Config,
	oracleState offchain.OracleStateReader,
	pool offchain.TxSubmitter,
	marshaller marshal.Marshalizer,
	hasher common.Hasher,
	metrics common.AppStatusHandler,
) (node.OffchainWorker, error) {
	fetcher, err := offchain.NewHTTPFetcher(offchain.ArgsHTTPFetcher{
		Client:    http.DefaultClient,
		ChunkSize: cfg.Oracle.ResponseChunkSize,
	})
	if err != nil {
		return nil, err
	}

	parser, err := htlcEvents.NewEnvelopeParser(htlcEvents.ArgsEnvelopeParser{Marshaller: marshaller})
	if err != nil {
		return nil, err
	}

	codec, err := htlcEvents.NewEventCodec(htlcEvents.ArgsEventCodec{Hasher: hasher})
	if err != nil {
		return nil, err
	}

	var requestHeader *offchain.RequestHeader
	if len(cfg.Oracle.RequestHeader.Name) > 0 {
		requestHeader = &offchain.RequestHeader{
			Name:  cfg.Oracle.RequestHeader.Name,
			Value: cfg.Oracle.RequestHeader.Value,
		}
	}

	return offchain.NewOffchainWorker(offchain.ArgsOffchainWorker{
		Fetcher:             fetcher,
		EnvelopeParser:      parser,
		EventDecoder:        codec,
		State:               oracleState,
		TxSubmitter:         pool,
		StatusHandler:       metrics,
		FetchPeriodInBlocks: cfg.Oracle.FetchPeriodInBlocks,
		RequestHeader:       requestHeader,
	})
}

func createGenesisCalls(cfg config.OracleConfig) ([]transaction.Call, error) {
	calls := make([]transaction.Call, 0, len(cfg.Authorities)+1)
	for _, authority := range cfg.Authorities {
		account, err := common.DecodeAccount(authority)
		if err != nil {
			return nil, fmt.Errorf("%w for genesis authority %s", err, authority)
		}
		calls = append(calls, &transaction.AddAuthorityCall{Account: account})
	}

	if len(cfg.Genesis.SourceURL) == 0 {
		return calls, nil
	}

	custody, err := common.DecodeAccount(cfg.Genesis.CustodyAccount)
	if err != nil {
		return nil, fmt.Errorf("%w for genesis custody account", err)
	}
	calls = append(calls, &transaction.KickoffFetchCall{
		CustodyAccount: custody,
		SourceName:     []byte(cfg.Genesis.SourceName),
		SourceURL:      []byte(cfg.Genesis.SourceURL),
	})

	return calls, nil
}

func waitForSignal(sigs chan os.Signal, currentNode *node.Node, webServer closer) error {
	<-sigs
	log.Info("terminating at user's signal...")

	chCloseComponents := make(chan struct{})
	go func() {
		err := currentNode.Stop()
		log.LogIfError(err)
		closeComponent("web server", webServer)
		close(chCloseComponents)
	}()

	select {
	case <-chCloseComponents:
		log.Debug("closed all components gracefully")
		return nil
	case <-time.After(maxTimeToClose):
		log.Warn("force closing the node", "error", "components did not close in time")
		return fmt.Errorf("did NOT close all components gracefully")
	}
}

func closeComponent(name string, component closer) {
	err := component.Close()
	if err != nil {
		log.Warn("error closing component", "component", name, "error", err)
	}
}

func enableGopsIfNeeded(gopsEnabled bool) {
	if gopsEnabled {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("failure to init gops", "error", err.Error())
		}
	}

	log.Trace("gops", "enabled", gopsEnabled)
}

func getWorkingDir(workingDir string) (string, error) {
	if len(workingDir) > 0 {
		return filepath.Abs(workingDir)
	}

	return os.Getwd()
}
