package node

import (
	"context"
	"sync"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/block"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("node")

const defaultRoundDuration = 6 * time.Second

// Node is the component that produces blocks at a fixed cadence. Every block first executes the
// queued privileged calls, then the pooled transactions, and after finalization hands the height
// to the off-chain worker
type Node struct {
	mutState       sync.RWMutex
	currentHeight  uint64
	blockProcessor BlockProcessor
	offchainWorker OffchainWorker
	roundDuration  time.Duration

	mutSystemCalls sync.Mutex
	systemCalls    []*transaction.Transaction

	mutRunning sync.Mutex
	cancelFunc context.CancelFunc
	chDone     chan struct{}
}

// NewNode creates a new Node instance
func NewNode(opts ...Option) (*Node, error) {
	node := &Node{
		roundDuration: defaultRoundDuration,
		systemCalls:   make([]*transaction.Transaction, 0),
	}

	err := node.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if check.IfNil(node.blockProcessor) {
		return nil, ErrNilBlockProcessor
	}
	if check.IfNil(node.offchainWorker) {
		return nil, ErrNilOffchainWorker
	}

	return node, nil
}

// ApplyOptions can set up different configurable options of a Node instance
func (n *Node) ApplyOptions(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			return ErrNilOption
		}
		err := opt(n)
		if err != nil {
			return err
		}
	}

	return nil
}

// SubmitRootCall queues a privileged call for the next produced block
func (n *Node) SubmitRootCall(call transaction.Call) error {
	if call == nil {
		return ErrNilCall
	}

	n.mutSystemCalls.Lock()
	n.systemCalls = append(n.systemCalls, transaction.NewRootTransaction(call))
	n.mutSystemCalls.Unlock()

	log.Debug("root call queued", "call", call.Name())

	return nil
}

func (n *Node) drainSystemCalls() []*transaction.Transaction {
	n.mutSystemCalls.Lock()
	defer n.mutSystemCalls.Unlock()

	calls := n.systemCalls
	n.systemCalls = make([]*transaction.Transaction, 0)

	return calls
}

// NumPendingRootCalls returns the number of privileged calls waiting for the next block
func (n *Node) NumPendingRootCalls() int {
	n.mutSystemCalls.Lock()
	defer n.mutSystemCalls.Unlock()

	return len(n.systemCalls)
}

// ProduceBlock executes the next block and then runs the off-chain worker for it
func (n *Node) ProduceBlock(ctx context.Context) *block.BlockResult {
	n.mutState.Lock()
	height := n.currentHeight + 1
	result := n.blockProcessor.ProcessBlock(height, n.drainSystemCalls())
	n.currentHeight = height
	n.mutState.Unlock()

	outcome := n.offchainWorker.OnBlockFinalized(ctx, height)
	if outcome.ClearSources {
		log.Info("no configured source could be fetched, the sources list will be cleared", "height", height)
		err := n.SubmitRootCall(&transaction.KillFetchCall{})
		log.LogIfError(err)
	}

	return result
}

// CurrentHeight returns the height of the last produced block
func (n *Node) CurrentHeight() uint64 {
	n.mutState.RLock()
	defer n.mutState.RUnlock()

	return n.currentHeight
}

// ReadCommittedState runs the handler while no block is in execution, passing it the height of the
// last produced block
func (n *Node) ReadCommittedState(handler func(currentHeight uint64)) {
	n.mutState.RLock()
	defer n.mutState.RUnlock()

	handler(n.currentHeight)
}

// Start begins producing blocks every round until the context is done or Stop is called
func (n *Node) Start(ctx context.Context) error {
	n.mutRunning.Lock()
	defer n.mutRunning.Unlock()

	if n.cancelFunc != nil {
		return ErrNodeAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	n.cancelFunc = cancel
	n.chDone = make(chan struct{})

	go n.produceBlocks(ctx, n.chDone)
	log.Info("node started", "round duration", n.roundDuration, "height", n.CurrentHeight())

	return nil
}

func (n *Node) produceBlocks(ctx context.Context, chDone chan struct{}) {
	defer close(chDone)

	ticker := time.NewTicker(n.roundDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("node block production stopped")
			return
		case <-ticker.C:
			n.ProduceBlock(ctx)
		}
	}
}

// IsRunning returns true if the node produces blocks
func (n *Node) IsRunning() bool {
	n.mutRunning.Lock()
	defer n.mutRunning.Unlock()

	return n.cancelFunc != nil
}

// Stop halts the block production, waiting for the block in progress to finish
func (n *Node) Stop() error {
	n.mutRunning.Lock()
	defer n.mutRunning.Unlock()

	if n.cancelFunc == nil {
		return ErrNodeNotRunning
	}

	n.cancelFunc()
	<-n.chDone
	n.cancelFunc = nil

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (n *Node) IsInterfaceNil() bool {
	return n == nil
}
