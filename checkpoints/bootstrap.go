package checkpoints

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"

	"github.com/TESTERT-TEST/komodo-daemon/log"
)

// ErrCorruptStore means the persisted checkpoint state cannot be used. The
// operator has to remove the checkpoint storage and restart the node.
var ErrCorruptStore = errors.New("sync checkpoint store corrupted, remove the checkpoint storage and restart")

// BlockIndex is the local block index lookup.
type BlockIndex interface {
	HasBlock(hash common.Hash) bool
}

// Bootstrap owns the startup and rotation lifecycle of the sync checkpoint
// store for one chain. It is constructed once and passed by reference to its
// collaborators; there is no package-level state.
type Bootstrap struct {
	store    *Store
	registry *Registry
	chain    ChainID
	genesis  common.Hash
	index    BlockIndex
	resolver *MasterKeyResolver

	initDone bool // guarded by store.mu

	log          log.Logger
	throttledLog log.ThrottlingLogger

	rotationCounter metrics.Counter
	corruptCounter  metrics.Counter
}

func NewBootstrap(store *Store, registry *Registry, chain ChainID, genesis common.Hash,
	index BlockIndex, resolver *MasterKeyResolver) *Bootstrap {
	logger := log.New("component", "checkpoints")
	return &Bootstrap{
		store:           store,
		registry:        registry,
		chain:           chain,
		genesis:         genesis,
		index:           index,
		resolver:        resolver,
		log:             logger,
		throttledLog:    log.NewThrottlingLogger(logger),
		rotationCounter: metrics.GetOrRegisterCounter("checkpoints/rotations", nil),
		corruptCounter:  metrics.GetOrRegisterCounter("checkpoints/corruptions", nil),
	}
}

// ActivationParams resolves the activation params of the running chain.
func (b *Bootstrap) ActivationParams() (Params, error) {
	return b.registry.ChainParams(b.chain)
}

// IsSyncCheckpointActive reports whether the sync checkpoint mechanism is
// active at the given height and timestamp. Chains without configured params
// are inactive.
func (b *Bootstrap) IsSyncCheckpointActive(height int64, timestamp int64) bool {
	params, err := b.ActivationParams()
	if err != nil {
		b.throttledLog.Debug("Sync checkpoint inactive", "chain", b.chain.Name, "reason", err)
		return false
	}
	active := params.Active(height, timestamp)
	if active {
		b.throttledLog.Debug("Sync checkpoint active", "chain", b.chain.Name, "activeAt", params.ActiveAt)
	}
	return active
}

// OpenAtStartup loads the persisted checkpoint state, bootstrapping an empty
// store with the genesis block and rotating the trust anchor when the
// configured master key changed. The wallet is usually not loaded yet at
// this point, so the signing key is picked up later via TryInit.
func (b *Bootstrap) OpenAtStartup(params Params) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	cp, err := b.store.repo.ReadSyncCheckpoint()
	if err != nil {
		return errors.Wrap(err, "failed to read sync checkpoint")
	}
	if cp == nil {
		if err := b.store.repo.WriteSyncCheckpoint(&SyncCheckpoint{Hash: b.genesis}); err != nil {
			return errors.Wrap(err, "failed to init sync checkpoint store")
		}
		if cp, err = b.store.repo.ReadSyncCheckpoint(); err != nil || cp == nil {
			b.corruptCounter.Inc(1)
			return errors.Wrap(ErrCorruptStore, "cannot re-read bootstrapped checkpoint")
		}
	}

	if !b.index.HasBlock(cp.Hash) {
		b.corruptCounter.Inc(1)
		return errors.Wrapf(ErrCorruptStore, "checkpoint %v not found in block index", cp.Hash.Hex())
	}
	b.log.Info("Using synchronized checkpoint", "hash", cp.Hash.Hex())

	pubKey, err := b.store.repo.ReadCheckpointPubKey()
	if err != nil {
		return errors.Wrap(err, "failed to read checkpoint master key")
	}
	if pubKey != params.MasterPubKey {
		// The signing authority changed, the old trust anchor is void. Both
		// records go in one batch so a crash cannot leave the new key with
		// the old checkpoint.
		b.log.Info("Rotating checkpoint master key", "old", pubKey, "new", params.MasterPubKey)
		cp = &SyncCheckpoint{Hash: b.genesis}
		if err := b.store.repo.Rotate(params.MasterPubKey, cp); err != nil {
			return errors.Wrap(err, "failed to rotate checkpoint master key")
		}
		b.rotationCounter.Inc(1)
	}

	b.store.checkpoint = cp
	return nil
}

// TryInit persists the configured master key and tries to install the
// matching signing key from the wallet. The first successful call wins,
// repeated calls in the same process are no-ops.
func (b *Bootstrap) TryInit(params Params) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if b.initDone {
		return nil
	}
	if err := b.store.repo.WriteCheckpointPubKey(params.MasterPubKey); err != nil {
		return errors.Wrap(err, "failed to write new checkpoint master key")
	}
	b.resolver.TryInstallSigningKey(params.MasterPubKey)
	b.initDone = true
	b.log.Info("Sync checkpoint try init done")
	return nil
}
