package database

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"

	"github.com/TESTERT-TEST/komodo-daemon/checkpoints"
)

var (
	syncCheckpointKey   = []byte("sync-checkpoint")
	checkpointPubKeyKey = []byte("checkpoint-pub-key")
)

// CheckpointRepo persists the sync checkpoint record and the checkpoint
// master public key.
type CheckpointRepo struct {
	db dbm.DB
}

func NewCheckpointRepo(db dbm.DB) *CheckpointRepo {
	return &CheckpointRepo{db: db}
}

// ReadSyncCheckpoint returns the persisted checkpoint, nil when none is
// stored.
func (r *CheckpointRepo) ReadSyncCheckpoint() (*checkpoints.SyncCheckpoint, error) {
	data, err := r.db.Get(syncCheckpointKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sync checkpoint")
	}
	if data == nil {
		return nil, nil
	}
	cp := new(checkpoints.SyncCheckpoint)
	if err := rlp.DecodeBytes(data, cp); err != nil {
		return nil, errors.Wrap(err, "failed to decode sync checkpoint")
	}
	return cp, nil
}

func (r *CheckpointRepo) WriteSyncCheckpoint(cp *checkpoints.SyncCheckpoint) error {
	data, err := rlp.EncodeToBytes(cp)
	if err != nil {
		return errors.Wrap(err, "failed to encode sync checkpoint")
	}
	return r.db.SetSync(syncCheckpointKey, data)
}

// ReadCheckpointPubKey returns the persisted master pub key, empty when none
// is stored.
func (r *CheckpointRepo) ReadCheckpointPubKey() (string, error) {
	data, err := r.db.Get(checkpointPubKeyKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to read checkpoint pub key")
	}
	return string(data), nil
}

func (r *CheckpointRepo) WriteCheckpointPubKey(pubKey string) error {
	return r.db.SetSync(checkpointPubKeyKey, []byte(pubKey))
}

// Rotate persists a new master pub key together with the reset checkpoint in
// one batch. Partial application would leave the store trusting a checkpoint
// signed by a discarded key.
func (r *CheckpointRepo) Rotate(pubKey string, cp *checkpoints.SyncCheckpoint) error {
	data, err := rlp.EncodeToBytes(cp)
	if err != nil {
		return errors.Wrap(err, "failed to encode sync checkpoint")
	}
	b := r.db.NewBatch()
	defer b.Close()
	b.Set(checkpointPubKeyKey, []byte(pubKey))
	b.Set(syncCheckpointKey, data)
	return b.WriteSync()
}
