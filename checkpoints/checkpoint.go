package checkpoints

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// SyncCheckpoint is the currently trusted checkpoint block reference.
type SyncCheckpoint struct {
	Hash common.Hash
}

func (cp SyncCheckpoint) String() string {
	return cp.Hash.Hex()
}

// Repo is the persistent store for the checkpoint record and the checkpoint
// master public key. Reads return the zero value without error when no
// record is stored; Rotate applies both records as one unit.
type Repo interface {
	ReadSyncCheckpoint() (*SyncCheckpoint, error)
	WriteSyncCheckpoint(cp *SyncCheckpoint) error
	ReadCheckpointPubKey() (string, error)
	WriteCheckpointPubKey(pubKey string) error
	Rotate(pubKey string, cp *SyncCheckpoint) error
}

// Store owns the in-memory trust anchor and the lock serializing every
// read-modify-write against the persisted records. The networking layer
// applying a newly verified signed checkpoint goes through Accept and
// therefore through the same lock as the startup bootstrap.
type Store struct {
	mu         sync.Mutex
	repo       Repo
	checkpoint *SyncCheckpoint
}

func NewStore(repo Repo) *Store {
	return &Store{repo: repo}
}

// Checkpoint returns the current trust anchor, nil before a successful
// bootstrap.
func (s *Store) Checkpoint() *SyncCheckpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkpoint
}

// Accept persists and installs a newly verified sync checkpoint.
func (s *Store) Accept(cp SyncCheckpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.WriteSyncCheckpoint(&cp); err != nil {
		return errors.Wrap(err, "failed to write sync checkpoint")
	}
	s.checkpoint = &cp
	return nil
}
