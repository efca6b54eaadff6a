package database

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/TESTERT-TEST/komodo-daemon/checkpoints"
)

func TestCheckpointRepo_ReadWriteSyncCheckpoint(t *testing.T) {
	require := require.New(t)
	repo := NewCheckpointRepo(dbm.NewMemDB())

	cp, err := repo.ReadSyncCheckpoint()
	require.NoError(err)
	require.Nil(cp)

	hash := common.HexToHash("0x0a")
	require.NoError(repo.WriteSyncCheckpoint(&checkpoints.SyncCheckpoint{Hash: hash}))

	cp, err = repo.ReadSyncCheckpoint()
	require.NoError(err)
	require.Equal(hash, cp.Hash)
}

func TestCheckpointRepo_ReadWritePubKey(t *testing.T) {
	require := require.New(t)
	repo := NewCheckpointRepo(dbm.NewMemDB())

	pubKey, err := repo.ReadCheckpointPubKey()
	require.NoError(err)
	require.Empty(pubKey)

	require.NoError(repo.WriteCheckpointPubKey("02f9dc5271cc789aab77fb27e8007e681f93135cfcf92d4a514a4649c0e36f14ad"))

	pubKey, err = repo.ReadCheckpointPubKey()
	require.NoError(err)
	require.Equal("02f9dc5271cc789aab77fb27e8007e681f93135cfcf92d4a514a4649c0e36f14ad", pubKey)
}

func TestCheckpointRepo_Rotate(t *testing.T) {
	require := require.New(t)
	repo := NewCheckpointRepo(dbm.NewMemDB())

	require.NoError(repo.WriteCheckpointPubKey("old-key"))
	require.NoError(repo.WriteSyncCheckpoint(&checkpoints.SyncCheckpoint{Hash: common.HexToHash("0x0b")}))

	genesis := common.HexToHash("0x0a")
	require.NoError(repo.Rotate("new-key", &checkpoints.SyncCheckpoint{Hash: genesis}))

	pubKey, err := repo.ReadCheckpointPubKey()
	require.NoError(err)
	require.Equal("new-key", pubKey)

	cp, err := repo.ReadSyncCheckpoint()
	require.NoError(err)
	require.Equal(genesis, cp.Hash)
}
