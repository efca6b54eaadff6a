package secstore

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// SecStore keeps the sync checkpoint signing key in locked memory. A node
// without the key never gets one installed and stays validate-only.
type SecStore struct {
	buffer *memguard.LockedBuffer
}

func NewSecStore() *SecStore {
	s := &SecStore{}
	memguard.CatchSignal(func(signal os.Signal) {
		fmt.Println("Memguard: interrupt signal received. Exiting...")
		s.Destroy()
	}, os.Interrupt)
	return s
}

// AddKey installs a raw secp256k1 private key as the checkpoint signing key.
func (s *SecStore) AddKey(secret []byte) {
	buffer := memguard.NewBufferFromBytes(secret)
	s.buffer = buffer
}

func (s *SecStore) HasKey() bool {
	return s.buffer != nil
}

// SignCheckpoint signs a checkpoint block hash with the installed key.
func (s *SecStore) SignCheckpoint(hash common.Hash) ([]byte, error) {
	if s.buffer == nil {
		return nil, errors.New("checkpoint signing key is not set")
	}
	sec, err := crypto.ToECDSA(s.buffer.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "invalid checkpoint signing key")
	}
	return crypto.Sign(hash[:], sec)
}

// MasterPubKey returns the compressed public key of the installed signing key.
func (s *SecStore) MasterPubKey() []byte {
	sec, _ := crypto.ToECDSA(s.buffer.Bytes())
	return crypto.CompressPubkey(&sec.PublicKey)
}

func (s *SecStore) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
}
