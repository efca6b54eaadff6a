package checkpoints

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/TESTERT-TEST/komodo-daemon/log"
	"github.com/TESTERT-TEST/komodo-daemon/secstore"
)

// Wallet locates the private key matching a compressed public key. The
// wallet serializes access under its own lock.
type Wallet interface {
	FindPrivateKey(pubKey []byte) (*ecdsa.PrivateKey, bool)
}

// MasterKeyResolver installs the checkpoint signing key from the wallet when
// this node owns it. A node without the key stays validate-only, that is not
// an error.
type MasterKeyResolver struct {
	wallet   Wallet
	secStore *secstore.SecStore
	log      log.Logger
}

func NewMasterKeyResolver(wallet Wallet, secStore *secstore.SecStore) *MasterKeyResolver {
	return &MasterKeyResolver{
		wallet:   wallet,
		secStore: secStore,
		log:      log.New("component", "checkpoints"),
	}
}

// TryInstallSigningKey looks up the private key for masterPubKey and installs
// it as the active checkpoint signing key. Reports whether the key is
// installed.
func (r *MasterKeyResolver) TryInstallSigningKey(masterPubKey string) bool {
	if r.secStore.HasKey() {
		return true
	}
	if r.wallet == nil {
		return false
	}
	pubKey, err := hex.DecodeString(masterPubKey)
	if err != nil {
		r.log.Warn("Cannot decode checkpoint master pubkey", "pubKey", masterPubKey, "err", err)
		return false
	}
	if _, err := crypto.DecompressPubkey(pubKey); err != nil {
		r.log.Warn("Invalid checkpoint master pubkey", "pubKey", masterPubKey, "err", err)
		return false
	}
	key, ok := r.wallet.FindPrivateKey(pubKey)
	if !ok {
		return false
	}
	r.secStore.AddKey(crypto.FromECDSA(key))
	r.log.Info("Sync checkpoint master key set", "pubKey", masterPubKey)
	return true
}
