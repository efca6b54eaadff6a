package checkpoints

import (
	"github.com/pkg/errors"
)

// LocktimeThreshold separates block heights from unix timestamps, the same
// constant consensus code uses for nLockTime. An activation value below it
// is a height, otherwise a timestamp. Part of cross-node determinism, do not
// change.
const LocktimeThreshold = 500000000

// Activation thresholds. The primary network activates by height, asset
// chains by timestamp.
const (
	syncChkPointHeight            = 4930000
	syncChkPointTimestamp         = 1755000000 // Aug 12 2025
	bczeroRaphMdxSyncChkTimestamp = 1758000000 // Sep 16 2025
	guldenSyncChkTimestamp        = 1764606619 // Dec 01 2025
)

const defaultMasterPubKey = "03fdc6ca526c0cfaed2211d03dc2ea9c083aea127c7769d97dc92fed2085803ce3"

var (
	// ErrChainNotInitialized means the chain name has not been set yet, e.g.
	// the node has not finished parsing its chain selection. Callers should
	// retry later.
	ErrChainNotInitialized = errors.New("chain name not initialised yet")
	// ErrChainUnknown means the asset chain has no sync checkpoint params.
	ErrChainUnknown = errors.New("no sync checkpoint params for chain")
	// ErrParamsUnset means the mainnet or testnet slot is not configured.
	ErrParamsUnset = errors.New("sync checkpoint params not set for network")
)

// Params is one chain's activation parameter set. ActiveAt is a block height
// when below LocktimeThreshold, a unix timestamp otherwise. Immutable.
type Params struct {
	ActiveAt     int64
	MasterPubKey string
}

// Active reports whether the sync checkpoint mechanism is active at the
// given height and timestamp. The comparison is strictly greater in both
// branches, same convention as season activation, so the boundary value
// itself is inactive.
func (p Params) Active(height int64, timestamp int64) bool {
	if p.ActiveAt < LocktimeThreshold {
		return height > p.ActiveAt
	}
	return timestamp > p.ActiveAt
}

// OptionalParams is a Params slot that may be left unconfigured.
type OptionalParams struct {
	params Params
	set    bool
}

func SomeParams(p Params) OptionalParams {
	return OptionalParams{params: p, set: true}
}

// ChainID identifies the running chain. Name is empty until chain selection
// has been parsed; Primary marks the primary network rather than an asset
// chain.
type ChainID struct {
	Name    string
	Primary bool
	Testnet bool
}

// Registry maps chain names to activation params. It is built once at
// process start and never mutated afterwards.
type Registry struct {
	assetChains map[string]Params
	mainnet     OptionalParams
	testnet     OptionalParams
}

func NewRegistry(mainnet, testnet OptionalParams, assetChains map[string]Params) *Registry {
	chains := make(map[string]Params, len(assetChains))
	for name, params := range assetChains {
		chains[name] = params
	}
	return &Registry{
		assetChains: chains,
		mainnet:     mainnet,
		testnet:     testnet,
	}
}

// DefaultRegistry returns the production activation table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		SomeParams(Params{syncChkPointHeight, defaultMasterPubKey}),
		OptionalParams{},
		map[string]Params{
			"CCL":    {syncChkPointTimestamp, defaultMasterPubKey},
			"CLC":    {syncChkPointTimestamp, defaultMasterPubKey},
			"GLEEC":  {syncChkPointTimestamp, defaultMasterPubKey},
			"THC":    {syncChkPointTimestamp, defaultMasterPubKey},
			"BCZERO": {bczeroRaphMdxSyncChkTimestamp, defaultMasterPubKey},
			"RAPH":   {bczeroRaphMdxSyncChkTimestamp, defaultMasterPubKey},
			"MDX":    {bczeroRaphMdxSyncChkTimestamp, defaultMasterPubKey},

			// test chains
			"DOC":   {syncChkPointTimestamp, defaultMasterPubKey},
			"MARTY": {syncChkPointTimestamp, defaultMasterPubKey},

			// auto checkpoint active since Dec, 01 2025
			"GULDEN": {guldenSyncChkTimestamp, "02f9dc5271cc789aab77fb27e8007e681f93135cfcf92d4a514a4649c0e36f14ad"},
		},
	)
}

func (r *Registry) AssetParams(chain string) (Params, bool) {
	params, ok := r.assetChains[chain]
	return params, ok
}

func (r *Registry) MainnetParams() (Params, bool) {
	return r.mainnet.params, r.mainnet.set
}

func (r *Registry) TestnetParams() (Params, bool) {
	return r.testnet.params, r.testnet.set
}

// ChainParams resolves the activation params applicable to the given chain
// identity. All failures are soft: the mechanism is simply inactive.
func (r *Registry) ChainParams(id ChainID) (Params, error) {
	if id.Name == "" {
		return Params{}, ErrChainNotInitialized
	}
	if id.Primary {
		if id.Testnet {
			if params, ok := r.TestnetParams(); ok {
				return params, nil
			}
			return Params{}, ErrParamsUnset
		}
		if params, ok := r.MainnetParams(); ok {
			return params, nil
		}
		return Params{}, ErrParamsUnset
	}
	if params, ok := r.AssetParams(id.Name); ok {
		return params, nil
	}
	return Params{}, ErrChainUnknown
}
