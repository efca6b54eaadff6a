package checkpoints

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(
		SomeParams(Params{100, "mainnet-key"}),
		OptionalParams{},
		map[string]Params{
			"GULDEN": {1764606619, "gulden-key"},
			"THC":    {200, "thc-key"},
		},
	)
}

func TestRegistry_ChainParams(t *testing.T) {
	require := require.New(t)
	r := testRegistry()

	params, err := r.ChainParams(ChainID{Name: "GULDEN"})
	require.NoError(err)
	require.Equal(Params{1764606619, "gulden-key"}, params)

	params, err = r.ChainParams(ChainID{Name: "KMD", Primary: true})
	require.NoError(err)
	require.Equal(Params{100, "mainnet-key"}, params)
}

func TestRegistry_ChainParams_UnknownChain(t *testing.T) {
	r := testRegistry()

	_, err := r.ChainParams(ChainID{Name: "UNKNOWN"})
	require.Equal(t, ErrChainUnknown, err)
}

func TestRegistry_ChainParams_NotInitialized(t *testing.T) {
	r := testRegistry()

	_, err := r.ChainParams(ChainID{})
	require.Equal(t, ErrChainNotInitialized, err)
}

func TestRegistry_ChainParams_TestnetUnset(t *testing.T) {
	r := testRegistry()

	_, err := r.ChainParams(ChainID{Name: "KMD", Primary: true, Testnet: true})
	require.Equal(t, ErrParamsUnset, err)
}

func TestParams_Active_ByHeight(t *testing.T) {
	require := require.New(t)
	params := Params{ActiveAt: 100}

	require.True(params.Active(101, 0))
	require.False(params.Active(100, 0))
	require.False(params.Active(99, 0))
	// timestamp does not matter for a height threshold
	require.False(params.Active(100, 1764606620))
}

func TestParams_Active_ByTimestamp(t *testing.T) {
	require := require.New(t)
	params := Params{ActiveAt: 1764606619}

	require.True(params.Active(1, 1764606620))
	require.False(params.Active(1, 1764606619))
	require.False(params.Active(1, 1764606000))
	// height does not matter for a timestamp threshold
	require.False(params.Active(10000000, 1764606619))
}

func TestParams_Active_ThresholdBoundary(t *testing.T) {
	require := require.New(t)

	// the largest height-based value
	params := Params{ActiveAt: LocktimeThreshold - 1}
	require.True(params.Active(LocktimeThreshold, 0))
	require.False(params.Active(LocktimeThreshold-1, LocktimeThreshold+1))

	// the smallest timestamp-based value
	params = Params{ActiveAt: LocktimeThreshold}
	require.True(params.Active(0, LocktimeThreshold+1))
	require.False(params.Active(LocktimeThreshold+1, LocktimeThreshold))
}

func TestDefaultRegistry(t *testing.T) {
	require := require.New(t)
	r := DefaultRegistry()

	params, ok := r.AssetParams("GULDEN")
	require.True(ok)
	require.Equal(int64(1764606619), params.ActiveAt)

	_, ok = r.MainnetParams()
	require.True(ok)
	_, ok = r.TestnetParams()
	require.False(ok)

	for _, chain := range []string{"CCL", "CLC", "GLEEC", "THC", "BCZERO", "RAPH", "MDX", "DOC", "MARTY"} {
		params, ok := r.AssetParams(chain)
		require.True(ok, chain)
		require.True(params.ActiveAt >= LocktimeThreshold, chain)
	}
}
