package explorer

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Integra-layer/chain-id-card/clipboard"
	"github.com/Integra-layer/chain-id-card/events"
	"github.com/Integra-layer/chain-id-card/params"
	"github.com/Integra-layer/chain-id-card/state"
)

type testEnv struct {
	srv   *httptest.Server
	view  *state.Controller
	prefs *state.MemoryPreferences
	cb    *clipboard.MemoryClipboard
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	registry := params.Default()
	bus := events.NewEventBus()
	prefs := state.NewMemoryPreferences()
	cb := &clipboard.MemoryClipboard{}
	view := state.NewController(registry, prefs, state.NewAttributeSet(), bus, zerolog.Nop())
	board := clipboard.NewBoard(cb, 100*time.Millisecond, bus, zerolog.Nop())
	t.Cleanup(board.Stop)

	api := NewExplorerAPI(registry, view, board, bus, zerolog.Nop())
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, view: view, prefs: prefs, cb: cb}
}

func (e *testEnv) getJSON(t *testing.T, path string, out interface{}) *http.Response {
	t.Helper()
	res, err := http.Get(e.srv.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil && res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func (e *testEnv) postJSON(t *testing.T, path, body string, out interface{}) *http.Response {
	t.Helper()
	res, err := http.Post(e.srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil && res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func TestNetworks(t *testing.T) {
	env := newTestEnv(t)

	var nets []networkInfo
	res := env.getJSON(t, "/card/networks", &nets)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, nets, 2)
	require.Equal(t, params.Mainnet, nets[0].ID)
	require.Equal(t, "integra_26218-1", nets[1].ChainID)
}

func TestSpecFollowsSelection(t *testing.T) {
	env := newTestEnv(t)

	var st stateResponse
	res := env.postJSON(t, "/card/state/network", `{"network":"testnet"}`, &st)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, params.Testnet, st.Network)
	require.Equal(t, "testnet", st.Attributes[state.NetworkAttr])

	var spec params.ChainSpec
	env.getJSON(t, "/card/spec", &spec)
	require.Equal(t, "https://ormos.integralayer.com/cometbft", spec.Endpoints.RPC)

	env.postJSON(t, "/card/state/network", `{"network":"mainnet"}`, nil)
	env.getJSON(t, "/card/spec", &spec)
	require.Equal(t, "https://rpc.integralayer.com", spec.Endpoints.RPC)
}

func TestSelectUnknownNetworkIsNoop(t *testing.T) {
	env := newTestEnv(t)

	res := env.postJSON(t, "/card/state/network", `{"network":"devnet"}`, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, params.Mainnet, env.view.State().Network)

	res = env.postJSON(t, "/card/state/network", `{"network":"TESTNET"}`, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	res = env.postJSON(t, "/card/state/network", `{"network":" testnet "}`, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, params.Mainnet, env.view.State().Network)

	res = env.postJSON(t, "/card/state/network", `not json`, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSpecByNetwork(t *testing.T) {
	env := newTestEnv(t)

	var spec params.ChainSpec
	res := env.getJSON(t, "/card/spec/testnet", &spec)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.EqualValues(t, 26218, spec.Network.EVMChainID)
	require.Len(t, spec.Precompiles, 9)

	res = env.getJSON(t, "/card/spec/devnet", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	res = env.getJSON(t, "/card/spec/Testnet", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSpecETag(t *testing.T) {
	env := newTestEnv(t)

	res := env.getJSON(t, "/card/spec/mainnet", nil)
	etag := res.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/card/spec/mainnet", nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusNotModified, res.StatusCode)

	other := env.getJSON(t, "/card/spec/testnet", nil)
	require.NotEqual(t, etag, other.Header.Get("ETag"))
}

func TestSectionsAndStats(t *testing.T) {
	env := newTestEnv(t)

	var sections []struct {
		ID string `json:"id"`
	}
	env.getJSON(t, "/card/sections/mainnet", &sections)
	require.Len(t, sections, 7)
	require.Equal(t, "identity", sections[0].ID)

	var stats []params.Stat
	env.getJSON(t, "/card/stats/testnet", &stats)
	require.Equal(t, "26218", stats[0].Value)
}

func TestToggleThemePersists(t *testing.T) {
	env := newTestEnv(t)

	var st stateResponse
	env.postJSON(t, "/card/state/theme", ``, &st)
	require.Equal(t, state.Dark, st.Theme)
	require.Equal(t, "dark", st.Attributes[state.ThemeAttr])
	require.Equal(t, 1, env.prefs.Writes())

	env.postJSON(t, "/card/state/theme", ``, &st)
	require.Equal(t, state.Light, st.Theme)
	require.Equal(t, 2, env.prefs.Writes())
}

func TestCopy(t *testing.T) {
	env := newTestEnv(t)
	addr := "0x0000000000000000000000000000000000000800"

	var cr copyResponse
	res := env.postJSON(t, "/card/copy", `{"text":"`+addr+`"}`, &cr)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, cr.Acknowledged)
	require.Equal(t, clipboard.LabelAcknowledged, cr.Label)
	require.Eventually(t, func() bool { return env.cb.Last() == addr }, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		res, err := http.Get(env.srv.URL + "/card/copy?text=" + addr)
		if err != nil {
			return false
		}
		defer res.Body.Close()
		var status copyResponse
		if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
			return false
		}
		return !status.Acknowledged && status.Label == clipboard.LabelIdle
	}, time.Second, 10*time.Millisecond)
}

func TestCopyRejectsUnknownText(t *testing.T) {
	env := newTestEnv(t)

	res := env.postJSON(t, "/card/copy", `{"text":"rm -rf /"}`, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Zero(t, env.cb.Writes())

	res = env.getJSON(t, "/card/copy", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestStream(t *testing.T) {
	env := newTestEnv(t)

	res, err := http.Get(env.srv.URL + "/card/stream")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	env.view.Select("testnet")

	reader := bufio.NewReader(res.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "event: network.selected\n", line)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))

	var ev events.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
	require.Equal(t, "testnet", ev.Network)
}
