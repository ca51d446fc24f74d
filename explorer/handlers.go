package explorer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/crypto/blake2b"

	"github.com/Integra-layer/chain-id-card/card"
	"github.com/Integra-layer/chain-id-card/clipboard"
	"github.com/Integra-layer/chain-id-card/params"
	"github.com/Integra-layer/chain-id-card/state"
)

// Utility responses
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeCached encodes data once and serves it with a content-hash ETag, so
// clients re-polling an unchanged network get 304s.
func writeCached(w http.ResponseWriter, r *http.Request, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not encode response")
		return
	}
	sum := blake2b.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`

	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(body, '\n'))
}

// network resolves the {network} path value, falling back to the active
// selection when the route has none.
func (api *ExplorerAPI) network(w http.ResponseWriter, r *http.Request) (params.NetworkID, bool) {
	raw := r.PathValue("network")
	if raw == "" {
		return api.View.State().Network, true
	}
	n, err := params.ParseNetwork(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return n, true
}

type networkInfo struct {
	ID         params.NetworkID `json:"id"`
	ChainID    string           `json:"chainId"`
	EVMChainID uint64           `json:"evmChainId"`
	Status     string           `json:"status"`
}

// ------------------------------------------------------------
// 1. /card/networks
// ------------------------------------------------------------
func (api *ExplorerAPI) handleNetworks(w http.ResponseWriter, r *http.Request) {
	out := []networkInfo{}
	for _, n := range api.Registry.Networks() {
		spec := api.Registry.Get(n)
		out = append(out, networkInfo{
			ID:         n,
			ChainID:    spec.Network.ChainID,
			EVMChainID: spec.Network.EVMChainID,
			Status:     spec.Network.Status,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------------------------------------
// 2. /card/spec/{network}
// ------------------------------------------------------------
func (api *ExplorerAPI) handleSpec(w http.ResponseWriter, r *http.Request) {
	n, ok := api.network(w, r)
	if !ok {
		return
	}
	writeCached(w, r, api.Registry.Get(n))
}

// ------------------------------------------------------------
// 3. /card/sections/{network}
// ------------------------------------------------------------
func (api *ExplorerAPI) handleSections(w http.ResponseWriter, r *http.Request) {
	n, ok := api.network(w, r)
	if !ok {
		return
	}
	writeCached(w, r, card.Render(api.Registry.Get(n)))
}

// ------------------------------------------------------------
// 4. /card/stats/{network}
// ------------------------------------------------------------
func (api *ExplorerAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	n, ok := api.network(w, r)
	if !ok {
		return
	}
	writeCached(w, r, api.Registry.Get(n).QuickStats())
}

// ------------------------------------------------------------
// 5. /card/state
// ------------------------------------------------------------

type stateResponse struct {
	state.ViewState
	Attributes map[string]string `json:"attributes"`
}

func (api *ExplorerAPI) stateResponse() stateResponse {
	return stateResponse{ViewState: api.View.State(), Attributes: api.View.Attributes()}
}

func (api *ExplorerAPI) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.stateResponse())
}

func (api *ExplorerAPI) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Network string `json:"network"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !api.View.Select(req.Network) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown network %q", req.Network))
		return
	}
	writeJSON(w, http.StatusOK, api.stateResponse())
}

func (api *ExplorerAPI) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	api.View.ToggleTheme()
	writeJSON(w, http.StatusOK, api.stateResponse())
}

// ------------------------------------------------------------
// 6. /card/copy
// ------------------------------------------------------------

type copyResponse struct {
	Text         string `json:"text"`
	Acknowledged bool   `json:"acknowledged"`
	Label        string `json:"label"`
}

func (api *ExplorerAPI) copyResponse(text string) copyResponse {
	acked := api.Copies.Acknowledged(text)
	label := clipboard.LabelIdle
	if acked {
		label = clipboard.LabelAcknowledged
	}
	return copyResponse{Text: text, Acknowledged: acked, Label: label}
}

func (api *ExplorerAPI) handleCopy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := api.targets[req.Text]; !ok {
		writeError(w, http.StatusBadRequest, "not a copyable value")
		return
	}
	api.Copies.Copy(req.Text)
	writeJSON(w, http.StatusOK, api.copyResponse(req.Text))
}

func (api *ExplorerAPI) handleCopyStatus(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}
	writeJSON(w, http.StatusOK, api.copyResponse(text))
}

// ------------------------------------------------------------
// 7. /card/stream  (SSE)
// ------------------------------------------------------------
func (api *ExplorerAPI) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// subscribe before the headers go out so no event after them is missed
	ch, cancel := api.Events.Subscribe()
	defer cancel()
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			data, _ := json.Marshal(ev)
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, data)
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}
