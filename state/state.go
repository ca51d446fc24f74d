package state

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Integra-layer/chain-id-card/events"
	"github.com/Integra-layer/chain-id-card/params"
)

// Attribute names under which the active selection is exposed to the
// presentation layer.
const (
	NetworkAttr = "data-network"
	ThemeAttr   = "data-theme"
)

// ViewState is the selection a session renders.
type ViewState struct {
	Network params.NetworkID `json:"network"`
	Theme   Theme            `json:"theme"`
}

// Marker exposes attributes of the active view to the presentation layer,
// for example as document-level attributes.
type Marker interface {
	Mark(name, value string)
}

type MarkerFunc func(name, value string)

func (f MarkerFunc) Mark(name, value string) { f(name, value) }

// AttributeSet is a Marker that remembers the last value per attribute.
type AttributeSet struct {
	mu    sync.RWMutex
	attrs map[string]string
}

func NewAttributeSet() *AttributeSet {
	return &AttributeSet{attrs: make(map[string]string)}
}

func (a *AttributeSet) Mark(name, value string) {
	a.mu.Lock()
	a.attrs[name] = value
	a.mu.Unlock()
}

func (a *AttributeSet) Snapshot() map[string]string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[string]string, len(a.attrs))
	for k, v := range a.attrs {
		out[k] = v
	}
	return out
}

// ------------------------------------------------------------
// CONTROLLER
// ------------------------------------------------------------

// Controller owns the view state of one session. Select and ToggleTheme are
// the only mutations; reading the active specification is a pure registry
// lookup.
type Controller struct {
	mu       sync.RWMutex
	state    ViewState
	registry *params.Registry
	prefs    Preferences
	marker   Marker
	bus      *events.EventBus
	logger   zerolog.Logger
}

// NewController starts a session on mainnet with the light theme, unless a
// valid theme was persisted earlier. prefs, marker and bus may be nil.
func NewController(registry *params.Registry, prefs Preferences, marker Marker, bus *events.EventBus, logger zerolog.Logger) *Controller {
	c := &Controller{
		state:    ViewState{Network: params.Mainnet, Theme: Light},
		registry: registry,
		prefs:    prefs,
		marker:   marker,
		bus:      bus,
		logger:   logger.With().Str("component", "view_state").Logger(),
	}

	if prefs != nil {
		stored, ok, err := prefs.Get(ThemeKey)
		switch {
		case err != nil:
			c.logger.Warn().Err(err).Msg("could not read theme preference")
		case ok:
			theme, err := ParseTheme(stored)
			if err != nil {
				c.logger.Warn().Str("theme", stored).Msg("ignoring invalid theme preference")
				break
			}
			c.state.Theme = theme
		}
	}

	c.mark(NetworkAttr, c.state.Network.String())
	c.mark(ThemeAttr, c.state.Theme.String())

	return c
}

func (c *Controller) State() ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Spec returns the specification of the selected network.
func (c *Controller) Spec() params.ChainSpec {
	return c.registry.Get(c.State().Network)
}

// Attributes returns the attribute view of the current state.
func (c *Controller) Attributes() map[string]string {
	st := c.State()
	return map[string]string{
		NetworkAttr: st.Network.String(),
		ThemeAttr:   st.Theme.String(),
	}
}

// Select switches to the named network. Values outside the network domain
// leave the state untouched and return false.
func (c *Controller) Select(network string) bool {
	n, err := params.ParseNetwork(network)
	if err != nil {
		c.logger.Debug().Str("network", network).Msg("ignoring unknown network")
		return false
	}
	return c.SelectNetwork(n)
}

func (c *Controller) SelectNetwork(n params.NetworkID) bool {
	if _, ok := c.registry.Lookup(n); !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Network = n
	c.mark(NetworkAttr, n.String())
	c.bus.Publish(events.Event{Kind: events.NetworkSelected, Network: n.String(), Theme: c.state.Theme.String()})

	c.logger.Debug().Str("network", n.String()).Msg("network selected")
	return true
}

// ToggleTheme flips the theme, persists it once and marks it for the
// presentation layer. A failed write is logged; the toggle still applies.
func (c *Controller) ToggleTheme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Theme = c.state.Theme.Toggle()
	theme := c.state.Theme

	if c.prefs != nil {
		if err := c.prefs.Put(ThemeKey, theme.String()); err != nil {
			c.logger.Error().Err(err).Str("theme", theme.String()).Msg("could not persist theme")
		}
	}
	c.mark(ThemeAttr, theme.String())
	c.bus.Publish(events.Event{Kind: events.ThemeToggled, Network: c.state.Network.String(), Theme: theme.String()})

	c.logger.Debug().Str("theme", theme.String()).Msg("theme toggled")
	return theme
}

func (c *Controller) mark(name, value string) {
	if c.marker != nil {
		c.marker.Mark(name, value)
	}
}
