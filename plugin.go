package correlator

import (
	"github.com/observekit/correlator/capture"
	"github.com/roadrunner-server/endure/v2/dep"
	"github.com/roadrunner-server/errors"
)

const pluginName string = "correlator"

type Configurer interface {
	// UnmarshalKey takes a single key and unmarshal it into a Struct.
	UnmarshalKey(name string, out any) error

	// Has checks if config section exists.
	Has(name string) bool
}

// Correlator is the read-only query surface provided to dependent plugins.
type Correlator interface {
	Query(capture.Token) capture.Events
	All() capture.Events
}

type Plugin struct {
	cfg   *capture.Config
	store *capture.Store
}

func (p *Plugin) Init(cfg Configurer) error {
	const op = errors.Op("correlator_plugin_init")

	if !cfg.Has(pluginName) {
		return errors.E(op, errors.Disabled)
	}

	conf := &capture.Config{}
	err := cfg.UnmarshalKey(pluginName, conf)
	if err != nil {
		return errors.E(op, err)
	}

	err = conf.InitDefault()
	if err != nil {
		return errors.E(op, err)
	}

	p.cfg = conf
	return nil
}

func (p *Plugin) Serve() chan error {
	if *p.cfg.ReplaceGlobal {
		p.store = capture.Initialize(capture.WithCapacity(p.cfg.Capacity))
	} else {
		p.store = capture.NewStore(capture.WithCapacity(p.cfg.Capacity))
	}
	return make(chan error, 1)
}

func (p *Plugin) Stop() error {
	if p.cfg != nil && *p.cfg.ReplaceGlobal {
		capture.Shutdown()
	}
	return nil
}

func (p *Plugin) Name() string {
	return pluginName
}

func (p *Plugin) Weight() uint {
	return 100
}

func (p *Plugin) Provides() []*dep.Out {
	return []*dep.Out{
		dep.Bind((*Correlator)(nil), p.ProvideStore),
	}
}

func (p *Plugin) ProvideStore() *capture.Store {
	return p.store
}
