package molview

import "github.com/gogpu/gg"

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := molview.NewBondRenderer(scene,
//	    molview.WithConfig(cfg),
//	    molview.WithTransform(gg.Translate(20, 280).Multiply(gg.Scale(40, -40))),
//	)
type Option func(*options)

type options struct {
	config    Config
	transform gg.Matrix
}

func defaultOptions() options {
	return options{
		config:    DefaultConfig(),
		transform: gg.Identity(),
	}
}

// WithConfig replaces the default configuration.
// The configuration is validated by the renderer constructor.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithTransform sets the initial model-to-screen transform.
func WithTransform(m gg.Matrix) Option {
	return func(o *options) {
		o.transform = m
	}
}
