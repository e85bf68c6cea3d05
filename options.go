package gomodel

import "github.com/gomodel-dev/gomodel/schema"

// ValidateFunc is the caller-supplied predicate, invoked with the live model.
// A non-nil error contributes exactly one issue at the root path.
type ValidateFunc func(model map[string]any) error

// config is frozen at Wrap time and immutable for the wrapper's lifetime.
type config struct {
	schema   *schema.Document
	validate ValidateFunc
	strict   bool
	engine   *schema.Engine
}

func defaultConfig() config {
	return config{strict: true, engine: schema.Default}
}

// Option configures a wrapper at construction.
type Option func(*config)

// WithSchema attaches a schema document. Compilation is deferred to the
// first validation pass.
func WithSchema(doc *schema.Document) Option {
	return func(c *config) { c.schema = doc }
}

// WithValidate attaches a custom predicate. It runs on every validation
// pass, after the schema stage, regardless of the schema outcome.
func WithValidate(fn ValidateFunc) Option {
	return func(c *config) { c.validate = fn }
}

// WithStrict toggles strict mode. Strict mode (the default) forbids
// introducing new keys and deleting existing ones through the wrapper.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithEngine injects the validator engine handle. Defaults to schema.Default.
func WithEngine(e *schema.Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

// UpdateOpt bundles bulk-update options. When several are passed, the last
// one wins.
type UpdateOpt struct {
	// ResetDirty clears the dirty set after the batch is applied, including
	// keys the batch itself just dirtied.
	ResetDirty bool
}
