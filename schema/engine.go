package schema

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Engine compiles Documents into reusable validators. Compilation is
// expensive and happens once per Document; compiled validators are cached
// for the lifetime of the Engine and never evicted.
type Engine struct {
	mu    sync.Mutex
	cache map[*Document]*Compiled
}

// Default is the process-owned engine handle. Wrappers use it unless an
// explicit Engine is injected at construction.
var Default = NewEngine()

// NewEngine returns an Engine with an empty compile cache.
func NewEngine() *Engine {
	return &Engine{cache: make(map[*Document]*Compiled)}
}

// Compile returns the compiled validator for doc, compiling on first use.
func (e *Engine) Compile(doc *Document) (*Compiled, error) {
	if doc == nil {
		return nil, errors.New("schema: nil document")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.cache[doc]; ok {
		return c, nil
	}

	raw, err := json.Marshal(doc.value)
	if err != nil {
		return nil, fmt.Errorf("schema: encode document: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("model.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	sch, err := c.Compile("model.json")
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	cs := &Compiled{sch: sch}
	e.cache[doc] = cs
	return cs, nil
}

// Compiled is a reusable validator produced by an Engine.
type Compiled struct {
	sch *jsonschema.Schema
}

// Validate checks instance against the schema and returns nil when it
// conforms. The instance is canonicalized through a JSON round-trip first,
// so plain Go values (int, struct leaves, etc.) validate the way their JSON
// form would; an instance that cannot be encoded fails at the root path.
func (c *Compiled) Validate(instance any) Errors {
	canon, err := canonicalize(instance)
	if err != nil {
		return Errors{{Path: RootPath, Message: "instance is not JSON-encodable: " + err.Error()}}
	}
	err = c.sch.Validate(canon)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Errors{{Path: RootPath, Message: err.Error()}}
	}
	var out Errors
	flatten(ve, &out)
	if len(out) == 0 {
		out = append(out, Error{Path: pointer(ve.InstanceLocation), Message: ve.Message})
	}
	return out
}

// flatten walks the cause tree and keeps the leaves, which carry the
// keyword-level messages.
func flatten(ve *jsonschema.ValidationError, out *Errors) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Error{Path: pointer(ve.InstanceLocation), Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		flatten(cause, out)
	}
}

func pointer(loc string) string {
	if loc == "" {
		return RootPath
	}
	return loc
}

func canonicalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
