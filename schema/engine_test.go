package schema_test

import (
	"strings"
	"testing"

	"github.com/gomodel-dev/gomodel/schema"
)

const ageSchemaJSON = `{
	"type": "object",
	"properties": {
		"age": {"type": "number", "minimum": 0}
	}
}`

func TestEngine_CompileCachedByDocumentIdentity(t *testing.T) {
	doc, err := schema.ParseJSON([]byte(ageSchemaJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	e := schema.NewEngine()
	c1, err := e.Compile(doc)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	c2, err := e.Compile(doc)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if c1 != c2 {
		t.Fatalf("expected the cached validator on second compile")
	}

	// A second document with identical content compiles separately.
	doc2, _ := schema.ParseJSON([]byte(ageSchemaJSON))
	c3, err := e.Compile(doc2)
	if err != nil {
		t.Fatalf("compile doc2: %v", err)
	}
	if c3 == c1 {
		t.Fatalf("distinct documents must not share a cache entry")
	}
}

func TestEngine_CompileRejectsNilAndBadDocuments(t *testing.T) {
	e := schema.NewEngine()
	if _, err := e.Compile(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
	bad := schema.FromValue(map[string]any{"type": 12345})
	if _, err := e.Compile(bad); err == nil {
		t.Fatalf("expected compile error for malformed schema")
	}
}

func TestCompiled_ValidateReportsLeafPaths(t *testing.T) {
	doc, _ := schema.ParseJSON([]byte(ageSchemaJSON))
	c, err := schema.NewEngine().Compile(doc)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if errs := c.Validate(map[string]any{"age": 30}); errs != nil {
		t.Fatalf("expected valid instance, got %v", errs)
	}

	errs := c.Validate(map[string]any{"age": -5})
	if len(errs) == 0 {
		t.Fatalf("expected at least one error")
	}
	found := false
	for _, e := range errs {
		if strings.Contains(e.Path, "age") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error addressed at /age, got %v", errs)
	}
}

func TestCompiled_ValidateRootFailureUsesRootPath(t *testing.T) {
	doc, _ := schema.ParseJSON([]byte(`{"type": "object"}`))
	c, err := schema.NewEngine().Compile(doc)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	errs := c.Validate("not an object")
	if len(errs) == 0 {
		t.Fatalf("expected a root failure")
	}
	if errs[0].Path != schema.RootPath {
		t.Fatalf("expected root path %q, got %q", schema.RootPath, errs[0].Path)
	}
}

func TestCompiled_ValidateCanonicalizesGoValues(t *testing.T) {
	doc, _ := schema.ParseJSON([]byte(ageSchemaJSON))
	c, err := schema.NewEngine().Compile(doc)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// int rather than float64: must validate the way its JSON form would.
	if errs := c.Validate(map[string]any{"age": 30}); errs != nil {
		t.Fatalf("expected int to canonicalize, got %v", errs)
	}
	// A value with no JSON form fails at the root instead of panicking.
	errs := c.Validate(map[string]any{"ch": make(chan int)})
	if len(errs) != 1 || errs[0].Path != schema.RootPath {
		t.Fatalf("expected single root error for unencodable instance, got %v", errs)
	}
}

func TestParseYAML_MatchesJSONDocument(t *testing.T) {
	yamlDoc := "type: object\nproperties:\n  age:\n    type: number\n    minimum: 0\n"
	doc, err := schema.ParseYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	c, err := schema.NewEngine().Compile(doc)
	if err != nil {
		t.Fatalf("compile yaml document: %v", err)
	}
	if errs := c.Validate(map[string]any{"age": -1}); len(errs) == 0 {
		t.Fatalf("expected yaml-loaded schema to reject negative age")
	}
}

func TestErrors_ErrorSummary(t *testing.T) {
	es := schema.Errors{{Path: "/age", Message: "must be >= 0"}}
	if es.Error() == "" {
		t.Fatalf("expected non-empty rendering")
	}
	if (schema.Errors{}).Error() != "" {
		t.Fatalf("expected empty rendering for no errors")
	}
}
