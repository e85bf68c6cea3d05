package gomodel

// Package gomodel provides:
//
// - A facade over a plain key-value model with explicit Get/Set/Delete passthrough
// - Dirty tracking of changed keys with clean/restore/update semantics
// - Lazy validation against a JSON Schema document and/or a custom predicate
// - A synchronous "change" notification stream compatible with store-style subscribers
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - The schema engine lives under schema/, the notification primitive under pubsub/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  m, err := gomodel.Wrap(map[string]any{"name": "John", "age": 30})
//  _ = m.Set("name", "Jane")
//  m.Dirty()   // ["name"]
//  m.IsDirty() // true
//  m.Clean()
//
//  doc, _ := schema.ParseJSON(raw)
//  m, _ = gomodel.Wrap(user, gomodel.WithSchema(doc))
//  if !m.IsValid() {
//      for _, is := range m.Errors() { ... }
//  }
