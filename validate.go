package gomodel

// doValidate runs one validation pass against the current model: the schema
// stage (when configured) then the custom predicate (when configured). Both
// stages always run; their results are merged. There is no short-circuit.
func (m *Model) doValidate() Issues {
	iss := Issues{}
	if m.cfg.schema != nil {
		compiled, err := m.cfg.engine.Compile(m.cfg.schema)
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: RootPath, Code: CodeInvalidSchema, Message: err.Error()})
		} else {
			for _, e := range compiled.Validate(m.data) {
				iss = AppendIssues(iss, Issue{Path: e.Path, Code: CodeSchemaViolation, Message: e.Message})
			}
		}
	}
	if m.cfg.validate != nil {
		if err := m.cfg.validate(m.data); err != nil {
			iss = AppendIssues(iss, Issue{Path: RootPath, Code: CodeCustomRule, Message: err.Error()})
		}
	}
	return iss
}

// IsValid runs a full validation pass, refreshes the last-errors snapshot
// and returns the outcome. It never fails: with neither schema nor
// predicate configured the model is trivially valid.
func (m *Model) IsValid() bool {
	m.last = m.doValidate()
	return len(m.last) == 0
}

// Validate runs a full validation pass and makes failure fatal: an invalid
// model comes back as *ValidationError carrying every issue of the pass.
// Calling it with neither schema nor predicate configured returns
// ErrNoValidation. A valid model returns nil and nothing else happens; in
// particular no notification is published.
func (m *Model) Validate() error {
	if m.cfg.schema == nil && m.cfg.validate == nil {
		return ErrNoValidation
	}
	m.last = m.doValidate()
	if len(m.last) > 0 {
		return &ValidationError{Issues: m.last}
	}
	return nil
}

// Errors returns the issues from the most recent validation pass, empty if
// validation never ran or the last pass succeeded. The slice is a copy.
func (m *Model) Errors() Issues {
	return append(Issues{}, m.last...)
}
