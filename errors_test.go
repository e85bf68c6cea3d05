package gomodel_test

import (
	"errors"
	"strings"
	"testing"

	gomodel "github.com/gomodel-dev/gomodel"
	"github.com/gomodel-dev/gomodel/i18n"
)

func TestIssues_ErrorSummaryTruncates(t *testing.T) {
	iss := gomodel.Issues{
		{Path: "/a", Code: gomodel.CodeSchemaViolation},
		{Path: "/b", Code: gomodel.CodeSchemaViolation},
		{Path: "/c", Code: gomodel.CodeSchemaViolation},
		{Path: "/d", Code: gomodel.CodeCustomRule},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty summary")
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected the total count in the summary, got %q", s)
	}
	if (gomodel.Issues{}).Error() != "" {
		t.Fatalf("empty issues render empty")
	}
}

func TestAppendIssues_InitializesDestination(t *testing.T) {
	iss := gomodel.AppendIssues(nil, gomodel.Issue{Path: "/", Code: gomodel.CodeCustomRule})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", iss)
	}
}

func TestTypedErrors_NameTheOffendingKey(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&gomodel.NameCollisionError{Key: "$dirty"}, "$dirty"},
		{&gomodel.ReservedPropertyError{Key: "$update"}, "$update"},
		{&gomodel.UnknownPropertyError{Key: "nickname"}, "nickname"},
		{&gomodel.StrictModeError{Op: "delete", Key: "name"}, "name"},
	}
	for _, tc := range cases {
		if msg := tc.err.Error(); !strings.Contains(msg, tc.want) {
			t.Fatalf("expected %T message to name %q, got %q", tc.err, tc.want, msg)
		}
	}
}

func TestValidationError_FixedSummary(t *testing.T) {
	err := &gomodel.ValidationError{Issues: gomodel.Issues{
		{Path: "/age", Code: gomodel.CodeSchemaViolation, Message: "must be >= 0"},
	}}
	if msg := err.Error(); !strings.Contains(msg, "model validation failed") {
		t.Fatalf("expected the fixed summary, got %q", msg)
	}
	if iss, ok := gomodel.AsIssues(err); !ok || len(iss) != 1 {
		t.Fatalf("expected AsIssues to reach the list, got %v", iss)
	}
}

func TestErrNoValidation_UsesTranslator(t *testing.T) {
	if msg := gomodel.ErrNoValidation.Error(); !strings.Contains(msg, "no schema and no validate function configured") {
		t.Fatalf("expected the english message, got %q", msg)
	}

	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if msg := gomodel.ErrNoValidation.Error(); strings.Contains(msg, "no schema") {
		t.Fatalf("expected a translated message, got %q", msg)
	}

	// Identity semantics survive the translation indirection.
	m, err := gomodel.Wrap(map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if verr := m.Validate(); !errors.Is(verr, gomodel.ErrNoValidation) {
		t.Fatalf("expected ErrNoValidation, got %v", verr)
	}
}

func TestReservedNames_CoverTheWholeSurface(t *testing.T) {
	names := gomodel.ReservedNames()
	if len(names) != 11 {
		t.Fatalf("expected 11 reserved names, got %d: %v", len(names), names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
		if !gomodel.IsReserved(n) {
			t.Fatalf("IsReserved must accept %q", n)
		}
	}
	if !seen["subscribe"] {
		t.Fatalf("subscribe is reserved even without the marker")
	}
	if gomodel.IsReserved("name") {
		t.Fatalf("ordinary keys are not reserved")
	}
}
