package domain

import "strings"

// TerminalSpec is a single filter predicate over terminals. A list of specs
// is combined with AND. Storage adapters translate each concrete spec into
// their own query language; Matches is the reference semantics.
type TerminalSpec interface {
	Matches(t *Terminal) bool
}

// SearchSpec matches a case-insensitive substring of the service name or the
// shop id.
type SearchSpec struct {
	Term string
}

func (s SearchSpec) Matches(t *Terminal) bool {
	term := strings.ToLower(s.Term)
	return strings.Contains(strings.ToLower(t.ServiceName), term) ||
		strings.Contains(strings.ToLower(t.ShopID), term)
}

// ModelSpec matches terminals of exactly one model.
type ModelSpec struct {
	Model TerminalModel
}

func (s ModelSpec) Matches(t *Terminal) bool {
	return t.Model == s.Model
}

// ConnectionSpec matches terminals whose flag for the given connection type
// is set.
type ConnectionSpec struct {
	Type string
}

func (s ConnectionSpec) Matches(t *Terminal) bool {
	switch s.Type {
	case ConnectionEthernet:
		return t.ConnectionEthernet
	case Connection4G5G:
		return t.Connection4G5G
	}
	return false
}

// BackofficeSpec matches terminals with back-office access enabled.
type BackofficeSpec struct{}

func (BackofficeSpec) Matches(t *Terminal) bool {
	return t.BackofficeActive
}

// BuildTerminalSpecs turns the optional list filters into specs. Empty values
// add nothing; so does an unknown connection type.
func BuildTerminalSpecs(search, model, connectionType string) []TerminalSpec {
	var specs []TerminalSpec
	if search != "" {
		specs = append(specs, SearchSpec{Term: search})
	}
	if model != "" {
		specs = append(specs, ModelSpec{Model: TerminalModel(model)})
	}
	if connectionType == ConnectionEthernet || connectionType == Connection4G5G {
		specs = append(specs, ConnectionSpec{Type: connectionType})
	}
	return specs
}

// MatchAll reports whether t satisfies every spec.
func MatchAll(t *Terminal, specs []TerminalSpec) bool {
	for _, s := range specs {
		if !s.Matches(t) {
			return false
		}
	}
	return true
}
