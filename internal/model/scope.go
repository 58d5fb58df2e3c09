package model

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/catalog/internal/domain"
)

// Scope names an independent schema: modules in one scope never share order
// indices, fields or values with another.
type Scope string

const (
	ScopeCompany Scope = "company"
	ScopeSurvey  Scope = "survey"
)

// Scopes lists every known schema scope.
var Scopes = []Scope{ScopeCompany, ScopeSurvey}

func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeCompany:
		return ScopeCompany, nil
	case ScopeSurvey:
		return ScopeSurvey, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidScope, s)
}

// Tables holds the physical table names backing one scope.
type Tables struct {
	Modules string
	Fields  string
	Values  string
}

// Tables returns the table names for the scope under the given prefix.
func (s Scope) Tables(prefix string) Tables {
	base := prefix + string(s)
	return Tables{
		Modules: base + "_modules",
		Fields:  base + "_fields",
		Values:  base + "_values",
	}
}
