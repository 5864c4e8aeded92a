package form

import (
	"fmt"
	"strings"
)

// Policy selects how error messages become visible.
type Policy int

const (
	policyUnset Policy = iota
	// PolicyAlways shows every invalid field's message at all times.
	PolicyAlways
	// PolicyFocusKeyed keeps the message of the last committed field and shows
	// it only on the focused field whose title appears in it. Legacy behavior:
	// it can leak across fields that share a word and hides messages once
	// focus moves on.
	PolicyFocusKeyed
	// PolicyPerField toggles each field's message on that field's own commit.
	PolicyPerField
)

// DefaultPolicy is the policy used when none is configured.
const DefaultPolicy = PolicyPerField

var policyNames = map[Policy]string{
	PolicyAlways:     "always",
	PolicyFocusKeyed: "focus-keyed",
	PolicyPerField:   "per-field",
}

var policyAliases = map[string]Policy{
	"always":      PolicyAlways,
	"v1":          PolicyAlways,
	"focus-keyed": PolicyFocusKeyed,
	"v2":          PolicyFocusKeyed,
	"per-field":   PolicyPerField,
	"v3":          PolicyPerField,
}

// Policies lists the selectable policies.
func Policies() []Policy {
	return []Policy{PolicyAlways, PolicyFocusKeyed, PolicyPerField}
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Validate fails for values outside the declared policies.
func (p Policy) Validate() error {
	if _, ok := policyNames[p]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPolicy, p)
	}
	return nil
}

// ParsePolicy accepts a policy name or its v1/v2/v3 alias.
func ParsePolicy(s string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return policyUnset, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
