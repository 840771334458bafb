package testing

import (
	"fmt"
	"strings"

	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
)

// StateMatcher collects view assertions and reports them together.
type StateMatcher struct {
	failures []string
}

// NewStateMatcher creates a new state matcher.
func NewStateMatcher() *StateMatcher {
	return &StateMatcher{}
}

// ViewContains asserts that the stripped view contains the expected string.
func (m *StateMatcher) ViewContains(view, expected string) *StateMatcher {
	if !strings.Contains(StripANSI(view), expected) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain '%s'", expected))
	}
	return m
}

// ViewNotContains asserts that the stripped view does not contain the unexpected string.
func (m *StateMatcher) ViewNotContains(view, unexpected string) *StateMatcher {
	if strings.Contains(StripANSI(view), unexpected) {
		m.failures = append(m.failures, fmt.Sprintf("view contains unexpected '%s'", unexpected))
	}
	return m
}

// ViewContainsInOrder asserts that the stripped view contains every string, in order.
func (m *StateMatcher) ViewContainsInOrder(view string, expected ...string) *StateMatcher {
	if !ContainsInOrder(StripANSI(view), expected...) {
		m.failures = append(m.failures, fmt.Sprintf("view does not contain %q in order", expected))
	}
	return m
}

// Check returns an error if any assertions failed.
func (m *StateMatcher) Check() error {
	if len(m.failures) > 0 {
		return fmt.Errorf("state assertions failed:\n%s", strings.Join(m.failures, "\n"))
	}
	return nil
}

// HookMatcher asserts on the hook-addressed elements of a catalog screen.
type HookMatcher struct {
	*StateMatcher
	elems []viewmodel.Element
}

// NewHookMatcher creates a matcher over elems.
func NewHookMatcher(elems []viewmodel.Element) *HookMatcher {
	return &HookMatcher{
		StateMatcher: NewStateMatcher(),
		elems:        elems,
	}
}

// Count asserts how many elements carry hook.
func (m *HookMatcher) Count(hook string, expected int) *HookMatcher {
	if got := len(viewmodel.FindElements(m.elems, hook)); got != expected {
		m.failures = append(m.failures, fmt.Sprintf("hook %s count mismatch: got %d, want %d", hook, got, expected))
	}
	return m
}

// Absent asserts that no element carries hook.
func (m *HookMatcher) Absent(hook string) *HookMatcher {
	return m.Count(hook, 0)
}

// Texts asserts the texts of every element carrying hook, in page order.
func (m *HookMatcher) Texts(hook string, expected ...string) *HookMatcher {
	found := viewmodel.FindElements(m.elems, hook)
	got := make([]string, len(found))
	for i, e := range found {
		got[i] = e.Text
	}

	if strings.Join(got, "\x00") != strings.Join(expected, "\x00") || len(got) != len(expected) {
		m.failures = append(m.failures, fmt.Sprintf("hook %s texts mismatch: got %q, want %q", hook, got, expected))
	}
	return m
}
