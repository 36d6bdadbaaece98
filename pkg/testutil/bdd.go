package testutil

import "testing"

// Given and Then name nested subtests after the phase they describe.
func Given(t *testing.T, desc string, fn func(t *testing.T)) { phase(t, "Given", desc, fn) }

func Then(t *testing.T, desc string, fn func(t *testing.T)) { phase(t, "Then", desc, fn) }

func phase(t *testing.T, name, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(name+" "+desc, fn)
}
