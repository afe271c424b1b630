package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideGate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		hasToken bool
		action   GateAction
		target   string
	}{
		{"protected without token", "/dashboard", false, GateRedirect, "/login?from=%2Fdashboard"},
		{"nested protected without token", "/dashboard/games/new", false, GateRedirect, "/login?from=%2Fdashboard%2Fgames%2Fnew"},
		{"protected with token", "/dashboard", true, GateAllow, ""},
		{"login with token", "/login", true, GateRedirect, "/dashboard"},
		{"login without token", "/login", false, GateAllow, ""},
		{"root with token", "/", true, GateRedirect, "/dashboard"},
		{"root without token", "/", false, GateRedirect, "/login"},
		{"unrelated path without token", "/health", false, GateAllow, ""},
		{"unrelated path with token", "/health", true, GateAllow, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := DecideGate(tt.path, tt.hasToken)
			assert.Equal(t, tt.action, decision.Action)
			assert.Equal(t, tt.target, decision.Target)
		})
	}
}

func TestDecideGate_IsPure(t *testing.T) {
	first := DecideGate("/dashboard/games/new", false)
	second := DecideGate("/dashboard/games/new", false)
	assert.Equal(t, first, second)
}
