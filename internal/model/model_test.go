package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input   string
		want    Environment
		wantErr bool
	}{
		{"stage", EnvStage, false},
		{"prod", EnvProd, false},
		{"", "", true},
		{"dev", "", true},
		{"Stage", "", true},
		{"PROD", "", true},
		{"production", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			env, err := ParseEnvironment(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEnvironment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, env)
		})
	}
}

func TestRegistrationResultAliased(t *testing.T) {
	plain := RegistrationResult{Email: "a@b.com", PlayerID: 1}
	assert.False(t, plain.Aliased())

	aliased := RegistrationResult{PreviousEmail: "a@b.com", Email: "a+x1y2z@b.com", PlayerID: 1}
	assert.True(t, aliased.Aliased())
}

func TestRegistrationResultString(t *testing.T) {
	aliased := RegistrationResult{PreviousEmail: "a@b.com", Email: "a+x1y2z@b.com", PlayerID: 5001}
	s := aliased.String()
	assert.Contains(t, s, "5001")
	assert.Contains(t, s, "a+x1y2z@b.com")
	assert.Contains(t, s, "a@b.com")

	plain := RegistrationResult{Email: "a@b.com", PlayerID: 5001}
	assert.NotContains(t, plain.String(), "requested")
}
