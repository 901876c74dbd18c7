package main

import (
	"bytes"
	"strings"
	"testing"

	"radiusmgr/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecret(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "newline terminated", input: "Secret123!\n", want: "Secret123!"},
		{name: "crlf terminated", input: "Secret123!\r\n", want: "Secret123!"},
		{name: "no newline", input: "Secret123!", want: "Secret123!"},
		{name: "inner spaces kept", input: " pass word \n", want: " pass word "},
		{name: "only first line", input: "first\nsecond\n", want: "first"},
		{name: "empty", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSecret(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashPasswordCmd(t *testing.T) {
	t.Run("prints a verifiable hash", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader("Secret123!\n"))
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"hash-password", "--cost", "4"})

		require.NoError(t, cmd.Execute())

		hash := strings.TrimSpace(out.String())
		hasher, err := auth.NewBcryptHasherWithCost(4)
		require.NoError(t, err)
		assert.True(t, hasher.Check("Secret123!", hash))
		assert.False(t, hasher.Check("secret123!", hash))
	})

	t.Run("weak password is refused", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader("short\n"))
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"hash-password", "--cost", "4"})

		assert.Error(t, cmd.Execute())
		assert.Empty(t, out.String())
	})
}

func TestCreateOperatorRequiresUsername(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("Secret123!\n"))
	cmd.SetArgs([]string{"create-operator", "--email", "root@example.com"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--username")
}
