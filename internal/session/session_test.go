package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogout(t *testing.T) {
	g := New("hunter2", "")

	assert.False(t, g.Active(), "gate starts closed")
	require.ErrorIs(t, g.Login("wrong"), ErrBadPassword)
	assert.False(t, g.Active())

	require.NoError(t, g.Login("hunter2"))
	assert.True(t, g.Active())

	g.Logout()
	assert.False(t, g.Active())
}

func TestFlagFilePersistsAcrossRestart(t *testing.T) {
	flag := filepath.Join(t.TempDir(), "session-flag")

	g := New("pw", flag)
	require.NoError(t, g.Login("pw"))
	if _, err := os.Stat(flag); err != nil {
		t.Fatalf("flag file not written: %v", err)
	}

	// A fresh gate over the same flag path starts open.
	g2 := New("pw", flag)
	assert.True(t, g2.Active())

	g2.Logout()
	_, err := os.Stat(flag)
	assert.True(t, os.IsNotExist(err), "logout clears the flag")

	g3 := New("pw", flag)
	assert.False(t, g3.Active())
}

func TestMissingFlagDirIsNotFatal(t *testing.T) {
	g := New("pw", filepath.Join(t.TempDir(), "no", "such", "dir", "flag"))
	require.NoError(t, g.Login("pw"), "flag persistence is best effort")
	assert.True(t, g.Active())
}
