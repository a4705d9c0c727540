package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestMnemonic is a well-known BIP-39 test phrase. Never use it with real funds.
const TestMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

// TestDeriver returns a deriver rooted at TestMnemonic.
func TestDeriver(t testing.TB) *SeedDeriver {
	d, err := NewMnemonicDeriver(zaptest.NewLogger(t), TestMnemonic, "")
	require.NoError(t, err)
	return d
}
