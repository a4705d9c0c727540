package cliflag

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	AddPersistentStringFlag(c, "name", "x", "a name", true)
	AddPersistentIntFlag(c, "count", 7, "a count", false)

	name := c.PersistentFlags().Lookup("name")
	require.NotNil(t, name)
	require.Equal(t, "a name (required)", name.Usage)
	require.Equal(t, []string{"true"}, name.Annotations[cobra.BashCompOneRequiredFlag])

	count := c.PersistentFlags().Lookup("count")
	require.NotNil(t, count)
	require.Equal(t, "a count", count.Usage)
	require.Equal(t, "7", count.DefValue)
	require.Empty(t, count.Annotations)

}
