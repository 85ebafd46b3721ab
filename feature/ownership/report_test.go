package ownership

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Print(t *testing.T) {
	t.Run("BothSections", func(t *testing.T) {
		report := &Report{
			Requested: []string{"Portal 2", "Half-Life 2", "Crusader Kings III"},
			Owned:     []string{"Half-Life 2", "Portal 2"},
			NotOwned:  []string{"Crusader Kings III"},
		}

		var buf bytes.Buffer
		require.NoError(t, report.Print(&buf))

		want := strings.Join([]string{
			"",
			"Game Ownership Check Results:",
			strings.Repeat("-", 50),
			"",
			"Owned Games:",
			strings.Repeat("-", 20),
			"✓ Half-Life 2",
			"✓ Portal 2",
			"",
			"Not Owned Games:",
			strings.Repeat("-", 20),
			"✗ Crusader Kings III",
			"",
			"Summary:",
			"Total games checked: 3",
			"Owned: 2",
			"Not owned: 1",
			"",
		}, "\n")
		assert.Equal(t, want, buf.String())
	})

	t.Run("EmptySectionsOmitted", func(t *testing.T) {
		report := &Report{
			Requested: []string{"Dota 2"},
			Owned:     []string{},
			NotOwned:  []string{"Dota 2"},
		}

		var buf bytes.Buffer
		require.NoError(t, report.Print(&buf))

		out := buf.String()
		assert.NotContains(t, out, "\nOwned Games:")
		assert.Contains(t, out, "Not Owned Games:")
		assert.Contains(t, out, "✗ Dota 2")
		assert.Contains(t, out, "Total games checked: 1\nOwned: 0\nNot owned: 1\n")
	})
}
