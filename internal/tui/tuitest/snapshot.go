package tuitest

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update snapshot files")

// AssertSnapshot compares output with testdata/<test name>.snap.
// Run the tests with -update to rewrite the snapshot.
func AssertSnapshot(t *testing.T, output string) {
	t.Helper()

	snapshotPath := SnapshotPath(t)

	if *update {
		err := os.MkdirAll(filepath.Dir(snapshotPath), 0755)
		require.NoError(t, err)
		err = os.WriteFile(snapshotPath, []byte(output), 0644)
		require.NoError(t, err)
		t.Logf("updated snapshot: %s", snapshotPath)
		return
	}

	snapshot, err := os.ReadFile(snapshotPath)
	if os.IsNotExist(err) {
		t.Fatalf("snapshot file not found: %s. run with -update to create it.", snapshotPath)
	}
	require.NoError(t, err)

	require.Equal(t, string(snapshot), output, "snapshot does not match. run with -update to update it.")
}

// AssertPlainSnapshot is AssertSnapshot with ANSI escape sequences removed,
// so snapshots do not depend on the terminal color profile
func AssertPlainSnapshot(t *testing.T, output string) {
	t.Helper()
	AssertSnapshot(t, ansi.Strip(output))
}

// SnapshotPath returns the snapshot file of the running test
func SnapshotPath(t *testing.T) string {
	return filepath.Join("testdata", strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_"))+".snap")
}
