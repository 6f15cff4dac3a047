package rotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksyq12/web-distributor/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "1700000000", Timestamp(time.Unix(1700000000, 0)))
	assert.Equal(t, "1700000000.5", Timestamp(time.Unix(1700000000, 500_000_000)))
}

func TestPlanPaths(t *testing.T) {
	whole := Whole("/etc/web-distributor", "nginx", "nginx-old")
	assert.Equal(t, "/etc/web-distributor/nginx", whole.LiveDir())
	assert.Equal(t, "/etc/web-distributor/nginx-old", whole.BackupDir())
	assert.Equal(t, "/etc/web-distributor/nginx-old-42", whole.ArchiveDir("42"))

	sel := Selective("/etc/acme-redirect.d", "web-distributor-old", "web-distributor")
	assert.Equal(t, "/etc/acme-redirect.d", sel.LiveDir())
	assert.Equal(t, "/etc/acme-redirect.d/web-distributor-old-42", sel.ArchiveDir("42"))
}

func TestPrefixSelector(t *testing.T) {
	sel := PrefixSelector("web-distributor", "web-distributor-old")

	tests := []struct {
		name string
		want bool
	}{
		{"web-distributor.a.example.com.conf", true},
		{"web-distributor", true},
		{"web-distributor-old", false},
		{"web-distributor-old-1700000000.5", false},
		{"other.conf", false},
		{"Web-Distributor.a.example.com.conf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sel(tt.name))
		})
	}
}

func TestWholeFirstRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "home")
	plan := Whole(root, "nginx", "nginx-old")

	require.NoError(t, plan.Rotate("1"))

	info, err := os.Stat(plan.LiveDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, []string{"nginx"}, listDir(t, root))
}

func TestWholeDemotesAndArchives(t *testing.T) {
	root := t.TempDir()
	plan := Whole(root, "nginx", "nginx-old")

	writeFile(t, filepath.Join(root, "nginx", "a.example.com.nginx"), "gen1")
	require.NoError(t, plan.Rotate("100"))

	assert.Empty(t, listDir(t, plan.LiveDir()))
	assert.Equal(t, "gen1", readFile(t, filepath.Join(root, "nginx-old", "a.example.com.nginx")))

	writeFile(t, filepath.Join(root, "nginx", "a.example.com.nginx"), "gen2")
	require.NoError(t, plan.Rotate("200"))

	assert.Equal(t, "gen2", readFile(t, filepath.Join(root, "nginx-old", "a.example.com.nginx")))
	assert.Equal(t, "gen1", readFile(t, filepath.Join(root, "nginx-old-200", "a.example.com.nginx")))
	assert.Equal(t, []string{"nginx", "nginx-old", "nginx-old-200"}, listDir(t, root))
}

// Every generation written before a rotation must stay recoverable under
// exactly one of the backup slot or that rotation's archive.
func TestWholeNeverLosesGenerations(t *testing.T) {
	root := t.TempDir()
	plan := Whole(root, "nginx", "nginx-old")

	const runs = 6
	for i := 1; i <= runs; i++ {
		writeFile(t, filepath.Join(plan.LiveDir(), "gen"), fmt.Sprintf("generation %d", i))
		require.NoError(t, plan.Rotate(fmt.Sprintf("%d", i)))

		assert.Equal(t, fmt.Sprintf("generation %d", i), readFile(t, filepath.Join(plan.BackupDir(), "gen")))
		for j := 1; j < i; j++ {
			// generation j was demoted in run j and archived in run j+1
			archive := plan.ArchiveDir(fmt.Sprintf("%d", j+1))
			assert.Equal(t, fmt.Sprintf("generation %d", j), readFile(t, filepath.Join(archive, "gen")))
		}
	}
	// live + backup + one archive per rotation after the first
	assert.Len(t, listDir(t, root), 2+runs-1)
}

func TestWholeArchiveCollisionIsFatal(t *testing.T) {
	root := t.TempDir()
	plan := Whole(root, "nginx", "nginx-old")

	writeFile(t, filepath.Join(root, "nginx-old", "a"), "backup")
	writeFile(t, filepath.Join(root, "nginx-old-7", "b"), "already archived")
	writeFile(t, filepath.Join(root, "nginx", "c"), "live")

	err := plan.Rotate("7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRotateFailed))

	// nothing moved
	assert.Equal(t, "backup", readFile(t, filepath.Join(root, "nginx-old", "a")))
	assert.Equal(t, "live", readFile(t, filepath.Join(root, "nginx", "c")))
}

func TestSelectiveMovesOnlyOwnedFiles(t *testing.T) {
	root := t.TempDir()
	plan := Selective(root, "web-distributor-old", "web-distributor")

	writeFile(t, filepath.Join(root, "web-distributor.a.example.com.conf"), "a")
	writeFile(t, filepath.Join(root, "web-distributor.b.example.com.conf"), "b")
	writeFile(t, filepath.Join(root, "unrelated.conf"), "keep")

	require.NoError(t, plan.Rotate("10"))

	assert.Equal(t, []string{"unrelated.conf", "web-distributor-old"}, listDir(t, root))
	assert.Equal(t,
		[]string{"web-distributor.a.example.com.conf", "web-distributor.b.example.com.conf"},
		listDir(t, plan.BackupDir()))
	assert.Equal(t, "keep", readFile(t, filepath.Join(root, "unrelated.conf")))
}

func TestSelectiveArchivesPreviousBackup(t *testing.T) {
	root := t.TempDir()
	plan := Selective(root, "web-distributor-old", "web-distributor")

	writeFile(t, filepath.Join(root, "web-distributor-old", "web-distributor.old.conf"), "old")
	writeFile(t, filepath.Join(root, "web-distributor-old-5", "web-distributor.older.conf"), "older")
	writeFile(t, filepath.Join(root, "web-distributor.new.conf"), "new")

	require.NoError(t, plan.Rotate("10"))

	assert.Equal(t,
		[]string{"web-distributor-old", "web-distributor-old-10", "web-distributor-old-5"},
		listDir(t, root))
	assert.Equal(t, "old", readFile(t, filepath.Join(root, "web-distributor-old-10", "web-distributor.old.conf")))
	assert.Equal(t, "new", readFile(t, filepath.Join(root, "web-distributor-old", "web-distributor.new.conf")))
	// earlier archive untouched, not nested into the new backup
	assert.Equal(t, "older", readFile(t, filepath.Join(root, "web-distributor-old-5", "web-distributor.older.conf")))
}

func TestSelectiveCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "acme-redirect.d")
	plan := Selective(root, "web-distributor-old", "web-distributor")

	require.NoError(t, plan.Rotate("1"))

	assert.Equal(t, []string{"web-distributor-old"}, listDir(t, root))
}

func TestRotateRejectsEmptyPlan(t *testing.T) {
	plan := &Plan{Root: t.TempDir(), Backup: "old"}
	assert.Error(t, plan.Rotate("1"))
}
