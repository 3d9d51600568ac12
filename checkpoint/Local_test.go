package checkpoint_test

import (
	"os"
	"path/filepath"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"go.llib.dev/resumable/checkpoint"
	"go.llib.dev/resumable/iterators"
)

func newStorage(tb testing.TB) *checkpoint.Local {
	path := filepath.Join(os.TempDir(), uuid.NewV4().String())
	store, err := checkpoint.NewLocal(path)
	require.NoError(tb, err)
	tb.Cleanup(func() {
		require.NoError(tb, store.Close())
		require.NoError(tb, os.Remove(path))
	})
	return store
}

func TestLocal_SaveThenLoad_StateSurvives(t *testing.T) {
	store := newStorage(t)

	original := iterators.FileState{Name: "events.log", Offset: 12, Flag: os.O_RDONLY}
	require.NoError(t, store.Save(`resume-point`, original))

	var restored iterators.FileState
	require.NoError(t, store.Load(`resume-point`, &restored))
	require.Equal(t, original, restored)
}

func TestLocal_SaveTwice_LatestSnapshotWins(t *testing.T) {
	store := newStorage(t)

	require.NoError(t, store.Save(`resume-point`, iterators.FileState{Name: "events.log", Offset: 12}))
	require.NoError(t, store.Save(`resume-point`, iterators.FileState{Name: "events.log", Offset: 34}))

	var restored iterators.FileState
	require.NoError(t, store.Load(`resume-point`, &restored))
	require.Equal(t, int64(34), restored.Offset)
}

func TestLocal_SaveNew_GeneratedNameLoadsBack(t *testing.T) {
	store := newStorage(t)

	original := iterators.RangeState{Start: 0, Stop: 10, Step: 1, Next: 4}
	name, err := store.SaveNew(original)
	require.NoError(t, err)
	require.NotEmpty(t, name)

	var restored iterators.RangeState
	require.NoError(t, store.Load(name, &restored))
	require.Equal(t, original, restored)
}

func TestLocal_Load_UnknownName(t *testing.T) {
	store := newStorage(t)

	var into iterators.FileState
	err := store.Load(`never-saved`, &into)
	require.ErrorIs(t, err, checkpoint.ErrNotFound)
}

func TestLocal_Load_WrongStateType(t *testing.T) {
	store := newStorage(t)

	require.NoError(t, store.Save(`resume-point`, iterators.FileState{Name: "events.log"}))

	var wrong iterators.RangeState
	require.Error(t, store.Load(`resume-point`, &wrong))
}

func TestLocal_Delete_SnapshotGone(t *testing.T) {
	store := newStorage(t)

	require.NoError(t, store.Save(`resume-point`, iterators.FileState{Name: "events.log"}))
	require.NoError(t, store.Delete(`resume-point`))

	var into iterators.FileState
	require.ErrorIs(t, store.Load(`resume-point`, &into), checkpoint.ErrNotFound)
}

func TestLocal_Delete_AbsentNameIsNotAnError(t *testing.T) {
	store := newStorage(t)

	require.NoError(t, store.Delete(`never-saved`))
}

func TestLocal_Names_StoredSnapshotsListed(t *testing.T) {
	store := newStorage(t)

	names, err := store.Names()
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, store.Save(`alpha`, iterators.FileState{Name: "a.log"}))
	require.NoError(t, store.Save(`beta`, iterators.FileState{Name: "b.log"}))

	names, err = store.Names()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{`alpha`, `beta`}, names)
}

// A full restart scenario: iterate, persist the snapshot, reopen the store as a
// new process would, and continue the iteration from where it stopped.
func TestLocal_RestartScenario_IterationContinues(t *testing.T) {
	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	defer os.Remove(dbPath)

	filePath := filepath.Join(t.TempDir(), `lines.txt`)
	require.NoError(t, os.WriteFile(filePath, []byte("line1\nline2\nline3\n"), 0600))

	func() {
		f, err := os.Open(filePath)
		require.NoError(t, err)

		i := iterators.File(f)
		require.True(t, i.Next())
		require.Equal(t, "line1\n", i.Value())

		state, err := i.CaptureState()
		require.NoError(t, err)

		store, err := checkpoint.NewLocal(dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Save(`import`, state))
		require.NoError(t, store.Close())
		require.NoError(t, i.Close())
	}()

	store, err := checkpoint.NewLocal(dbPath)
	require.NoError(t, err)
	defer store.Close()

	var state iterators.FileState
	require.NoError(t, store.Load(`import`, &state))

	restored, err := iterators.ResumeFile(state)
	require.NoError(t, err)

	tail, err := iterators.Collect[string](restored)
	require.NoError(t, err)
	require.Equal(t, []string{"line2\n", "line3\n"}, tail)
}
