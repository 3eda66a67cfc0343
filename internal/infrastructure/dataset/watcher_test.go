package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorlab/cocktailiq/internal/domain/molecule"
)

const singleMoleculeFixture = `[
  {
    "natural_source_name": "Sugar",
    "molecules": [
      {"pubchem_id": 5988, "common_name": "Sucrose", "flavor_profile": "sweet", "super_sweet": 1}
    ]
  }
]`

func TestWatcher_Reload(t *testing.T) {
	path := writeFixture(t, "molecules.json", singleMoleculeFixture)
	store := NewFileStore(path, nil)

	var swapped *molecule.Index
	w := NewWatcher(store, func(idx *molecule.Index) { swapped = idx }, nil)

	require.NoError(t, w.Reload(context.Background()))
	require.NotNil(t, swapped)
	assert.Equal(t, 1, swapped.MoleculeCount())
	assert.NotEmpty(t, swapped.Lookup("sugar"))
}

func TestWatcher_ReloadBadFileKeepsNothing(t *testing.T) {
	path := writeFixture(t, "molecules.json", "{broken")
	store := NewFileStore(path, nil)

	var calls int
	w := NewWatcher(store, func(*molecule.Index) { calls++ }, nil)

	require.Error(t, w.Reload(context.Background()))
	assert.Equal(t, 0, calls, "apply never runs on a failed load")
}

func TestWatcher_RunReloadsOnWrite(t *testing.T) {
	path := writeFixture(t, "molecules.json", singleMoleculeFixture)
	store := NewFileStore(path, nil)

	swaps := make(chan *molecule.Index, 4)
	w := NewWatcher(store, func(idx *molecule.Index) { swaps <- idx }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register before touching the file
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(singleMoleculeFixture), 0o644))

	select {
	case idx := <-swaps:
		assert.Equal(t, 1, idx.MoleculeCount())
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload after file write")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}
