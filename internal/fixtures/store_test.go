package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flight-report/pkg/apperr"
)

func TestKey(t *testing.T) {
	require.Equal(t, "YYZ_NRT_2026-10-23", Key("YYZ", "NRT", "2026-10-23", ""))
	require.Equal(t, "YYZ_NRT_2026-10-23_ret_2026-11-05", Key("YYZ", "NRT", "2026-10-23", "2026-11-05"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	key := Key("YYZ", "NRT", "2026-10-23", "")

	body := []byte(`{"best_flights": []}`)
	require.NoError(t, store.Save(key, body))

	loaded, err := store.Load(key)
	require.NoError(t, err)
	require.Equal(t, body, loaded)
}

func TestStoreMissingFixture(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(Key("YYZ", "NRT", "2026-10-23", ""))
	require.Error(t, err)
	require.True(t, apperr.IsCode(err, apperr.CodeNotFound))
	require.Contains(t, err.Error(), "SAVE_FIXTURES=1")
}

func TestStoreCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/fixtures"
	store := NewStore(dir)
	require.NoError(t, store.Save("a_b_2026-01-01", []byte("{}")))
}
