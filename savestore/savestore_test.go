package savestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("ATTutorial", "slot1", 70, []byte(`{"tick":70}`)))

	tick, blob, ok, err := s.Get("ATTutorial", "slot1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(70), tick)
	require.JSONEq(t, `{"tick":70}`, string(blob))
}

func TestGetMissingSlotReturnsNotOk(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, _, ok, err := s.Get("ATTutorial", "slot1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutOverwritesExistingSlot(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("ATTutorial", "slot1", 70, []byte(`{"tick":70}`)))
	require.NoError(t, s.Put("ATTutorial", "slot1", 220, []byte(`{"tick":220}`)))

	tick, blob, ok, err := s.Get("ATTutorial", "slot1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(220), tick)
	require.JSONEq(t, `{"tick":220}`, string(blob))
}

func TestDeleteRemovesSlot(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("ATTutorial", "slot1", 70, []byte(`{}`)))
	require.NoError(t, s.Delete("ATTutorial", "slot1"))

	_, _, ok, err := s.Get("ATTutorial", "slot1")
	require.NoError(t, err)
	require.False(t, ok)
}
