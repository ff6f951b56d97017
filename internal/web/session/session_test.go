package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	Init(nil)

	id, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 64)

	in := Data{Admin: Admin{ID: 7, Username: "root", RoleID: 1}}
	require.NoError(t, in.Write(id, time.Minute))

	var out Data
	require.NoError(t, out.Read(id))
	assert.Equal(t, in, out)

	require.NoError(t, Destroy(id))
	assert.ErrorIs(t, new(Data).Read(id), ErrNotFound)
}

func TestReadUnknown(t *testing.T) {
	Init(nil)

	assert.ErrorIs(t, new(Data).Read("missing"), ErrNotFound)
}

func TestNotInitialized(t *testing.T) {
	saved := Store
	Store = nil

	t.Cleanup(func() { Store = saved })

	assert.ErrorIs(t, new(Data).Read("x"), ErrNotInitialized)
	assert.ErrorIs(t, new(Data).Write("x", time.Minute), ErrNotInitialized)
	assert.ErrorIs(t, Destroy("x"), ErrNotInitialized)
}

func TestGenerateSessionIDUnique(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)

	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
