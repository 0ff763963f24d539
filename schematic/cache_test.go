package schematic_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockme/schemread/nbt/nbttest"
	"github.com/blockme/schemread/schematic"
)

func TestCache_Decode(t *testing.T) {
	cache, err := schematic.NewCache(4)
	require.NoError(t, err)

	buf := nbttest.Encode("", classicRoot(2, 1, 1, []byte{0, 1}))
	opts := schematic.DefaultOptions()

	first, err := cache.Decode(buf, opts)
	require.NoError(t, err)
	second, err := cache.Decode(append([]byte(nil), buf...), opts)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())

	opts.MaxVolume = 100
	third, err := cache.Decode(buf, opts)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_FailuresAreNotCached(t *testing.T) {
	cache, err := schematic.NewCache(4)
	require.NoError(t, err)
	_, err = cache.Decode([]byte{1, 2, 3}, schematic.DefaultOptions())
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Concurrent(t *testing.T) {
	cache, err := schematic.NewCache(2)
	require.NoError(t, err)
	buf := nbttest.Encode("", spongeRoot(3, 1, 2, spongePalette(), nbttest.Varints(0, 1, 2, 0, 0, 1)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := cache.Decode(buf, schematic.DefaultOptions())
			if assert.NoError(t, err) {
				assert.Len(t, s.Blocks, 3)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cache.Len())
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := schematic.NewCache(0)
	assert.Error(t, err)
}
