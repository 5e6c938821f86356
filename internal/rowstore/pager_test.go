package rowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPager_GetPage(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		aPager = NewPager(testLogger, 3)
	)

	assert.Equal(t, uint32(3), aPager.MaxPages())
	assert.Equal(t, uint32(0), aPager.TotalPages())

	t.Run("page is allocated on first access", func(t *testing.T) {
		aPage, err := aPager.GetPage(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, aPage)

		assert.Equal(t, Page{}, *aPage)
		assert.Equal(t, uint32(1), aPager.TotalPages())
		assert.Nil(t, aPager.pages[0])
		assert.Nil(t, aPager.pages[2])
	})

	t.Run("same page is returned on subsequent access", func(t *testing.T) {
		aPage, err := aPager.GetPage(ctx, 1)
		require.NoError(t, err)
		aPage[0] = 0xab

		samePage, err := aPager.GetPage(ctx, 1)
		require.NoError(t, err)

		assert.Same(t, aPage, samePage)
		assert.Equal(t, byte(0xab), samePage[0])
		assert.Equal(t, uint32(1), aPager.TotalPages())
	})

	t.Run("page index out of bounds", func(t *testing.T) {
		aPage, err := aPager.GetPage(ctx, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPageOutOfBounds)
		assert.Nil(t, aPage)
		assert.Equal(t, uint32(1), aPager.TotalPages())
	})
}

func TestPager_PagesAreNeverMoved(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		aPager = NewPager(testLogger, MaxPages)
	)

	first, err := aPager.GetPage(ctx, 0)
	require.NoError(t, err)
	first[PageSize-1] = 0x01

	for pageIdx := PageIndex(1); pageIdx < MaxPages; pageIdx++ {
		_, err := aPager.GetPage(ctx, pageIdx)
		require.NoError(t, err)
	}
	assert.Equal(t, uint32(MaxPages), aPager.TotalPages())

	again, err := aPager.GetPage(ctx, 0)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, byte(0x01), again[PageSize-1])
}

func TestPager_DefaultMaxPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(MaxPages), NewPager(testLogger, 0).MaxPages())
	assert.Equal(t, uint32(MaxPages), NewPager(testLogger, -1).MaxPages())
}

func TestPager_Close(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		aPager = NewPager(testLogger, 2)
	)

	_, err := aPager.GetPage(ctx, 0)
	require.NoError(t, err)
	_, err = aPager.GetPage(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, aPager.Close())
	assert.Equal(t, uint32(0), aPager.TotalPages())
	assert.Equal(t, []*Page{nil, nil}, aPager.pages)

	_, err = aPager.GetPage(ctx, 0)
	assert.ErrorIs(t, err, ErrPagerClosed)

	assert.ErrorIs(t, aPager.Close(), ErrPagerClosed)
}
