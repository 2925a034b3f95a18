package pagedlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_FailsBeforeResolverIsSet(t *testing.T) {
	list, err := FromItems(intRange(10), 1, 5)
	require.NoError(t, err)

	locator, err := list.Locator(1)
	assert.ErrorIs(t, err, ErrResolverNotSet)
	assert.Empty(t, locator)
}

func TestLocator_ReturnsResolverOutputVerbatim(t *testing.T) {
	list, err := FromItems(intRange(10), 1, 5)
	require.NoError(t, err)

	list.SetLocatorResolver(func(page int) string {
		return fmt.Sprintf("page=%d", page)
	})

	locator, err := list.Locator(3)
	require.NoError(t, err)
	assert.Equal(t, "page=3", locator)
}

func TestLocator_InvokedLazilyPerRequestedPage(t *testing.T) {
	list, err := FromItems(intRange(100), 5, 10)
	require.NoError(t, err)

	var resolved []int
	list.SetLocatorResolver(func(page int) string {
		resolved = append(resolved, page)
		return fmt.Sprintf("/articles?page=%d", page)
	})
	assert.Empty(t, resolved, "resolver must not run at assignment time")

	_, err = list.Locator(list.PreviousPage())
	require.NoError(t, err)
	_, err = list.Locator(list.NextPage())
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6}, resolved)
}

func TestMustLocator_PanicsWithoutResolver(t *testing.T) {
	list := FromSingleList([]int{1})

	assert.PanicsWithError(t, string(ErrResolverNotSet), func() {
		list.MustLocator(1)
	})
}

func TestMustLocator_ResolvesWhenWired(t *testing.T) {
	list := FromSingleList([]int{1})
	list.SetLocatorResolver(func(page int) string {
		return fmt.Sprintf("p%d", page)
	})

	assert.Equal(t, "p1", list.MustLocator(1))
}
