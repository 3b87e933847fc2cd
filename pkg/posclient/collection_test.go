package posclient

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customersN(n int) []Customer {
	out := make([]Customer, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Customer{
			ID:    fmt.Sprintf("c%02d", i),
			Name:  fmt.Sprintf("Customer %02d", i),
			Email: fmt.Sprintf("c%02d@example.com", i),
		})
	}
	return out
}

func newCustomerCollection(items []Customer) *Collection[Customer] {
	c := NewCollection(func(c Customer) string { return c.ID }, CustomerColumns()...)
	c.SetItems(items)
	return c
}

func names(items []Customer) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.Name)
	}
	return out
}

func TestCollection_Paginates(t *testing.T) {
	c := newCustomerCollection(customersN(12))

	page := c.View()
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.TotalItems)
	assert.Len(t, page.Items, 5)

	c.SetPage(3)
	page = c.View()
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, []string{"Customer 11", "Customer 12"}, names(page.Items))
}

func TestCollection_PageSizeResetsPage(t *testing.T) {
	c := newCustomerCollection(customersN(12))
	c.SetPage(2)

	require.NoError(t, c.SetPageSize(10))
	page := c.View()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 10)

	assert.Error(t, c.SetPageSize(7))
	assert.Equal(t, 10, c.View().PageSize)
}

func TestCollection_ClampsPage(t *testing.T) {
	c := newCustomerCollection(customersN(12))
	c.SetPage(9)
	assert.Equal(t, 3, c.View().Page)

	require.NoError(t, c.SetFilter("name", "nobody"))
	page := c.View()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestCollection_FilterPullsBackToLastPage(t *testing.T) {
	c := newCustomerCollection(customersN(12))
	c.SetPage(3)
	require.Equal(t, 3, c.View().Page)

	// c01..c09 remain: two pages of five.
	require.NoError(t, c.SetFilter("email", "C0"))
	page := c.View()
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 9, page.TotalItems)
	assert.Equal(t, []string{"Customer 06", "Customer 07", "Customer 08", "Customer 09"}, names(page.Items))
}

func TestCollection_FilterIsCaseInsensitiveAndCombined(t *testing.T) {
	c := newCustomerCollection([]Customer{
		{ID: "1", Name: "Ana Souza", Email: "ana@salon.com"},
		{ID: "2", Name: "ANAbela", Email: "bela@other.com"},
		{ID: "3", Name: "Bruno", Email: "bruno@salon.com", PhoneNumber: "555-0101"},
	})

	require.NoError(t, c.SetFilter("name", "ana"))
	assert.Equal(t, []string{"Ana Souza", "ANAbela"}, names(c.View().Items))

	require.NoError(t, c.SetFilter("email", "SALON"))
	assert.Equal(t, []string{"Ana Souza"}, names(c.View().Items))

	require.NoError(t, c.SetFilter("name", ""))
	require.NoError(t, c.SetFilter("email", ""))
	require.NoError(t, c.SetFilter("phone_number", "0101"))
	assert.Equal(t, []string{"Bruno"}, names(c.View().Items))

	assert.Error(t, c.SetFilter("document", "x"))
}

func TestCollection_SortCycle(t *testing.T) {
	c := newCustomerCollection([]Customer{
		{ID: "1", Name: "carla"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "bob"},
	})

	require.NoError(t, c.ToggleSort("name"))
	key, dir := c.Sort()
	assert.Equal(t, "name", key)
	assert.Equal(t, Ascending, dir)
	assert.Equal(t, []string{"Alice", "bob", "carla"}, names(c.View().Items))

	require.NoError(t, c.ToggleSort("name"))
	assert.Equal(t, []string{"carla", "bob", "Alice"}, names(c.View().Items))

	require.NoError(t, c.ToggleSort("name"))
	_, dir = c.Sort()
	assert.Equal(t, Unsorted, dir)
	assert.Equal(t, []string{"carla", "Alice", "bob"}, names(c.View().Items))

	require.NoError(t, c.ToggleSort("name"))
	require.NoError(t, c.ToggleSort("name"))
	require.NoError(t, c.ToggleSort("email"))
	key, dir = c.Sort()
	assert.Equal(t, "email", key)
	assert.Equal(t, Ascending, dir)
}

func TestCollection_SortIsStable(t *testing.T) {
	c := newCustomerCollection([]Customer{
		{ID: "1", Name: "Same", Email: "z@x.com"},
		{ID: "2", Name: "same", Email: "a@x.com"},
		{ID: "3", Name: "Other"},
	})
	require.NoError(t, c.SetSort("name", Ascending))

	ids := []string{}
	for _, item := range c.View().Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestCollection_FilterBeforePaginate(t *testing.T) {
	items := customersN(12)
	items = append(items, Customer{ID: "x", Name: "Zed"})
	c := newCustomerCollection(items)

	require.NoError(t, c.SetFilter("name", "customer 1"))
	page := c.View()
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"Customer 10", "Customer 11", "Customer 12"}, names(page.Items))
}

func TestCollection_Patches(t *testing.T) {
	c := newCustomerCollection(customersN(2))

	c.Append(Customer{ID: "c03", Name: "Third"})
	assert.Len(t, c.Items(), 3)

	assert.True(t, c.Replace(Customer{ID: "c01", Name: "First"}))
	assert.False(t, c.Replace(Customer{ID: "missing"}))
	assert.Equal(t, "First", c.Items()[0].Name)

	assert.True(t, c.Remove("c02"))
	assert.False(t, c.Remove("c02"))
	assert.Equal(t, []string{"First", "Third"}, names(c.Items()))
}
