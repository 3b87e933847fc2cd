package posclient

import (
	"fmt"
	"sort"
	"strings"
)

type SortDirection int

const (
	Unsorted SortDirection = iota
	Ascending
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// PageSizes are the page sizes offered to staff.
var PageSizes = []int{5, 10, 20}

const DefaultPageSize = 5

// Column exposes one displayable text field of T for filtering and sorting.
type Column[T any] struct {
	Key   string
	Value func(T) string
}

// Page is one derived view of a collection.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalPages int
	// TotalItems counts the rows left after filtering.
	TotalItems int
}

// Collection holds a fetched slice and the view state applied to it. Views
// are always derived in the same order: filter, then sort, then paginate.
type Collection[T any] struct {
	items   []T
	idOf    func(T) string
	columns map[string]func(T) string

	filters  map[string]string
	sortKey  string
	sortDir  SortDirection
	pageSize int
	page     int
}

func NewCollection[T any](idOf func(T) string, columns ...Column[T]) *Collection[T] {
	c := &Collection[T]{
		idOf:     idOf,
		columns:  make(map[string]func(T) string, len(columns)),
		filters:  make(map[string]string),
		pageSize: DefaultPageSize,
		page:     1,
	}
	for _, col := range columns {
		c.columns[col.Key] = col.Value
	}
	return c
}

func (c *Collection[T]) SetItems(items []T) {
	c.items = append([]T(nil), items...)
}

func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// SetFilter narrows the view to rows whose column contains value, ignoring
// case. An empty value clears the filter. Filters on different columns combine.
func (c *Collection[T]) SetFilter(key, value string) error {
	if _, ok := c.columns[key]; !ok {
		return fmt.Errorf("unknown column %q", key)
	}
	if value == "" {
		delete(c.filters, key)
		return nil
	}
	c.filters[key] = value
	return nil
}

// ToggleSort cycles the sort on key: asc, desc, then unsorted. Choosing a
// different key starts over at asc.
func (c *Collection[T]) ToggleSort(key string) error {
	if _, ok := c.columns[key]; !ok {
		return fmt.Errorf("unknown column %q", key)
	}

	if c.sortKey != key {
		c.sortKey, c.sortDir = key, Ascending
		return nil
	}

	switch c.sortDir {
	case Ascending:
		c.sortDir = Descending
	case Descending:
		c.sortKey, c.sortDir = "", Unsorted
	default:
		c.sortDir = Ascending
	}
	return nil
}

// SetSort jumps straight to a sort state.
func (c *Collection[T]) SetSort(key string, dir SortDirection) error {
	if dir == Unsorted || key == "" {
		c.sortKey, c.sortDir = "", Unsorted
		return nil
	}
	if _, ok := c.columns[key]; !ok {
		return fmt.Errorf("unknown column %q", key)
	}
	c.sortKey, c.sortDir = key, dir
	return nil
}

func (c *Collection[T]) Sort() (string, SortDirection) {
	return c.sortKey, c.sortDir
}

// SetPageSize accepts one of PageSizes and returns to the first page.
func (c *Collection[T]) SetPageSize(size int) error {
	for _, allowed := range PageSizes {
		if size == allowed {
			c.pageSize = size
			c.page = 1
			return nil
		}
	}
	return fmt.Errorf("page size %d not in %v", size, PageSizes)
}

func (c *Collection[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

func (c *Collection[T]) CurrentPage() int {
	return c.page
}

// View derives the visible page. A current page past the end is pulled back
// to the last page, or to page 1 when nothing matches.
func (c *Collection[T]) View() Page[T] {
	rows := c.sorted(c.filtered())

	totalPages := (len(rows) + c.pageSize - 1) / c.pageSize
	if c.page > totalPages {
		c.page = totalPages
	}
	if c.page < 1 {
		c.page = 1
	}

	start := (c.page - 1) * c.pageSize
	end := start + c.pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page[T]{
		Items:      rows[start:end],
		Page:       c.page,
		PageSize:   c.pageSize,
		TotalPages: totalPages,
		TotalItems: len(rows),
	}
}

func (c *Collection[T]) filtered() []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) matches(item T) bool {
	for key, needle := range c.filters {
		value := strings.ToLower(c.columns[key](item))
		if !strings.Contains(value, strings.ToLower(needle)) {
			return false
		}
	}
	return true
}

func (c *Collection[T]) sorted(rows []T) []T {
	if c.sortDir == Unsorted {
		return rows
	}

	value := c.columns[c.sortKey]
	desc := c.sortDir == Descending
	sort.SliceStable(rows, func(i, j int) bool {
		a := strings.ToLower(value(rows[i]))
		b := strings.ToLower(value(rows[j]))
		if desc {
			return a > b
		}
		return a < b
	})
	return rows
}

// ======================================================
// LOCAL PATCHES
// ======================================================

func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// Replace swaps the row with the same id. It reports whether one was found.
func (c *Collection[T]) Replace(item T) bool {
	id := c.idOf(item)
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *Collection[T]) Remove(id string) bool {
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
