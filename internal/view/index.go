package view

import (
	"strconv"
	"strings"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

// Row is one visible entry of the item table.
type Row struct {
	Item     entity.Item
	Expanded bool
}

// Index maintains the filtered, searched item listing and per-item
// expansion state. Rows recomputes only after an input changed; repeated
// reads return the same cached slice. Not safe for concurrent use.
type Index struct {
	items    []entity.Item
	filter   constants.FilterMode
	search   string
	expanded map[int]bool

	dirty bool
	rows  []Row
}

func NewIndex() *Index {
	return &Index{
		filter:   constants.FilterAll,
		expanded: make(map[int]bool),
		dirty:    true,
	}
}

// SetItems replaces the backing item list and clears expansion state.
func (x *Index) SetItems(items []entity.Item) {
	x.items = items
	x.expanded = make(map[int]bool)
	x.dirty = true
}

func (x *Index) SetFilter(mode constants.FilterMode) {
	if x.filter == mode {
		return
	}
	x.filter = mode
	x.dirty = true
}

func (x *Index) Filter() constants.FilterMode { return x.filter }

// SetSearch updates the search term. Matching is case-insensitive over the
// item index, product code and product name.
func (x *Index) SetSearch(term string) {
	if x.search == term {
		return
	}
	x.search = term
	x.dirty = true
}

func (x *Index) Search() string { return x.search }

// Toggle flips the expansion state of the item at the given index.
func (x *Index) Toggle(itemIndex int) {
	x.expanded[itemIndex] = !x.expanded[itemIndex]
	x.dirty = true
}

// Rows returns the current visible rows, recomputing if needed.
func (x *Index) Rows() []Row {
	if !x.dirty {
		return x.rows
	}
	rows := make([]Row, 0, len(x.items))
	needle := strings.ToLower(strings.TrimSpace(x.search))
	for _, it := range x.items {
		if !x.matchFilter(it) {
			continue
		}
		if needle != "" && !matchSearch(it, needle) {
			continue
		}
		rows = append(rows, Row{Item: it, Expanded: x.expanded[it.Index]})
	}
	x.rows = rows
	x.dirty = false
	return x.rows
}

func (x *Index) matchFilter(it entity.Item) bool {
	switch x.filter {
	case constants.FilterCompliant:
		return it.Status == constants.ItemStatusCompliant
	case constants.FilterDivergent:
		return it.Status == constants.ItemStatusDivergent
	default:
		return true
	}
}

func matchSearch(it entity.Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.ProductCode), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(it.ProductName), needle) {
		return true
	}
	return strings.Contains(strconv.Itoa(it.Index), needle)
}
