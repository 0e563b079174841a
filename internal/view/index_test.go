package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func indexItems() []entity.Item {
	return []entity.Item{
		{Index: 1, ProductCode: "NCM100", ProductName: "Cabo Flexivel", Status: constants.ItemStatusCompliant},
		{Index: 2, ProductCode: "NCM200", ProductName: "Disjuntor", Status: constants.ItemStatusDivergent},
		{Index: 3, ProductCode: "NCM300", ProductName: "Tomada Dupla", Status: constants.ItemStatusCompliant},
		{Index: 12, ProductCode: "XYZ900", ProductName: "cabo coaxial", Status: constants.ItemStatusDivergent},
	}
}

func TestFilterPartition(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	all := x.Rows()
	require.Len(t, all, 4)

	x.SetFilter(constants.FilterCompliant)
	compliant := x.Rows()
	x.SetFilter(constants.FilterDivergent)
	divergent := x.Rows()

	// The two filtered listings partition the full one.
	require.Equal(t, len(all), len(compliant)+len(divergent))
	for _, r := range compliant {
		require.Equal(t, constants.ItemStatusCompliant, r.Item.Status)
	}
	for _, r := range divergent {
		require.Equal(t, constants.ItemStatusDivergent, r.Item.Status)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.SetSearch("CABO")
	rows := x.Rows()
	require.Len(t, rows, 2)
	require.Equal(t, 1, rows[0].Item.Index)
	require.Equal(t, 12, rows[1].Item.Index)
}

func TestSearchByItemIndex(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.SetSearch("12")
	rows := x.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "XYZ900", rows[0].Item.ProductCode)
}

func TestSearchNoMatch(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.SetSearch("nao existe")
	require.Empty(t, x.Rows())
}

func TestSearchAndFilterCombine(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.SetSearch("cabo")
	x.SetFilter(constants.FilterDivergent)
	rows := x.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, 12, rows[0].Item.Index)
}

func TestRowsMemoized(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	first := x.Rows()
	second := x.Rows()
	require.Equal(t, &first[0], &second[0], "unchanged inputs must reuse the cached slice")

	// Setting the same filter again is a no-op and keeps the cache.
	x.SetFilter(constants.FilterAll)
	third := x.Rows()
	require.Equal(t, &first[0], &third[0])

	x.SetFilter(constants.FilterCompliant)
	fourth := x.Rows()
	require.NotEqual(t, len(first), len(fourth))
}

func TestToggleExpansion(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.Toggle(2)
	for _, r := range x.Rows() {
		require.Equal(t, r.Item.Index == 2, r.Expanded)
	}

	x.Toggle(2)
	for _, r := range x.Rows() {
		require.False(t, r.Expanded)
	}
}

func TestExpansionSurvivesFilter(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	x.Toggle(2)
	x.SetFilter(constants.FilterDivergent)
	x.SetFilter(constants.FilterAll)
	var found bool
	for _, r := range x.Rows() {
		if r.Item.Index == 2 {
			found = true
			require.True(t, r.Expanded)
		}
	}
	require.True(t, found)
}

func TestSetItemsResetsExpansion(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())
	x.Toggle(1)
	x.SetItems(indexItems())
	for _, r := range x.Rows() {
		require.False(t, r.Expanded)
	}
}

func TestOrderPreserved(t *testing.T) {
	x := NewIndex()
	x.SetItems(indexItems())

	rows := x.Rows()
	for i := 1; i < len(rows); i++ {
		require.Less(t, rows[i-1].Item.Index, rows[i].Item.Index)
	}
}
