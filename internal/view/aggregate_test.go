package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func sampleBundle() *entity.ResultBundle {
	return &entity.ResultBundle{
		Summary: entity.Summary{Total: 2, Compliant: 1, Divergent: 1},
		Items: []entity.Item{
			{Index: 1, ProductCode: "P001", ProductName: "Parafuso", Status: constants.ItemStatusCompliant},
			{Index: 2, ProductCode: "P002", ProductName: "Porca", Status: constants.ItemStatusDivergent, Issues: []string{"aliquota divergente"}},
		},
		InvoiceHeader: &entity.InvoiceHeader{DocumentKey: "35200114200166000187550010000000046550000046"},
	}
}

func TestCombineWithBundle(t *testing.T) {
	job := entity.JobRecord{ID: "A1", Status: constants.JobStatusCompleted, Progress: 100, Step: "done"}
	v := Combine(job, sampleBundle())

	require.Equal(t, "A1", v.JobID)
	require.Equal(t, constants.JobStatusCompleted, v.Status)
	require.Equal(t, 100, v.Progress)
	require.NotNil(t, v.Summary)
	require.Equal(t, 2, v.Summary.Total)
	require.Len(t, v.Items, 2)
	require.NotNil(t, v.InvoiceHeader)
}

func TestCombineDegraded(t *testing.T) {
	job := entity.JobRecord{ID: "A1", Status: constants.JobStatusCompleted, Progress: 100}
	v := Combine(job, nil)

	require.Equal(t, constants.JobStatusCompleted, v.Status)
	require.Nil(t, v.Summary)
	require.Empty(t, v.Items)
	require.Nil(t, v.InvoiceHeader)
}

func TestCombineIsPure(t *testing.T) {
	job := entity.JobRecord{ID: "A1", Status: constants.JobStatusCompleted, Progress: 100}
	bundle := sampleBundle()

	first := Combine(job, bundle)
	second := Combine(job, bundle)
	require.Equal(t, first, second)

	// A view built from a history record must match the live one when the
	// inputs are the same.
	historical := Combine(entity.JobRecord{ID: "A1", Status: constants.JobStatusCompleted, Progress: 100}, sampleBundle())
	require.Equal(t, first, historical)
}

func TestCombineErrorJob(t *testing.T) {
	job := entity.JobRecord{ID: "A2", Status: constants.JobStatusError, Progress: 30, ErrorMessage: "schema validation failed"}
	v := Combine(job, nil)

	require.Equal(t, constants.JobStatusError, v.Status)
	require.Equal(t, "schema validation failed", v.ErrorMessage)
	require.Nil(t, v.Summary)
}
