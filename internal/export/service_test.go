package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/audittax/audittax/constants"
	"github.com/audittax/audittax/internal/entity"
)

func reportBundle() *entity.ResultBundle {
	return &entity.ResultBundle{
		Summary: entity.Summary{Total: 2, Compliant: 1, Divergent: 1},
		Items: []entity.Item{
			{Index: 1, ProductCode: "P001", ProductName: "Parafuso", Status: constants.ItemStatusCompliant},
			{Index: 2, ProductCode: "P002", ProductName: "Porca", Status: constants.ItemStatusDivergent,
				Issues: []string{"aliquota divergente"},
				Detail: &entity.ItemDetail{NCM: "73181500", CFOP: "5102", Quantity: 10, UnitPrice: 1.5, AmountTotal: 15, TaxValue: 2.7, RefTaxValue: 1.8}},
		},
		InvoiceHeader: &entity.InvoiceHeader{DocumentKey: "35200114200166000187550010000000046550000046"},
	}
}

func TestRenderWorkbook(t *testing.T) {
	content, err := Render("A1", reportBundle())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Auditoria", "B1")
	require.NoError(t, err)
	require.Equal(t, "A1", got)

	code, err := f.GetCellValue("Auditoria", "B9")
	require.NoError(t, err)
	require.Equal(t, "P002", code)
}

func TestServiceWritesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, nil)

	path, err := s.Write("A1", reportBundle())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "audit-A1.xlsx"), path)
	require.FileExists(t, path)
}
