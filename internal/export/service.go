// Package export renders completed audits as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/audittax/audittax/internal/entity"
)

// Filename returns the report file name for an audit.
func Filename(auditID string) string {
	return fmt.Sprintf("audit-%s.xlsx", auditID)
}

// Render produces the XLSX report for one audit result.
func Render(auditID string, bundle *entity.ResultBundle) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Auditoria"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIndex, _ := f.GetSheetIndex("Sheet1"); defIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Auditoria")
	write(2, 1, auditID)
	if bundle.InvoiceHeader != nil {
		write(1, 2, "Chave de acesso")
		write(2, 2, bundle.InvoiceHeader.DocumentKey)
	}
	write(1, 3, "Total de itens")
	write(2, 3, bundle.Summary.Total)
	write(1, 4, "Conformes")
	write(2, 4, bundle.Summary.Compliant)
	write(1, 5, "Divergentes")
	write(2, 5, bundle.Summary.Divergent)

	headers := []string{
		"Item",
		"Código",
		"Produto",
		"Situação",
		"Ocorrências",
		"NCM",
		"CFOP",
		"Quantidade",
		"Valor Unitário",
		"Valor Total",
		"ICMS Apurado",
		"ICMS Referência",
	}
	const headerRow = 7
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, it := range bundle.Items {
		write(1, row, it.Index)
		write(2, row, it.ProductCode)
		write(3, row, it.ProductName)
		write(4, row, string(it.Status))
		write(5, row, strings.Join(it.Issues, "; "))
		if it.Detail != nil {
			write(6, row, it.Detail.NCM)
			write(7, row, it.Detail.CFOP)
			write(8, row, it.Detail.Quantity)
			write(9, row, it.Detail.UnitPrice)
			write(10, row, it.Detail.AmountTotal)
			write(11, row, it.Detail.TaxValue)
			write(12, row, it.Detail.RefTaxValue)
		}
		row++
	}

	if len(bundle.ConsistencyErrors) > 0 {
		row++
		write(1, row, "Inconsistências do documento")
		row++
		for _, ce := range bundle.ConsistencyErrors {
			write(1, row, ce.Field)
			write(2, row, ce.Message)
			write(3, row, ce.DocumentValue)
			write(4, row, ce.ComputedValue)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Service renders reports into a directory at audit completion.
type Service struct {
	dir    string
	logger *slog.Logger
}

func NewService(dir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dir: dir, logger: logger}
}

// Write renders the report and stores it under the reports directory,
// returning the stored path.
func (s *Service) Write(auditID string, bundle *entity.ResultBundle) (string, error) {
	content, err := Render(auditID, bundle)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(s.dir, Filename(auditID))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}
	s.logger.Info("export.xlsx.ok", "audit_id", auditID, "path", path, "bytes", len(content))
	return path, nil
}
