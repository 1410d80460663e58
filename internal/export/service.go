package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/luis-carvajal/invoice-extractor/internal/entity"
	"github.com/luis-carvajal/invoice-extractor/internal/numeric"
	"github.com/luis-carvajal/invoice-extractor/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces export
// payloads.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) for the stored invoices
// matching the filter.
func (s *Service) ExportXLSX(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	start := time.Now()
	invs, err := s.invoices.ListInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	buf, err := WriteXLSX(invs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.xlsx.ok", "rows", len(invs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf, nil
}

// ExportJSON returns the flat JSON summary for the stored invoices matching
// the filter.
func (s *Service) ExportJSON(ctx context.Context, filter repository.ListFilter) ([]byte, error) {
	invs, err := s.invoices.ListInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	buf, err := MarshalJSON(invs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.json.ok", "rows", len(invs))
	return buf, nil
}

var xlsxHeaders = []string{
	"Invoice Number",
	"Issue Date",
	"Pallets",
	"Net Weight",
	"Gross Weight",
	"Total",
	"Currency",
	"Mismatch",
}

// WriteXLSX builds the summary workbook in memory. Amounts are rendered
// with two decimal places and weights with four; the last row carries the
// exact grand totals.
func WriteXLSX(invoices []*entity.Invoice) ([]byte, error) {
	rows, grand := BuildRows(invoices)

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	writeRow := func(rowIdx int, r Row) {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.InvoiceNumber)
		write(2, r.IssueDate)
		write(3, r.Pallets)
		write(4, numeric.FormatWeight(r.NetWeight))
		write(5, numeric.FormatWeight(r.GrossWeight))
		write(6, numeric.FormatMoney(r.Total))
		write(7, r.CurrencyCode)
		if r.Mismatch {
			write(8, "YES")
		}
	}

	rowIdx := 2
	for _, r := range rows {
		writeRow(rowIdx, r)
		rowIdx++
	}
	grand.IssueDate = ""
	writeRow(rowIdx, grand)

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 10)
	_ = f.SetColWidth(sheet, "D", "F", 14)
	_ = f.SetColWidth(sheet, "G", "H", 10)
	_ = f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	lastCell, _ := excelize.CoordinatesToCellName(len(xlsxHeaders), rowIdx)
	_ = f.AutoFilter(sheet, "A1:"+lastCell, nil)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
