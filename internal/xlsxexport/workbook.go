// Package xlsxexport renders a GSTR-1 payload as a workbook laid out like the GST offline
// utility, one sheet per section.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gstreturns/internal/returns"
)

// Sheet names in workbook order.
const (
	SheetB2B  = "b2b"
	SheetB2CL = "b2cl"
	SheetB2CS = "b2cs"
	SheetExp  = "exp"
	SheetHSN  = "hsn"
)

var headers = map[string][]any{
	SheetB2B: {"GSTIN/UIN of Recipient", "Invoice Number", "Invoice date", "Invoice Value", "Place Of Supply",
		"Reverse Charge", "Invoice Type", "Rate", "Taxable Value", "Integrated Tax Amount", "Central Tax Amount",
		"State/UT Tax Amount", "Cess Amount"},
	SheetB2CL: {"Invoice Number", "Invoice date", "Invoice Value", "Place Of Supply", "Rate", "Taxable Value",
		"Integrated Tax Amount", "Central Tax Amount", "State/UT Tax Amount", "Cess Amount"},
	SheetB2CS: {"Type", "Place Of Supply", "Supply Type", "Rate", "Taxable Value", "Integrated Tax Amount",
		"Central Tax Amount", "State/UT Tax Amount", "Cess Amount"},
	SheetExp: {"Export Type", "Invoice Number", "Invoice date", "Invoice Value", "Port Code",
		"Shipping Bill Number", "Shipping Bill Date", "Rate", "Taxable Value"},
	SheetHSN: {"HSN", "Description", "UQC", "Total Quantity", "Rate", "Total Value", "Taxable Value",
		"Integrated Tax Amount", "Central Tax Amount", "State/UT Tax Amount", "Cess Amount"},
}

// Sheets lists the section sheets in the order they appear.
var Sheets = []string{SheetB2B, SheetB2CL, SheetB2CS, SheetExp, SheetHSN}

// Build renders r into a new workbook. The caller must Close it.
func Build(r *returns.GSTR1) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xlsxexport: header style: %w", err)
	}

	rows := map[string][][]any{
		SheetB2B:  b2bRows(r.B2B),
		SheetB2CL: b2clRows(r.B2CL),
		SheetB2CS: b2csRows(r.B2CS),
		SheetExp:  expRows(r.Exp),
		SheetHSN:  hsnRows(r.HSN.Data),
	}

	for i, name := range Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("xlsxexport: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("xlsxexport: new sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, bold, headers[name], rows[name]); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("xlsxexport: sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write renders r and streams the workbook to w.
func Write(w io.Writer, r *returns.GSTR1) error {
	f, err := Build(r)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.WriteTo(w)
	return err
}

func writeSheet(f *excelize.File, sheet string, style int, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func b2bRows(entries []returns.B2BEntry) [][]any {
	var rows [][]any
	for _, e := range entries {
		for _, inv := range e.Inv {
			for _, it := range inv.Itms {
				d := it.ItmDet
				rows = append(rows, []any{e.CTIN, inv.Inum, inv.Idt, inv.Val, inv.Pos, inv.Rchrg,
					invoiceType(inv.InvTyp), d.Rt, d.Txval, d.Iamt, d.Camt, d.Samt, d.Csamt})
			}
		}
	}
	return rows
}

func b2clRows(entries []returns.B2CLEntry) [][]any {
	var rows [][]any
	for _, e := range entries {
		for _, inv := range e.Inv {
			for _, it := range inv.Itms {
				d := it.ItmDet
				// Large unregistered invoices are bucketed by value, so intra-state ones carry CGST/SGST.
				rows = append(rows, []any{inv.Inum, inv.Idt, inv.Val, e.Pos, d.Rt, d.Txval, d.Iamt, d.Camt, d.Samt,
					d.Csamt})
			}
		}
	}
	return rows
}

func b2csRows(entries []returns.B2CSEntry) [][]any {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{e.Typ, e.Pos, e.SplyTy, e.Rt, e.Txval, e.Iamt, e.Camt, e.Samt, e.Csamt})
	}
	return rows
}

func expRows(entries []returns.ExpEntry) [][]any {
	var rows [][]any
	for _, e := range entries {
		for _, inv := range e.Inv {
			for _, it := range inv.Itms {
				d := it.ItmDet
				rows = append(rows, []any{e.ExpTyp, inv.Inum, inv.Idt, inv.Val, inv.SBPCode, inv.SBNum, inv.SBDt,
					d.Rt, d.Txval})
			}
		}
	}
	return rows
}

func hsnRows(lines []returns.HSNLine) [][]any {
	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []any{l.HSNSC, l.Desc, l.UQC, l.Qty, l.Rt, l.Val, l.Txval, l.Iamt, l.Camt, l.Samt, l.Csamt})
	}
	return rows
}

func invoiceType(code string) string {
	if code == "R" {
		return "Regular B2B"
	}
	return code
}
