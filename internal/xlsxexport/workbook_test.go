package xlsxexport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstreturns/internal/returns"
	"gstreturns/internal/xlsxexport"
)

func sampleReturn() *returns.GSTR1 {
	return &returns.GSTR1{
		GSTIN: "27AAPFU0939F1ZV",
		FP:    "2026-01",
		B2B: []returns.B2BEntry{{
			CTIN: "29AABCT3518Q1ZV",
			Inv: []returns.B2BInvoice{{
				Inum: "INV-001", Idt: "10-01-2026", Val: 2360, Pos: "29", Rchrg: "N", InvTyp: "R",
				Itms: []returns.RateLine{
					{Num: 1, ItmDet: returns.ItemDetail{Rt: 18, Txval: 1000, Iamt: 180}},
					{Num: 2, ItmDet: returns.ItemDetail{Rt: 12, Txval: 1000, Iamt: 120}},
				},
			}},
		}},
		B2CL: []returns.B2CLEntry{},
		B2CS: []returns.B2CSEntry{
			{SplyTy: returns.SupplyIntra, Pos: "27", Typ: "OE", Rt: 5, Txval: 400, Camt: 10, Samt: 10},
		},
		Exp: []returns.ExpEntry{{
			ExpTyp: returns.ExportWithoutPayment,
			Inv: []returns.ExpInvoice{{
				Inum: "EXP-1", Idt: "12-01-2026", Val: 5000, SBPCode: "INNSA1", SBNum: "778899", SBDt: "13-01-2026",
				Itms: []returns.RateLine{{Num: 1, ItmDet: returns.ItemDetail{Rt: 0, Txval: 5000}}},
			}},
		}},
		HSN: returns.HSNSection{Data: []returns.HSNLine{
			{Num: 1, HSNSC: "8471", UQC: "NOS", Qty: 2, Rt: 18, Val: 1180, Txval: 1000, Iamt: 180},
		}},
	}
}

func TestBuild_Sheets(t *testing.T) {
	f, err := xlsxexport.Build(sampleReturn())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, xlsxexport.Sheets, f.GetSheetList())
}

func TestBuild_B2BOneRowPerRate(t *testing.T) {
	f, err := xlsxexport.Build(sampleReturn())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxexport.SheetB2B)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "GSTIN/UIN of Recipient", rows[0][0])
	assert.Equal(t, "29AABCT3518Q1ZV", rows[1][0])
	assert.Equal(t, "Regular B2B", rows[1][6])
	assert.Equal(t, "18", rows[1][7])
	assert.Equal(t, "12", rows[2][7])
	assert.Equal(t, "120", rows[2][9])
}

func TestBuild_OtherSections(t *testing.T) {
	f, err := xlsxexport.Build(sampleReturn())
	require.NoError(t, err)
	defer f.Close()

	b2cl, err := f.GetRows(xlsxexport.SheetB2CL)
	require.NoError(t, err)
	assert.Len(t, b2cl, 1, "header only")

	b2cs, err := f.GetRows(xlsxexport.SheetB2CS)
	require.NoError(t, err)
	require.Len(t, b2cs, 2)
	assert.Equal(t, []string{"OE", "27", "INTRA", "5", "400", "0", "10", "10", "0"}, b2cs[1])

	exp, err := f.GetRows(xlsxexport.SheetExp)
	require.NoError(t, err)
	require.Len(t, exp, 2)
	assert.Equal(t, "WOPAY", exp[1][0])
	assert.Equal(t, "INNSA1", exp[1][4])

	hsn, err := f.GetRows(xlsxexport.SheetHSN)
	require.NoError(t, err)
	require.Len(t, hsn, 2)
	assert.Equal(t, "8471", hsn[1][0])
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxexport.Write(&buf, sampleReturn()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(xlsxexport.SheetB2B, "B2")
	require.NoError(t, err)
	assert.Equal(t, "INV-001", v)
}

func TestBuild_EmptyReturn(t *testing.T) {
	f, err := xlsxexport.Build(&returns.GSTR1{})
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range xlsxexport.Sheets {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, sheet)
	}
}

func TestBuild_B2CLIntrastateKeepsCentralAndStateTax(t *testing.T) {
	r := sampleReturn()
	r.B2CL = []returns.B2CLEntry{{
		Pos: "27",
		Inv: []returns.B2CLInvoice{{
			Inum: "INV-9", Idt: "05-01-2026", Val: 354000,
			Itms: []returns.RateLine{{Num: 1, ItmDet: returns.ItemDetail{Rt: 18, Txval: 300000, Camt: 27000, Samt: 27000}}},
		}},
	}}

	f, err := xlsxexport.Build(r)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxexport.SheetB2CL)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Central Tax Amount", rows[0][7])
	assert.Equal(t, "State/UT Tax Amount", rows[0][8])
	assert.Equal(t, []string{"INV-9", "05-01-2026", "354000", "27", "18", "300000", "0", "27000", "27000", "0"}, rows[1])
}
