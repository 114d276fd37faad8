package returns_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstreturns/internal/domain"
	"gstreturns/internal/returns"
)

// scenarioD gives output IGST 5,000, CGST 1,000, SGST 1,000 against IGST credit of 6,000.
func scenarioD() returns.GSTR3BInput {
	return returns.GSTR3BInput{
		Business: testBusiness(),
		Period:   jan2026(),
		Invoices: []domain.Invoice{
			invoice("INV-001", day(time.January, 5), domain.CategoryB2B, buyerGSTIN, "29", item("7214", 1, 100000, 5)),
			invoice("INV-002", day(time.January, 6), domain.CategoryB2CSmall, "", "27", item("1006", 1, 40000, 5)),
		},
		Purchases: []domain.Purchase{
			purchase("P-001", day(time.January, 3), domain.PurchaseGoods, "29", purchaseItem("7214", 120000, 5, true)),
		},
		Now: day(time.February, 10),
	}
}

func TestAssembleGSTR3B_ScenarioD(t *testing.T) {
	out, err := newAssembler().AssembleGSTR3B(scenarioD())
	require.NoError(t, err)

	assert.Equal(t, returns.SupplyLine{Txval: 140000, Iamt: 5000, Camt: 1000, Samt: 1000}, out.SupDetails.OsupDet)
	assert.Equal(t, 6000.0, out.ITCElg.ItcNet.Iamt)

	assert.Equal(t, returns.TaxPayable{IGST: 0, CGST: 0, SGST: 1000, Cess: 0, Total: 1000}, out.TaxPayable)
	assert.Equal(t, returns.CrossUtilization{IGSTExcess: 1000, AppliedToCGST: 1000, AppliedToSGST: 0, Unused: 0}, out.CrossUtilization)
	assert.Zero(t, out.IntrLtfee.Ltfee.Total)
	assert.Equal(t, 1000.0, out.TotalPayable)
	assert.Equal(t, 7000.0, out.Summary.TotalOutputTax)
	assert.Equal(t, 6000.0, out.Summary.TotalITC)
}

func TestAssembleGSTR3B_ScenarioE_LateFee(t *testing.T) {
	in := scenarioD()
	in.Now = time.Date(2026, time.March, 7, 9, 0, 0, 0, returns.IST)

	t.Run("first_attempt", func(t *testing.T) {
		out, err := newAssembler().AssembleGSTR3B(in)
		require.NoError(t, err)
		assert.Zero(t, out.IntrLtfee.Ltfee.Total)
	})

	t.Run("regenerated_after_due", func(t *testing.T) {
		in.PriorAttempt = true
		out, err := newAssembler().AssembleGSTR3B(in)
		require.NoError(t, err)
		fee := out.IntrLtfee.Ltfee
		assert.Equal(t, 15, fee.DaysLate)
		assert.Equal(t, 750.0, fee.PerAct)
		assert.Equal(t, 750.0, fee.CGST)
		assert.Equal(t, 750.0, fee.SGST)
		assert.Equal(t, 750.0, fee.IGST)
		assert.Equal(t, 2250.0, fee.Total)
		assert.Equal(t, "20-02-2026", fee.DueDate)
		// Late fee stays out of the tax heads.
		assert.Equal(t, 1000.0, out.TaxPayable.Total)
		assert.Equal(t, 3250.0, out.TotalPayable)
	})
}

func TestAssembleGSTR3B_Partitions(t *testing.T) {
	rcm := invoice("INV-003", day(time.January, 7), domain.CategoryB2B, buyerGSTIN, "27", item("9965", 1, 10000, 5))
	rcm.ReverseCharge = true

	imported := purchase("BOE-1", day(time.January, 4), domain.PurchaseImport, "", purchaseItem("8471", 10000, 18, true))
	imported.SupplierGSTIN = ""
	service := purchase("BOE-2", day(time.January, 4), domain.PurchaseImport, "", purchaseItem("998314", 5000, 18, true))
	service.SupplierGSTIN = ""
	reverse := purchase("P-RCM", day(time.January, 8), domain.PurchaseServices, "27", purchaseItem("996511", 2000, 5, true))
	reverse.ReverseCharge = true
	mixed := purchase("P-002", day(time.January, 9), domain.PurchaseGoods, "27",
		purchaseItem("2202", 1000, 28, false), purchaseItem("7214", 1000, 18, true))
	blocked := purchase("P-003", day(time.January, 10), domain.PurchaseGoods, "27", purchaseItem("8703", 1000, 28, true))
	blocked.ITCEligible = false

	in := returns.GSTR3BInput{
		Business: testBusiness(),
		Period:   jan2026(),
		Invoices: []domain.Invoice{
			invoice("INV-001", day(time.January, 5), domain.CategoryExport, "", "", item("8471", 1, 50000, 18)),
			invoice("INV-002", day(time.January, 6), domain.CategoryB2CSmall, "", "27", item("1006", 1, 1000, 18)),
			rcm,
		},
		Purchases: []domain.Purchase{imported, service, reverse, mixed, blocked},
		Now:       day(time.February, 1),
	}
	out, err := newAssembler().AssembleGSTR3B(in)
	require.NoError(t, err)

	sup := out.SupDetails
	assert.Equal(t, returns.SupplyLine{Txval: 50000}, sup.OsupZero)
	assert.Equal(t, returns.SupplyLine{Txval: 1000, Camt: 90, Samt: 90}, sup.OsupDet)
	assert.Equal(t, returns.SupplyLine{Txval: 10000, Camt: 250, Samt: 250}, sup.IsupRev)

	avl := out.ITCElg.ItcAvl
	require.Len(t, avl, 4)
	assert.Equal(t, "IMPG", avl[0].Ty)
	assert.Equal(t, 1800.0, avl[0].Iamt)
	assert.Equal(t, "IMPS", avl[1].Ty)
	assert.Equal(t, 900.0, avl[1].Iamt)
	assert.Equal(t, "ISRC", avl[2].Ty)
	assert.Equal(t, 50.0, avl[2].Camt)
	assert.Equal(t, "OTH", avl[3].Ty)
	assert.Equal(t, 90.0, avl[3].Camt)

	assert.Equal(t, returns.ITCAmounts{Iamt: 2700, Camt: 140, Samt: 140}, out.ITCElg.ItcNet)
	assert.Equal(t, returns.ITCAmounts{Camt: 280, Samt: 280}, out.ITCElg.ItcInelg)

	// Output 340 CGST/SGST (regular + reverse charge) less 140 credit leaves 200 each,
	// fully covered by the 2,700 IGST surplus.
	assert.Equal(t, returns.TaxPayable{}, out.TaxPayable)
	assert.Equal(t, 2700.0, out.CrossUtilization.IGSTExcess)
	assert.Equal(t, 200.0, out.CrossUtilization.AppliedToCGST)
	assert.Equal(t, 200.0, out.CrossUtilization.AppliedToSGST)
	assert.Equal(t, 2300.0, out.CrossUtilization.Unused)
	assert.Equal(t, 5, out.Summary.TotalPurchases)
}

func TestAssembleGSTR3B_DuplicatePurchase(t *testing.T) {
	in := scenarioD()
	in.Purchases = append(in.Purchases, in.Purchases[0])
	_, err := newAssembler().AssembleGSTR3B(in)
	assert.True(t, errors.Is(err, domain.ErrDuplicateDocument))
}

func TestAssembleGSTR3B_SkipsDeletedAndOutOfPeriod(t *testing.T) {
	in := scenarioD()
	deleted := purchase("P-009", day(time.January, 3), domain.PurchaseGoods, "29", purchaseItem("7214", 99999, 5, true))
	deleted.Status = domain.DocumentStatusDeleted
	late := purchase("P-010", day(time.February, 2), domain.PurchaseGoods, "29", purchaseItem("7214", 99999, 5, true))
	in.Purchases = append(in.Purchases, deleted, late)

	out, err := newAssembler().AssembleGSTR3B(in)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.TotalPurchases)
	assert.Equal(t, 6000.0, out.ITCElg.ItcNet.Iamt)
}
