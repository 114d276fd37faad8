package returns

import (
	"time"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
)

// ITC table types in GSTR-3B table 4(A).
const (
	ITCTypeImportGoods    = "IMPG"
	ITCTypeImportServices = "IMPS"
	ITCTypeReverseCharge  = "ISRC"
	ITCTypeOther          = "OTH"
)

var itcTypes = []struct {
	ty  string
	cat domain.ITCCategory
}{
	{ITCTypeImportGoods, domain.ITCImportGoods},
	{ITCTypeImportServices, domain.ITCImportServices},
	{ITCTypeReverseCharge, domain.ITCReverseCharge},
	{ITCTypeOther, domain.ITCOther},
}

// GSTR3B is the monthly summary return payload.
type GSTR3B struct {
	GSTIN            string           `json:"gstin"`
	FP               string           `json:"fp"`
	SupDetails       SupDetails       `json:"sup_details"`
	ITCElg           ITCElg           `json:"itc_elg"`
	TaxPayable       TaxPayable       `json:"tax_payable"`
	CrossUtilization CrossUtilization `json:"cross_utilization"`
	IntrLtfee        IntrLtfee        `json:"intr_ltfee"`
	TotalPayable     float64          `json:"total_payable"`
	Summary          GSTR3BSummary    `json:"summary"`
}

// SupplyLine is the taxable value and tax of one supply partition.
type SupplyLine struct {
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

func (s SupplyLine) heads() Heads {
	return Heads{IGST: s.Iamt, CGST: s.Camt, SGST: s.Samt, Cess: s.Csamt}
}

func (s *SupplyLine) add(t *gst.DocumentTotals) {
	s.Txval = gst.Sum(s.Txval, t.TaxableAmount)
	s.Iamt = gst.Sum(s.Iamt, t.IGST)
	s.Camt = gst.Sum(s.Camt, t.CGST)
	s.Samt = gst.Sum(s.Samt, t.SGST)
	s.Csamt = gst.Sum(s.Csamt, t.Cess)
}

// SupDetails is table 3.1: outward taxable, zero-rated and reverse-charge supplies.
type SupDetails struct {
	OsupDet  SupplyLine `json:"osup_det"`
	OsupZero SupplyLine `json:"osup_zero"`
	IsupRev  SupplyLine `json:"isup_rev"`
}

// ITCAmounts is credit per head.
type ITCAmounts struct {
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

func (a *ITCAmounts) addRecord(r *gst.ITCRecord) {
	a.Iamt = gst.Sum(a.Iamt, r.IGST)
	a.Camt = gst.Sum(a.Camt, r.CGST)
	a.Samt = gst.Sum(a.Samt, r.SGST)
	a.Csamt = gst.Sum(a.Csamt, r.Cess)
}

func (a *ITCAmounts) addTax(t *gst.TaxBreakdown) {
	a.Iamt = gst.Sum(a.Iamt, t.IGSTAmount)
	a.Camt = gst.Sum(a.Camt, t.CGSTAmount)
	a.Samt = gst.Sum(a.Samt, t.SGSTAmount)
	a.Csamt = gst.Sum(a.Csamt, t.CessAmount)
}

func (a ITCAmounts) heads() Heads {
	return Heads{IGST: a.Iamt, CGST: a.Camt, SGST: a.Samt, Cess: a.Csamt}
}

// ITCLine is available credit of one type.
type ITCLine struct {
	Ty string `json:"ty"`
	ITCAmounts
}

// ITCElg is table 4: available, ineligible and net credit.
type ITCElg struct {
	ItcAvl   []ITCLine  `json:"itc_avl"`
	ItcInelg ITCAmounts `json:"itc_inelg"`
	ItcNet   ITCAmounts `json:"itc_net"`
}

// TaxPayable is net tax by head after credit.
type TaxPayable struct {
	IGST  float64 `json:"igst"`
	CGST  float64 `json:"cgst"`
	SGST  float64 `json:"sgst"`
	Cess  float64 `json:"cess"`
	Total float64 `json:"total"`
}

// IntrLtfee carries the late fee.
type IntrLtfee struct {
	Ltfee LateFee `json:"ltfee"`
}

// GSTR3BSummary totals the return.
type GSTR3BSummary struct {
	TotalInvoices  int     `json:"totalInvoices"`
	TotalPurchases int     `json:"totalPurchases"`
	TotalOutputTax float64 `json:"totalOutputTax"`
	TotalITC       float64 `json:"totalITC"`
	NetTaxPayable  float64 `json:"netTaxPayable"`
	LateFee        float64 `json:"lateFee"`
}

// GSTR3BInput is everything the GSTR-3B assembler reads. PriorAttempt is true when a
// return for the period was generated before.
type GSTR3BInput struct {
	Business     *domain.Business
	Period       gst.Period
	Invoices     []domain.Invoice
	Purchases    []domain.Purchase
	Now          time.Time
	PriorAttempt bool
}

// AssembleGSTR3B summarises output tax and input credit for the period and computes the
// net payable after cross-utilization, plus any late fee.
func (a *Assembler) AssembleGSTR3B(in GSTR3BInput) (*GSTR3B, error) {
	if err := validateBusiness(in.Business); err != nil {
		return nil, err
	}
	invoices, err := a.computeInvoices(in.Business, in.Period, in.Invoices)
	if err != nil {
		return nil, err
	}
	purchases, err := a.computePurchases(in.Business, in.Period, in.Purchases)
	if err != nil {
		return nil, err
	}

	out := &GSTR3B{GSTIN: in.Business.GSTIN, FP: in.Period.String()}

	sup := &out.SupDetails
	for _, c := range invoices {
		switch {
		case c.inv.Category.IsZeroRated():
			sup.OsupZero.add(&c.res.Totals)
		case c.inv.ReverseCharge:
			sup.IsupRev.add(&c.res.Totals)
		default:
			sup.OsupDet.add(&c.res.Totals)
		}
	}

	avail := make(map[domain.ITCCategory]*ITCAmounts, len(itcTypes))
	for _, t := range itcTypes {
		avail[t.cat] = &ITCAmounts{}
	}
	elg := &out.ITCElg
	for _, c := range purchases {
		for i := range c.res.Items {
			it := &c.res.Items[i]
			if it.ITC.Eligible {
				avail[it.ITC.Category].addRecord(&it.ITC)
				elg.ItcNet.addRecord(&it.ITC)
			} else {
				elg.ItcInelg.addTax(&it.Tax)
			}
		}
	}
	elg.ItcAvl = make([]ITCLine, len(itcTypes))
	for i, t := range itcTypes {
		elg.ItcAvl[i] = ITCLine{Ty: t.ty, ITCAmounts: *avail[t.cat]}
	}

	output := sup.OsupDet.heads().Add(sup.IsupRev.heads())
	net, cu := NetPayable(output, elg.ItcNet.heads())
	out.TaxPayable = TaxPayable{IGST: net.IGST, CGST: net.CGST, SGST: net.SGST, Cess: net.Cess, Total: net.Total()}
	out.CrossUtilization = cu
	out.IntrLtfee.Ltfee = a.rules.ComputeLateFee(in.Period, in.Now, in.PriorAttempt)
	out.TotalPayable = gst.Sum(out.TaxPayable.Total, out.IntrLtfee.Ltfee.Total)

	out.Summary = GSTR3BSummary{
		TotalInvoices:  len(invoices),
		TotalPurchases: len(purchases),
		TotalOutputTax: output.Total(),
		TotalITC:       elg.ItcNet.heads().Total(),
		NetTaxPayable:  out.TaxPayable.Total,
		LateFee:        out.IntrLtfee.Ltfee.Total,
	}
	return out, nil
}
