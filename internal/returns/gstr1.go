package returns

import (
	"sort"
	"strings"
	"time"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
)

const (
	dateLayout = "02-01-2006"

	ExportWithPayment    = "WPAY"
	ExportWithoutPayment = "WOPAY"

	SupplyIntra = "INTRA"
	SupplyInter = "INTER"
)

// GSTR1 is the outward supplies return payload.
type GSTR1 struct {
	GSTIN   string       `json:"gstin"`
	FP      string       `json:"fp"`
	B2B     []B2BEntry   `json:"b2b"`
	B2CL    []B2CLEntry  `json:"b2cl"`
	B2CS    []B2CSEntry  `json:"b2cs"`
	Exp     []ExpEntry   `json:"exp"`
	HSN     HSNSection   `json:"hsn"`
	Summary GSTR1Summary `json:"summary"`
}

// ItemDetail holds rate-level subtotals of one invoice.
type ItemDetail struct {
	Rt    float64 `json:"rt"`
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt,omitempty"`
	Camt  float64 `json:"camt,omitempty"`
	Samt  float64 `json:"samt,omitempty"`
	Csamt float64 `json:"csamt,omitempty"`
}

// RateLine is one rate group within an invoice.
type RateLine struct {
	Num    int        `json:"num"`
	ItmDet ItemDetail `json:"itm_det"`
}

// B2BInvoice is an invoice to a registered recipient.
type B2BInvoice struct {
	Inum   string     `json:"inum"`
	Idt    string     `json:"idt"`
	Val    float64    `json:"val"`
	Pos    string     `json:"pos"`
	Rchrg  string     `json:"rchrg"`
	InvTyp string     `json:"inv_typ"`
	Itms   []RateLine `json:"itms"`
}

// B2BEntry groups invoices by recipient GSTIN.
type B2BEntry struct {
	CTIN string       `json:"ctin"`
	Inv  []B2BInvoice `json:"inv"`
}

// B2CLInvoice is a large invoice to an unregistered recipient.
type B2CLInvoice struct {
	Inum string     `json:"inum"`
	Idt  string     `json:"idt"`
	Val  float64    `json:"val"`
	Itms []RateLine `json:"itms"`
}

// B2CLEntry groups large unregistered invoices by place of supply.
type B2CLEntry struct {
	Pos string        `json:"pos"`
	Inv []B2CLInvoice `json:"inv"`
}

// B2CSEntry is the aggregate of small unregistered supplies for one
// (place of supply, rate, supply type).
type B2CSEntry struct {
	SplyTy string  `json:"sply_ty"`
	Pos    string  `json:"pos"`
	Typ    string  `json:"typ"`
	Rt     float64 `json:"rt"`
	Txval  float64 `json:"txval"`
	Iamt   float64 `json:"iamt"`
	Camt   float64 `json:"camt"`
	Samt   float64 `json:"samt"`
	Csamt  float64 `json:"csamt"`
}

// ExpInvoice is an export or SEZ invoice.
type ExpInvoice struct {
	Inum    string     `json:"inum"`
	Idt     string     `json:"idt"`
	Val     float64    `json:"val"`
	SBPCode string     `json:"sbpcode,omitempty"`
	SBNum   string     `json:"sbnum,omitempty"`
	SBDt    string     `json:"sbdt,omitempty"`
	Itms    []RateLine `json:"itms"`
}

// ExpEntry groups export invoices by payment-of-tax type.
type ExpEntry struct {
	ExpTyp string       `json:"exp_typ"`
	Inv    []ExpInvoice `json:"inv"`
}

// HSNLine is the aggregate of every line item with one (HSN/SAC, rate).
type HSNLine struct {
	Num   int     `json:"num"`
	HSNSC string  `json:"hsn_sc"`
	Desc  string  `json:"desc"`
	UQC   string  `json:"uqc"`
	Qty   float64 `json:"qty"`
	Rt    float64 `json:"rt"`
	Val   float64 `json:"val"`
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

// HSNSection wraps the HSN summary rows.
type HSNSection struct {
	Data []HSNLine `json:"data"`
}

// GSTR1Summary totals the return.
type GSTR1Summary struct {
	TotalInvoices     int     `json:"totalInvoices"`
	B2BInvoices       int     `json:"b2bInvoices"`
	B2CLInvoices      int     `json:"b2clInvoices"`
	B2CSInvoices      int     `json:"b2csInvoices"`
	ExportInvoices    int     `json:"exportInvoices"`
	TotalTaxableValue float64 `json:"totalTaxableValue"`
	TotalCGST         float64 `json:"totalCGST"`
	TotalSGST         float64 `json:"totalSGST"`
	TotalIGST         float64 `json:"totalIGST"`
	TotalCess         float64 `json:"totalCess"`
	TotalTax          float64 `json:"totalTax"`
	TotalInvoiceValue float64 `json:"totalInvoiceValue"`
}

// GSTR1Input is everything the GSTR-1 assembler reads.
type GSTR1Input struct {
	Business *domain.Business
	Period   gst.Period
	Invoices []domain.Invoice
}

type amounts struct {
	txval, iamt, camt, samt, csamt float64
}

func (m *amounts) add(tb *gst.TaxBreakdown) {
	m.txval = gst.Sum(m.txval, tb.TaxableAmount)
	m.iamt = gst.Sum(m.iamt, tb.IGSTAmount)
	m.camt = gst.Sum(m.camt, tb.CGSTAmount)
	m.samt = gst.Sum(m.samt, tb.SGSTAmount)
	m.csamt = gst.Sum(m.csamt, tb.CessAmount)
}

func (m *amounts) tax() float64 {
	return gst.Sum(m.iamt, m.camt, m.samt, m.csamt)
}

// rateLines regroups an invoice's items by rate, lowest rate first.
func rateLines(items []gst.ComputedItem) []RateLine {
	byRate := make(map[float64]*amounts)
	for i := range items {
		rt := items[i].GSTRate
		acc, ok := byRate[rt]
		if !ok {
			acc = &amounts{}
			byRate[rt] = acc
		}
		acc.add(&items[i].Tax)
	}
	rates := make([]float64, 0, len(byRate))
	for rt := range byRate {
		rates = append(rates, rt)
	}
	sort.Float64s(rates)

	lines := make([]RateLine, len(rates))
	for i, rt := range rates {
		acc := byRate[rt]
		lines[i] = RateLine{Num: i + 1, ItmDet: ItemDetail{
			Rt: rt, Txval: acc.txval, Iamt: acc.iamt, Camt: acc.camt, Samt: acc.samt, Csamt: acc.csamt,
		}}
	}
	return lines
}

type b2csKey struct {
	pos    string
	rate   float64
	splyTy string
}

type hsnKey struct {
	code string
	rate float64
}

type hsnAcc struct {
	amounts
	desc string
	uqc  string
	qty  float64
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func sortByDateNumber[T any](s []T, date func(T) time.Time, num func(T) string) {
	sort.SliceStable(s, func(i, j int) bool {
		di, dj := date(s[i]), date(s[j])
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return num(s[i]) < num(s[j])
	})
}

// AssembleGSTR1 buckets the period's invoices into B2B, B2CL, B2CS and export sections
// and builds the HSN summary. Output order is fully determined by the input documents.
func (a *Assembler) AssembleGSTR1(in GSTR1Input) (*GSTR1, error) {
	if err := validateBusiness(in.Business); err != nil {
		return nil, err
	}
	computed, err := a.computeInvoices(in.Business, in.Period, in.Invoices)
	if err != nil {
		return nil, err
	}
	sortByDateNumber(computed,
		func(c computedInvoice) time.Time { return c.inv.InvoiceDate },
		func(c computedInvoice) string { return c.inv.InvoiceNumber })

	loc := a.rules.location()
	out := &GSTR1{
		GSTIN: in.Business.GSTIN,
		FP:    in.Period.String(),
		B2B:   []B2BEntry{},
		B2CL:  []B2CLEntry{},
		B2CS:  []B2CSEntry{},
		Exp:   []ExpEntry{},
		HSN:   HSNSection{Data: []HSNLine{}},
	}

	b2b := make(map[string]*B2BEntry)
	b2cl := make(map[string]*B2CLEntry)
	exp := make(map[string]*ExpEntry)
	b2cs := make(map[b2csKey]*amounts)
	hsn := make(map[hsnKey]*hsnAcc)
	sum := &out.Summary
	var taxable, cgst, sgst, igst, cess, value []float64

	for _, c := range computed {
		inv, res := c.inv, c.res
		t := &res.Totals
		idt := formatDate(inv.InvoiceDate, loc)

		switch {
		case inv.Category.IsZeroRated():
			typ := ExportWithoutPayment
			if inv.Category == domain.CategorySEZ {
				typ = ExportWithPayment
			}
			e, ok := exp[typ]
			if !ok {
				e = &ExpEntry{ExpTyp: typ}
				exp[typ] = e
			}
			ei := ExpInvoice{
				Inum: inv.InvoiceNumber, Idt: idt, Val: t.TotalAmount,
				SBPCode: inv.PortCode, SBNum: inv.ShippingBillNumber, Itms: rateLines(res.Items),
			}
			if inv.ShippingBillDate != nil {
				ei.SBDt = formatDate(*inv.ShippingBillDate, loc)
			}
			e.Inv = append(e.Inv, ei)
			sum.ExportInvoices++

		case inv.Category == domain.CategoryB2B && inv.CustomerGSTIN != "":
			e, ok := b2b[inv.CustomerGSTIN]
			if !ok {
				e = &B2BEntry{CTIN: inv.CustomerGSTIN}
				b2b[inv.CustomerGSTIN] = e
			}
			e.Inv = append(e.Inv, B2BInvoice{
				Inum: inv.InvoiceNumber, Idt: idt, Val: t.TotalAmount, Pos: inv.PlaceOfSupply,
				Rchrg: yesNo(inv.ReverseCharge), InvTyp: "R", Itms: rateLines(res.Items),
			})
			sum.B2BInvoices++

		case t.TotalAmount > a.rules.B2CLThreshold:
			e, ok := b2cl[inv.PlaceOfSupply]
			if !ok {
				e = &B2CLEntry{Pos: inv.PlaceOfSupply}
				b2cl[inv.PlaceOfSupply] = e
			}
			e.Inv = append(e.Inv, B2CLInvoice{
				Inum: inv.InvoiceNumber, Idt: idt, Val: t.TotalAmount, Itms: rateLines(res.Items),
			})
			sum.B2CLInvoices++

		default:
			splyTy := SupplyIntra
			if invoiceInput(inv, in.Business).SellerStateCode != inv.PlaceOfSupply {
				splyTy = SupplyInter
			}
			for i := range res.Items {
				k := b2csKey{pos: inv.PlaceOfSupply, rate: res.Items[i].GSTRate, splyTy: splyTy}
				acc, ok := b2cs[k]
				if !ok {
					acc = &amounts{}
					b2cs[k] = acc
				}
				acc.add(&res.Items[i].Tax)
			}
			sum.B2CSInvoices++
		}

		for i := range res.Items {
			it := &res.Items[i]
			code := strings.TrimSpace(it.HSNCode)
			k := hsnKey{code: code, rate: it.GSTRate}
			acc, ok := hsn[k]
			if !ok {
				acc = &hsnAcc{uqc: "OTH"}
				hsn[k] = acc
			}
			if u := strings.ToUpper(strings.TrimSpace(it.Unit)); u != "" && acc.uqc == "OTH" {
				acc.uqc = u
			}
			if acc.desc == "" {
				acc.desc = it.Description
			}
			acc.qty = gst.Sum(acc.qty, it.Quantity)
			acc.add(&it.Tax)
		}

		taxable = append(taxable, t.TaxableAmount)
		cgst = append(cgst, t.CGST)
		sgst = append(sgst, t.SGST)
		igst = append(igst, t.IGST)
		cess = append(cess, t.Cess)
		value = append(value, t.TotalAmount)
	}

	// Invoices were appended in date order, so only the group keys need sorting.
	for _, k := range sortedKeys(b2b) {
		out.B2B = append(out.B2B, *b2b[k])
	}
	for _, k := range sortedKeys(b2cl) {
		out.B2CL = append(out.B2CL, *b2cl[k])
	}
	for _, k := range sortedKeys(exp) {
		out.Exp = append(out.Exp, *exp[k])
	}
	out.B2CS = b2csEntries(b2cs)
	out.HSN.Data = hsnLines(hsn)

	sum.TotalInvoices = len(computed)
	sum.TotalTaxableValue = gst.Sum(taxable...)
	sum.TotalCGST = gst.Sum(cgst...)
	sum.TotalSGST = gst.Sum(sgst...)
	sum.TotalIGST = gst.Sum(igst...)
	sum.TotalCess = gst.Sum(cess...)
	sum.TotalTax = gst.Sum(sum.TotalCGST, sum.TotalSGST, sum.TotalIGST, sum.TotalCess)
	sum.TotalInvoiceValue = gst.Sum(value...)
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func b2csEntries(m map[b2csKey]*amounts) []B2CSEntry {
	keys := make([]b2csKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pos != keys[j].pos {
			return keys[i].pos < keys[j].pos
		}
		if keys[i].rate != keys[j].rate {
			return keys[i].rate < keys[j].rate
		}
		return keys[i].splyTy < keys[j].splyTy
	})
	out := make([]B2CSEntry, len(keys))
	for i, k := range keys {
		acc := m[k]
		out[i] = B2CSEntry{
			SplyTy: k.splyTy, Pos: k.pos, Typ: "OE", Rt: k.rate,
			Txval: acc.txval, Iamt: acc.iamt, Camt: acc.camt, Samt: acc.samt, Csamt: acc.csamt,
		}
	}
	return out
}

// hsnLines orders the HSN summary by code then rate; serial numbers follow that order.
func hsnLines(m map[hsnKey]*hsnAcc) []HSNLine {
	keys := make([]hsnKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].code != keys[j].code {
			return keys[i].code < keys[j].code
		}
		return keys[i].rate < keys[j].rate
	})
	out := make([]HSNLine, len(keys))
	for i, k := range keys {
		acc := m[k]
		out[i] = HSNLine{
			Num: i + 1, HSNSC: k.code, Desc: acc.desc, UQC: acc.uqc, Qty: acc.qty, Rt: k.rate,
			Val:   gst.Sum(acc.txval, acc.tax()),
			Txval: acc.txval, Iamt: acc.iamt, Camt: acc.camt, Samt: acc.samt, Csamt: acc.csamt,
		}
	}
	return out
}
