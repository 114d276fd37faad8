package returns

import (
	"math"
	"time"

	"gstreturns/internal/gst"
)

// Heads holds an amount per tax head.
type Heads struct {
	IGST float64 `json:"igst"`
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
	Cess float64 `json:"cess"`
}

// Total is the sum across heads.
func (h Heads) Total() float64 {
	return gst.Sum(h.IGST, h.CGST, h.SGST, h.Cess)
}

// Add returns h + o per head.
func (h Heads) Add(o Heads) Heads {
	return Heads{
		IGST: gst.Sum(h.IGST, o.IGST),
		CGST: gst.Sum(h.CGST, o.CGST),
		SGST: gst.Sum(h.SGST, o.SGST),
		Cess: gst.Sum(h.Cess, o.Cess),
	}
}

// CrossUtilization records how surplus IGST credit was spent.
type CrossUtilization struct {
	IGSTExcess    float64 `json:"igst_excess"`
	AppliedToCGST float64 `json:"applied_to_cgst"`
	AppliedToSGST float64 `json:"applied_to_sgst"`
	Unused        float64 `json:"unused"`
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// NetPayable sets credit off against output tax per head. Surplus IGST credit pays CGST
// first and then SGST; CGST and SGST credit never pays IGST. No head goes below zero and
// credit left over is reported as unused.
func NetPayable(output, credit Heads) (Heads, CrossUtilization) {
	var cu CrossUtilization
	net := Heads{
		IGST: gst.Sum(output.IGST, -credit.IGST),
		CGST: floorZero(gst.Sum(output.CGST, -credit.CGST)),
		SGST: floorZero(gst.Sum(output.SGST, -credit.SGST)),
		Cess: floorZero(gst.Sum(output.Cess, -credit.Cess)),
	}
	if net.IGST < 0 {
		cu.IGSTExcess = -net.IGST
		net.IGST = 0
	}

	excess := cu.IGSTExcess
	cu.AppliedToCGST = math.Min(excess, net.CGST)
	net.CGST = gst.Sum(net.CGST, -cu.AppliedToCGST)
	excess = gst.Sum(excess, -cu.AppliedToCGST)

	cu.AppliedToSGST = math.Min(excess, net.SGST)
	net.SGST = gst.Sum(net.SGST, -cu.AppliedToSGST)
	cu.Unused = gst.Sum(excess, -cu.AppliedToSGST)
	return net, cu
}

// LateFee is the GSTR-3B late fee, charged per act under the CGST, SGST and IGST acts.
type LateFee struct {
	DueDate  string  `json:"due_date"`
	DaysLate int     `json:"days_late"`
	PerAct   float64 `json:"per_act"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	IGST     float64 `json:"igst"`
	Total    float64 `json:"total"`
}

// ComputeLateFee accrues the per-day fee for each calendar day now is past the due date,
// capped per act. A first attempt for the period is never charged.
func (r Rules) ComputeLateFee(period gst.Period, now time.Time, priorAttempt bool) LateFee {
	due := period.DueDate(r.DueDay)
	fee := LateFee{DueDate: formatDate(due, r.location())}
	if !priorAttempt {
		return fee
	}
	fee.DaysLate = period.DaysAfter(due, now)
	if fee.DaysLate == 0 {
		return fee
	}
	perAct := gst.Round2(float64(fee.DaysLate) * r.LateFeePerDay)
	if r.LateFeeCapPerAct > 0 && perAct > r.LateFeeCapPerAct {
		perAct = r.LateFeeCapPerAct
	}
	fee.PerAct = perAct
	fee.CGST = perAct
	fee.SGST = perAct
	fee.IGST = perAct
	fee.Total = gst.Round2(perAct * acts)
	return fee
}
