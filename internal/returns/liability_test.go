package returns_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gstreturns/internal/gst"
	"gstreturns/internal/returns"
)

func TestNetPayable(t *testing.T) {
	tests := []struct {
		name   string
		output returns.Heads
		credit returns.Heads
		want   returns.Heads
		cu     returns.CrossUtilization
	}{
		{
			name:   "scenario_d_cgst_before_sgst",
			output: returns.Heads{IGST: 5000, CGST: 1000, SGST: 1000},
			credit: returns.Heads{IGST: 6000},
			want:   returns.Heads{SGST: 1000},
			cu:     returns.CrossUtilization{IGSTExcess: 1000, AppliedToCGST: 1000},
		},
		{
			name:   "surplus_spills_to_sgst",
			output: returns.Heads{IGST: 1000, CGST: 500, SGST: 500},
			credit: returns.Heads{IGST: 1800},
			want:   returns.Heads{SGST: 200},
			cu:     returns.CrossUtilization{IGSTExcess: 800, AppliedToCGST: 500, AppliedToSGST: 300},
		},
		{
			name:   "surplus_left_unused",
			output: returns.Heads{CGST: 100, SGST: 100},
			credit: returns.Heads{IGST: 500},
			want:   returns.Heads{},
			cu:     returns.CrossUtilization{IGSTExcess: 500, AppliedToCGST: 100, AppliedToSGST: 100, Unused: 300},
		},
		{
			name:   "cgst_credit_never_pays_igst",
			output: returns.Heads{IGST: 1000},
			credit: returns.Heads{CGST: 5000, SGST: 5000},
			want:   returns.Heads{IGST: 1000},
		},
		{
			name:   "cess_netted_alone",
			output: returns.Heads{Cess: 300},
			credit: returns.Heads{IGST: 1000, Cess: 100},
			want:   returns.Heads{Cess: 200},
			cu:     returns.CrossUtilization{IGSTExcess: 1000, Unused: 1000},
		},
		{
			name:   "no_credit",
			output: returns.Heads{IGST: 10.55, CGST: 3.21, SGST: 3.21, Cess: 1},
			want:   returns.Heads{IGST: 10.55, CGST: 3.21, SGST: 3.21, Cess: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cu := returns.NetPayable(tt.output, tt.credit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.cu, cu)
		})
	}
}

func TestNetPayable_Bounds(t *testing.T) {
	values := []float64{0, 0.01, 99.99, 1000, 2500.5}
	for _, oi := range values {
		for _, oc := range values {
			for _, ci := range values {
				for _, cc := range values {
					out := returns.Heads{IGST: oi, CGST: oc, SGST: oc / 2}
					cr := returns.Heads{IGST: ci, CGST: cc, SGST: cc}
					net, cu := returns.NetPayable(out, cr)

					assert.GreaterOrEqual(t, net.IGST, 0.0)
					assert.GreaterOrEqual(t, net.CGST, 0.0)
					assert.GreaterOrEqual(t, net.SGST, 0.0)
					assert.LessOrEqual(t, gst.Sum(cu.AppliedToCGST, cu.AppliedToSGST), cu.IGSTExcess)
					assert.Equal(t, cu.IGSTExcess, gst.Sum(cu.AppliedToCGST, cu.AppliedToSGST, cu.Unused))
				}
			}
		}
	}
}

func TestComputeLateFee(t *testing.T) {
	rules := returns.DefaultRules()
	p := jan2026()
	at := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 18, 0, 0, 0, returns.IST) }

	tests := []struct {
		name    string
		now     time.Time
		prior   bool
		days    int
		perAct  float64
		wantTot float64
	}{
		{"before_due", at(time.February, 10), true, 0, 0, 0},
		{"on_due_date", at(time.February, 20), true, 0, 0, 0},
		{"one_day_late", at(time.February, 21), true, 1, 50, 150},
		{"scenario_e_fifteen_days", at(time.March, 7), true, 15, 750, 2250},
		{"capped", at(time.September, 1), true, 193, 5000, 15000},
		{"first_attempt_is_free", at(time.March, 7), false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := rules.ComputeLateFee(p, tt.now, tt.prior)
			assert.Equal(t, tt.days, fee.DaysLate)
			assert.Equal(t, tt.perAct, fee.PerAct)
			assert.Equal(t, tt.wantTot, fee.Total)
			assert.Equal(t, "20-02-2026", fee.DueDate)
		})
	}
}
