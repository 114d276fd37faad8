package gst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
)

func sampleDocument() gst.DocumentInput {
	return gst.DocumentInput{
		Items: []gst.LineItem{
			{Description: "Steel rods", HSNCode: "7214", Unit: "KGS", Quantity: 2, UnitPrice: 500, Discount: 100, GSTRate: 18},
			{Description: "Consulting", HSNCode: "998311", Unit: "OTH", Quantity: 1, UnitPrice: 1000, GSTRate: 5},
		},
		SellerStateCode: "27",
		BuyerStateCode:  "27",
		Category:        domain.CategoryB2B,
		Discount:        50,
	}
}

func TestCalculateDocument_Totals(t *testing.T) {
	res, err := newCalculator().CalculateDocument(sampleDocument())
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	assert.Equal(t, 900.0, res.Items[0].Tax.TaxableAmount)
	assert.Equal(t, 81.0, res.Items[0].Tax.CGSTAmount)
	assert.Equal(t, 25.0, res.Items[1].Tax.SGSTAmount)

	tot := res.Totals
	assert.Equal(t, 2000.0, tot.Subtotal)
	assert.Equal(t, 100.0, tot.ItemDiscount)
	assert.Equal(t, 1900.0, tot.ItemsTaxableAmount)
	assert.Equal(t, 50.0, tot.DocumentDiscount)
	assert.Equal(t, 1850.0, tot.TaxableAmount)
	assert.Equal(t, 106.0, tot.CGST)
	assert.Equal(t, 106.0, tot.SGST)
	assert.Zero(t, tot.IGST)
	assert.Equal(t, 212.0, tot.TotalTax)
	assert.Equal(t, 2062.0, tot.TotalAmount)
	assert.Zero(t, tot.RoundOff)
	assert.Equal(t, domain.TaxTypeCGSTSGST, res.TaxType)
}

func TestCalculateDocument_DocumentDiscountNotRedistributed(t *testing.T) {
	in := sampleDocument()
	withDiscount, err := newCalculator().CalculateDocument(in)
	require.NoError(t, err)

	in.Discount = 0
	without, err := newCalculator().CalculateDocument(in)
	require.NoError(t, err)

	assert.Equal(t, without.Totals.TotalTax, withDiscount.Totals.TotalTax)
	assert.Equal(t, without.Totals.TaxableAmount-50, withDiscount.Totals.TaxableAmount)
}

func TestCalculateDocument_RoundOff(t *testing.T) {
	tests := []struct {
		name         string
		item         gst.LineItem
		buyer        string
		wantTotal    float64
		wantRounded  float64
		wantRoundOff float64
	}{
		{"round_up", gst.LineItem{Quantity: 1, UnitPrice: 99.99, GSTRate: 18}, "29", 117.99, 118, 0.01},
		{"round_down", gst.LineItem{Quantity: 1, UnitPrice: 100.40, GSTRate: 0}, "27", 100.40, 100, -0.40},
		{"half_rounds_up", gst.LineItem{Quantity: 1, UnitPrice: 100.50, GSTRate: 0}, "27", 100.50, 101, 0.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newCalculator().CalculateDocument(gst.DocumentInput{
				Items:           []gst.LineItem{tt.item},
				SellerStateCode: "27", BuyerStateCode: tt.buyer,
				Category: domain.CategoryB2CSmall,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.Totals.TotalAmount)
			assert.Equal(t, tt.wantRounded, res.Totals.RoundedTotal)
			assert.Equal(t, tt.wantRoundOff, res.Totals.RoundOff)
		})
	}
}

func TestCalculateDocument_Conservation(t *testing.T) {
	docs := []gst.DocumentInput{
		sampleDocument(),
		{
			Items: []gst.LineItem{
				{Quantity: 3, UnitPrice: 333.33, Discount: 0.99, GSTRate: 12},
				{Quantity: 7, UnitPrice: 14.29, GSTRate: 28, CessRate: 12},
				{Quantity: 1.5, UnitPrice: 80.01, Discount: 10, GSTRate: 5},
			},
			SellerStateCode: "24", BuyerStateCode: "09", Category: domain.CategoryB2B, Discount: 25,
		},
	}
	for _, in := range docs {
		res, err := newCalculator().CalculateDocument(in)
		require.NoError(t, err)

		var items []float64
		for _, it := range res.Items {
			items = append(items, it.Tax.TaxableAmount)
		}
		assert.Equal(t, gst.Sum(items...), res.Totals.ItemsTaxableAmount)
		assert.Equal(t, gst.Sum(res.Totals.Subtotal, -res.Totals.ItemDiscount), res.Totals.ItemsTaxableAmount)
	}
}

func TestCalculateDocument_Idempotent(t *testing.T) {
	calc := newCalculator()
	first, err := calc.CalculateDocument(sampleDocument())
	require.NoError(t, err)
	second, err := calc.CalculateDocument(sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateDocument_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		in := sampleDocument()
		in.Items = nil
		_, err := newCalculator().CalculateDocument(in)
		assert.True(t, errors.Is(err, domain.ErrEmptyDocument))
	})

	t.Run("bad_item_fails_whole_document", func(t *testing.T) {
		in := sampleDocument()
		in.Items[1].GSTRate = 14
		res, err := newCalculator().CalculateDocument(in)
		assert.Nil(t, res)
		require.True(t, errors.Is(err, domain.ErrInvalidRate))

		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "items[1].gst_rate", fe.Field)
		assert.Equal(t, "14", fe.Value)
	})

	t.Run("discount_exceeds_item", func(t *testing.T) {
		in := sampleDocument()
		in.Items[0].Discount = 1000
		_, err := newCalculator().CalculateDocument(in)
		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
		assert.Equal(t, "items[0].taxable_amount", fe.Field)
	})

	t.Run("zero_quantity", func(t *testing.T) {
		in := sampleDocument()
		in.Items[0].Quantity = 0
		_, err := newCalculator().CalculateDocument(in)
		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "items[0].quantity", fe.Field)
	})

	t.Run("document_discount_exceeds_taxable", func(t *testing.T) {
		in := sampleDocument()
		in.Discount = 5000
		_, err := newCalculator().CalculateDocument(in)
		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "discount", fe.Field)
	})

	t.Run("negative_document_discount", func(t *testing.T) {
		in := sampleDocument()
		in.Discount = -1
		_, err := newCalculator().CalculateDocument(in)
		assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
	})
}
