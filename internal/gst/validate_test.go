package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstreturns/internal/domain"
	"gstreturns/internal/gst"
)

func TestValidStateCode(t *testing.T) {
	for _, ok := range []string{"01", "07", "27", "38", "96", "97"} {
		assert.True(t, gst.ValidStateCode(ok), ok)
	}
	for _, bad := range []string{"", "0", "00", "39", "99", "2A", "027"} {
		assert.False(t, gst.ValidStateCode(bad), bad)
	}
}

func TestValidateGSTIN(t *testing.T) {
	assert.NoError(t, gst.ValidateGSTIN("gstin", "27AAPFU0939F1ZV"))
	assert.NoError(t, gst.ValidateGSTIN("gstin", "29AABCT3518Q1ZV"))
	assert.ErrorIs(t, gst.ValidateGSTIN("gstin", "27AAPFU0939F1Z"), domain.ErrInvalidGSTIN)
	assert.ErrorIs(t, gst.ValidateGSTIN("gstin", "99AAPFU0939F1ZV"), domain.ErrInvalidGSTIN)
	assert.ErrorIs(t, gst.ValidateGSTIN("gstin", "27aapfu0939f1zv"), domain.ErrInvalidGSTIN)
	assert.Equal(t, "27", gst.GSTINStateCode("27AAPFU0939F1ZV"))
}

func TestValidateStateCode(t *testing.T) {
	assert.NoError(t, gst.ValidateStateCode("state", "27"))
	assert.ErrorIs(t, gst.ValidateStateCode("state", ""), domain.ErrMissingState)
	assert.ErrorIs(t, gst.ValidateStateCode("state", "40"), domain.ErrInvalidStateCode)
}
