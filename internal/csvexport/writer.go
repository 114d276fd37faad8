package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gstreturns/internal/returns"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the HSN summary header row (12 columns).
var columns = []string{
	"Sr No",
	"HSN/SAC",
	"Description",
	"UQC",
	"Total Quantity",
	"Rate",
	"Total Value",
	"Taxable Value",
	"Integrated Tax Amount",
	"Central Tax Amount",
	"State/UT Tax Amount",
	"Cess Amount",
}

// Writer wraps csv.Writer for exporting the GSTR-1 HSN summary as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 12-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteHSN converts HSN summary lines to CSV rows and writes them.
func (w *Writer) WriteHSN(lines []returns.HSNLine) error {
	for i := range lines {
		if err := w.csv.Write(hsnToRow(&lines[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteGSTR1HSN writes the BOM, header and every HSN line of a GSTR-1 and flushes.
func WriteGSTR1HSN(dst io.Writer, r *returns.GSTR1) error {
	if _, err := dst.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(dst)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteHSN(r.HSN.Data); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func hsnToRow(l *returns.HSNLine) []string {
	return []string{
		strconv.Itoa(l.Num),
		l.HSNSC,
		l.Desc,
		l.UQC,
		formatQty(l.Qty),
		formatRate(l.Rt),
		formatMoney(l.Val),
		formatMoney(l.Txval),
		formatMoney(l.Iamt),
		formatMoney(l.Camt),
		formatMoney(l.Samt),
		formatMoney(l.Csamt),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatQty drops trailing zeros.
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {gstin}_{period}_{section}.{ext}
func BuildFilename(gstin, period, section, ext string) string {
	return fmt.Sprintf("%s.%s", SanitizeFilename(gstin+"_"+period+"_"+section), ext)
}
