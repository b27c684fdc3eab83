package supplier

import (
	"regexp"
	"strings"

	"github.com/nimali/invoice-wizard/internal/entity"
)

var (
	// invoice number shape: letter E, digit, letter, then 5-6 digits
	allianceInvoiceNoRe = regexp.MustCompile(`\bE\d[A-Za-z]\d{5,6}\b`)
	// either a 12-Oct-24 style token or the generic d/m/y form, whichever
	// occurs first in the text
	allianceDateRe  = regexp.MustCompile(`\d{1,2}[- ]?[A-Za-z]{3}[- ]?\d{2}\b|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
	allianceTotalRe = regexp.MustCompile(`(?i)INVOICE TOTAL\s*:?\s*(?:Â£|£)?\s*([\d,]+\.\d{2})`)

	allianceItemStartRe = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	allianceNumericRe   = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	allianceAmountRe    = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// allianceNoiseWords mark lines to drop during description accumulation:
// fridge-line flags, parcel references, VAT/total summaries and page footers.
var allianceNoiseWords = []string{"fridge", "parcel", "#", "vat", "total", "page"}

func allianceNoiseLine(line string) bool {
	l := strings.ToLower(line)
	for _, kw := range allianceNoiseWords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

type allianceParser struct{}

func (allianceParser) Header(text string) entity.InvoiceHeader {
	return entity.InvoiceHeader{
		InvoiceNo: firstMatch(allianceInvoiceNoRe, text),
		Date:      firstMatch(allianceDateRe, text),
		Total:     firstGroup(allianceTotalRe, text),
	}
}

// allianceScanState is the state of the multi-line item scanner.
type allianceScanState int

const (
	allianceSeeking allianceScanState = iota
	allianceAccumulating
)

// LineItems scans the text with an explicit cursor over its lines. One
// logical item spans several physical lines: a "<qty> <text>" line opens it,
// further lines extend the description (noise lines are dropped), and a
// purely numeric line ends accumulation. That numeric line and the three
// after it are consumed positionally as unit price, VAT code, a combined
// net+VAT amounts line, and product code. Running out of lines mid-item is
// the natural end of data: the items collected so far are returned.
func (allianceParser) LineItems(text string) []entity.LineItem {
	lines := strings.Split(text, "\n")
	var items []entity.LineItem

	state := allianceSeeking
	var qty string
	var desc []string

	cur := 0
	for cur < len(lines) {
		line := strings.TrimSpace(lines[cur])

		switch state {
		case allianceSeeking:
			m := allianceItemStartRe.FindStringSubmatch(line)
			if m == nil {
				cur++
				continue
			}
			qty = m[1]
			desc = desc[:0]
			desc = append(desc, strings.TrimSpace(m[2]))
			state = allianceAccumulating
			cur++

		case allianceAccumulating:
			if !allianceNumericRe.MatchString(line) {
				if line != "" && !allianceNoiseLine(line) {
					desc = append(desc, line)
				}
				cur++
				continue
			}

			// line is the first of the four trailing fields
			if cur+4 > len(lines) {
				return items
			}
			item := entity.LineItem{
				Description: strings.Join(desc, " "),
				Qty:         entity.Str(qty),
				UnitPrice:   entity.Str(line),
				VATCode:     entity.Str(strings.TrimSpace(lines[cur+1])),
				ProductCode: entity.Str(strings.TrimSpace(lines[cur+3])),
			}
			amounts := allianceAmountRe.FindAllString(lines[cur+2], 2)
			if len(amounts) > 0 {
				item.NetAmount = entity.Str(amounts[0])
			}
			if len(amounts) > 1 {
				item.VATAmount = entity.Str(amounts[1])
			}
			items = append(items, item)
			cur += 4
			state = allianceSeeking
		}
	}
	return items
}
