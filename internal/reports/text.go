package reports

import (
	"fmt"
	"strings"
	"time"

	"go-sales-diary/internal/models"
)

// FormatDaily builds the day's WhatsApp-ready text report: header,
// totals, per-category quantity lines, MTD value. The layout (labels,
// spelling and all) is frozen - the receiving managers parse it by eye
// and any change breaks their routine.
func FormatDaily(user models.UserProfile, report models.DailyReport, allSales []models.DailyReport) string {
	reportDay, _ := time.Parse("2006-01-02", report.Date)

	// Month-to-date value: every report in the same calendar month up
	// to and including the report's own date.
	var mtdValue float64
	for _, s := range allSales {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		if d.Year() == reportDay.Year() && d.Month() == reportDay.Month() && !d.After(reportDay) {
			mtdValue += s.TotalValue
		}
	}

	qty := func(keywords ...string) int {
		total := 0
		for _, it := range report.Items {
			name := strings.ToLower(it.ProductName)
			matched := true
			for _, k := range keywords {
				if !strings.Contains(name, strings.ToLower(k)) {
					matched = false
					break
				}
			}
			if matched {
				total += it.Quantity
			}
		}
		return total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:%s\n", user.Name)
	fmt.Fprintf(&b, "Date: %s\n", reportDay.Format("02/01/06"))
	fmt.Fprintf(&b, "Store Location :%s\n", user.StoreName)
	fmt.Fprintf(&b, "Today’s Sale Value:= %s\n", FormatAmount(report.TotalValue))
	fmt.Fprintf(&b, "Today’s Sale qty=%d\n", report.TotalQty)

	fmt.Fprintf(&b, "Bajaj Mixer Qty: =%02d\n", qty("bajaj", "mixer")+qty("bajaj", "mg")+qty("bajaj", "food processor"))
	fmt.Fprintf(&b, "Morphy Mixer Qty: =%02d\n", qty("mr", "mixer")+qty("mr", "mg")+qty("mr", "grind")+qty("mr", "food processor"))
	fmt.Fprintf(&b, "Storage geyser Qty: %02d\n", qty("storage", "geyser")+qty("water heater"))
	fmt.Fprintf(&b, "Instant geyser Qty: %02d\n", qty("instant", "geyser"))
	fmt.Fprintf(&b, "MR Air fiyar=%02d\n", qty("air fryer"))
	fmt.Fprintf(&b, "MR. OTG 60ltr =%02d\n", qty("otg", "60"))
	fmt.Fprintf(&b, "MR. OTG 29ltr = %02d\n", qty("otg", "29"))
	fmt.Fprintf(&b, "MR 20MWS = %02d\n", qty("microwave")+qty("20mws")) // 20MWS is a model code
	fmt.Fprintf(&b, "Bajaj  setma  iron =%02d\n", qty("bajaj", "steam", "iron"))
	fmt.Fprintf(&b, "Bajaj dry iron=%02d\n", qty("bajaj", "dry", "iron"))
	fmt.Fprintf(&b, "Bajaj induction%02d\n", qty("bajaj", "induction"))
	fmt.Fprintf(&b, "Bajaj sandwich maker=%02d\n", qty("bajaj", "sandwich"))
	fmt.Fprintf(&b, "Bajaj collar=%02d\n", qty("bajaj", "cooler")+qty("bajaj", "air cooler"))

	fmt.Fprintf(&b, "MTD Sale Value = %s", FormatAmount(mtdValue))
	return b.String()
}

// FormatAmount renders a rupee amount with Indian digit grouping
// (12,34,567). Whole amounts drop the decimals, anything else keeps
// two places.
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	// Last three digits stand alone, then groups of two.
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		intPart = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		intPart = "-" + intPart
	}
	return intPart + fracPart
}
