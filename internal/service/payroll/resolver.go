package payroll

import (
	"fmt"
	"time"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/pkg/dates"
)

// ResolveMonthly returns the novelties that apply to targetMonth for
// one employee, materializing recurring study licenses that have no
// stored row in that month yet. It is a pure function of its inputs and
// re-derives everything on every call; external edits to the stored
// rows are the only way its answer changes.
//
// Rules, in order:
//  1. If the employee was hired after targetMonth, nothing applies.
//  2. A non-recurring novelty applies iff its date falls in targetMonth.
//  3. A recurring study license applies from its startMonth onward. If
//     any study-license row is already stored for targetMonth the
//     recurrence is manifested and only stored rows are used; otherwise
//     one virtual row per origin is synthesized, dated the first of the
//     month, with a deterministic id derived from the origin.
//  4. Deleting the origin row stops all future synthesis; the origin is
//     the schedule.
func ResolveMonthly(all []novelty.Novelty, hireDate *time.Time, targetMonth string) []novelty.Novelty {
	if hireDate != nil && dates.MonthOf(*hireDate) > targetMonth {
		return nil
	}

	var effective []novelty.Novelty
	manifested := false

	for _, n := range all {
		if isRecurringLicense(n) {
			if n.StartMonth <= targetMonth && n.MonthKey() == targetMonth {
				effective = append(effective, n)
				manifested = true
			}
			continue
		}
		if n.MonthKey() == targetMonth {
			effective = append(effective, n)
			if n.Type == novelty.TypeStudyLicense {
				manifested = true
			}
		}
	}

	if manifested {
		return effective
	}

	for _, n := range all {
		if isRecurringLicense(n) && n.StartMonth <= targetMonth {
			effective = append(effective, synthesizeLicense(n, targetMonth))
		}
	}

	return effective
}

func isRecurringLicense(n novelty.Novelty) bool {
	return n.IsRecurring && n.StartMonth != "" && n.Type == novelty.TypeStudyLicense
}

// synthesizeLicense builds the virtual row for a month the origin
// covers but has no stored entry for. The id is a stable derivation of
// (origin, month) so repeated resolution yields the same row and never
// collides with stored ids.
func synthesizeLicense(origin novelty.Novelty, targetMonth string) novelty.Novelty {
	n := origin
	n.ID = fmt.Sprintf("%s%s-%s", novelty.SyntheticIDPrefix, origin.ID, targetMonth)
	year, month, _ := dates.ParseMonth(targetMonth)
	n.Date = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n.Description = fmt.Sprintf("%s (Licencia recurrente desde %s)", origin.Description, origin.StartMonth)
	return n
}

// TotalDiscountDays sums the discounted days over the absence-class
// novelties in an effective set.
func TotalDiscountDays(novelties []novelty.Novelty) int {
	total := 0
	for _, n := range novelties {
		if novelty.AbsenceTypes[n.Type] {
			total += n.DiscountDays
		}
	}
	return total
}
