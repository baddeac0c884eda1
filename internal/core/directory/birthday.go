package directory

import (
	"sort"
	"time"

	"golang.org/x/text/collate"

	ptime "staffdir/internal/platform/time"
)

// SortAlphabetical stable-sorts records by first name using the given
// collator and clears any birthday grouping marker
func SortAlphabetical(records []Employee, col *collate.Collator) []Employee {
	out := make([]Employee, len(records))
	copy(out, records)
	for i := range out {
		out[i].FirstNextYear = false
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := col.CompareString(out[i].FirstName, out[j].FirstName); c != 0 {
			return c < 0
		}
		return col.CompareString(out[i].LastName, out[j].LastName) < 0
	})
	return out
}

// NextOccurrence returns the first date >= today with the birthday's month
// and day. A Feb 29 birthday clamps to Feb 28 in non-leap target years.
func NextOccurrence(birthday, today time.Time) time.Time {
	day := ptime.Midnight(today)
	occ := occurrenceInYear(birthday, day.Year())
	if occ.Before(day) {
		occ = occurrenceInYear(birthday, day.Year()+1)
	}
	return occ
}

// occurrenceInYear places the birthday's month/day into year, clamping
// Feb 29 to Feb 28 when year is not a leap year
func occurrenceInYear(birthday time.Time, year int) time.Time {
	month, dayOfMonth := birthday.Month(), birthday.Day()
	if month == time.February && dayOfMonth == 29 && !isLeap(year) {
		dayOfMonth = 28
	}
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysUntil counts whole days from today to the birthday's next occurrence
// a birthday falling on today yields 0
func DaysUntil(birthday, today time.Time) int {
	return int(NextOccurrence(birthday, today).Sub(ptime.Midnight(today)).Hours() / 24)
}

// SortByBirthday orders records by upcoming birthday: the records whose next
// occurrence still falls in today's calendar year come first, then those that
// roll over into the next year, each group stable-sorted by ascending days
// until the occurrence. The first record of the next-year group (if any) is
// marked FirstNextYear.
func SortByBirthday(records []Employee, today time.Time) []Employee {
	day := ptime.Midnight(today)

	type keyed struct {
		e        Employee
		days     int
		nextYear bool
	}
	ks := make([]keyed, 0, len(records))
	for _, e := range records {
		k := keyed{e: e}
		k.e.FirstNextYear = false
		if !e.Birthday.IsZero() {
			occ := NextOccurrence(e.Birthday, day)
			k.days = int(occ.Sub(day).Hours() / 24)
			k.nextYear = occ.Year() > day.Year()
		}
		ks = append(ks, k)
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].nextYear != ks[j].nextYear {
			return !ks[i].nextYear
		}
		return ks[i].days < ks[j].days
	})

	out := make([]Employee, 0, len(ks))
	marked := false
	for _, k := range ks {
		if k.nextYear && !marked {
			k.e.FirstNextYear = true
			marked = true
		}
		out = append(out, k.e)
	}
	return out
}
