package directory

import (
	"strings"
	"time"

	ptime "staffdir/internal/platform/time"
)

// birthdayLayout is the remote wire format for birthdays
const birthdayLayout = "2006-01-02"

// Normalize turns raw wire records into display records in input order.
// It never errors: unknown department codes get an empty label and an
// unparseable birthday stays the zero time.
func Normalize(raw []RawEmployee) []Employee {
	out := make([]Employee, 0, len(raw))
	for _, r := range raw {
		e := Employee{
			ID:             r.ID,
			AvatarURL:      r.AvatarURL,
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			UserTag:        r.UserTag,
			Position:       r.Position,
			DepartmentCode: r.Department,
			Department:     Label(r.Department),
			Phone:          r.Phone,
		}
		if t, err := time.Parse(birthdayLayout, r.Birthday); err == nil {
			e.Birthday = t
		}
		out = append(out, e)
	}
	return out
}

// Age returns full years lived as of today
// a birthday falling on today counts as already had
func Age(birthday, today time.Time) int {
	if birthday.IsZero() {
		return 0
	}
	age := today.Year() - birthday.Year()
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.After(ptime.Midnight(today)) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// FormatPhone renders an 11-digit number as "8 (999) 111 22 33"
// anything that is not exactly 11 digits comes back untouched
func FormatPhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) != 11 {
		return raw
	}
	var b strings.Builder
	b.Grow(17)
	b.WriteByte(digits[0])
	b.WriteString(" (")
	b.WriteString(digits[1:4])
	b.WriteString(") ")
	b.WriteString(digits[4:7])
	b.WriteByte(' ')
	b.WriteString(digits[7:9])
	b.WriteByte(' ')
	b.WriteString(digits[9:11])
	return b.String()
}
