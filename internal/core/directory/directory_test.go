package directory

import (
	"testing"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func emp(id, first, last, tag string, birthday time.Time) Employee {
	return Employee{ID: id, FirstName: first, LastName: last, UserTag: tag, Birthday: birthday}
}

func TestNormalize(t *testing.T) {
	raw := []RawEmployee{
		{ID: "1", FirstName: "Ivan", LastName: "Petrov", Department: "ios", Birthday: "1994-03-11", Phone: "89991112233"},
		{ID: "2", FirstName: "Olga", LastName: "Smirnova", Department: "warehouse", Birthday: "not-a-date"},
	}
	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("want 2 records got %d", len(got))
	}
	if got[0].Department != "iOS" || got[0].DepartmentCode != "ios" {
		t.Fatalf("ios label: got %q code %q", got[0].Department, got[0].DepartmentCode)
	}
	if !got[0].Birthday.Equal(d(1994, time.March, 11)) {
		t.Fatalf("birthday parse: got %v", got[0].Birthday)
	}
	if got[1].Department != "" {
		t.Fatalf("unknown code should map to empty label, got %q", got[1].Department)
	}
	if !got[1].Birthday.IsZero() {
		t.Fatalf("bad birthday should stay zero, got %v", got[1].Birthday)
	}
	if got[0].FirstNextYear || got[1].FirstNextYear {
		t.Fatal("normalize must not set FirstNextYear")
	}
}

func TestDepartmentLookup(t *testing.T) {
	cases := []struct{ code, label string }{
		{"android", "Android"},
		{"design", "Дизайн"},
		{"back_office", "Бэк-офис"},
		{"support", "Техподдержка"},
	}
	for _, tc := range cases {
		if got := Label(tc.code); got != tc.label {
			t.Errorf("Label(%q) = %q want %q", tc.code, got, tc.label)
		}
		if got := CodeForLabel(tc.label); got != tc.code {
			t.Errorf("CodeForLabel(%q) = %q want %q", tc.label, got, tc.code)
		}
	}
	if Label("warehouse") != "" {
		t.Error("unknown code must label to empty string")
	}
	if !KnownCode("qa") || KnownCode("warehouse") {
		t.Error("KnownCode mismatch")
	}
	if len(Codes) != 12 {
		t.Fatalf("expected 12 department codes, got %d", len(Codes))
	}
}

func TestAge(t *testing.T) {
	today := d(2026, time.June, 15)
	cases := []struct {
		name     string
		birthday time.Time
		want     int
	}{
		{"birthday passed this year", d(1990, time.March, 1), 36},
		{"birthday later this year", d(1990, time.October, 1), 35},
		{"birthday today", d(1990, time.June, 15), 36},
		{"zero birthday", time.Time{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(tc.birthday, today); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"89991112233", "8 (999) 111 22 33"},
		{"8-999-111-22-33", "8 (999) 111 22 33"},
		{"12345", "12345"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	recs := []Employee{
		emp("1", "Anna", "Karenina", "ak", time.Time{}),
		emp("2", "Boris", "Godunov", "bg", time.Time{}),
	}
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(recs, q)
		if len(got) != len(recs) {
			t.Fatalf("query %q: want identity, got %d records", q, len(got))
		}
		for i := range got {
			if got[i].ID != recs[i].ID {
				t.Fatalf("query %q: order changed at %d", q, i)
			}
		}
	}
}

func TestFilterMatchesNameAndTag(t *testing.T) {
	recs := []Employee{
		emp("1", "Anton", "Orlov", "a.orlov", time.Time{}),
		emp("2", "Boris", "Volkov", "ivanko", time.Time{}),
		emp("3", "Maria", "Kuznetsova", "mk", time.Time{}),
	}

	// "an" hits Anton by first name and ivanko by tag
	got := Filter(recs, "an")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("query an: got %+v", ids(got))
	}

	// case-insensitive across fields
	if got := Filter(recs, "VOLK"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("query VOLK: got %+v", ids(got))
	}

	// idempotent for a fixed query
	again := Filter(Filter(recs, "an"), "an")
	if len(again) != 2 {
		t.Fatalf("filter not idempotent: got %d", len(again))
	}
}

// matching is per field, never against a joined "first last" string
func TestFilterDoesNotSpanFields(t *testing.T) {
	recs := []Employee{emp("1", "Ivan", "Orlov", "", time.Time{})}
	if got := Filter(recs, "ivan orlov"); len(got) != 0 {
		t.Fatalf("cross-field query must not match, got %+v", ids(got))
	}
	if got := Filter(recs, "n o"); len(got) != 0 {
		t.Fatalf("boundary-spanning query must not match, got %+v", ids(got))
	}
}

func TestSortAlphabetical(t *testing.T) {
	col := collate.New(language.Russian)
	recs := []Employee{
		emp("1", "Борис", "Иванов", "", time.Time{}),
		emp("2", "Анна", "Петрова", "", time.Time{}),
		emp("3", "Анна", "Маркова", "", time.Time{}),
	}
	recs[0].FirstNextYear = true // stale marker from a previous birthday sort

	got := SortAlphabetical(recs, col)
	want := []string{"3", "2", "1"} // Анна Маркова, Анна Петрова, Борис
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order: got %v want %v", ids(got), want)
		}
	}
	for _, e := range got {
		if e.FirstNextYear {
			t.Fatal("alphabetical sort must clear FirstNextYear")
		}
	}
	if recs[0].ID != "1" {
		t.Fatal("input slice must not be reordered")
	}
}

func TestSortByBirthdayGrouping(t *testing.T) {
	today := d(2026, time.June, 15)
	recs := []Employee{
		// next occurrence already rolled to 2027
		emp("late", "A", "", "", d(1991, time.January, 10)),
		// 5 days away, this year
		emp("soon", "B", "", "", d(1992, time.June, 20)),
		// 10 days away, this year
		emp("mid", "C", "", "", d(1993, time.June, 25)),
	}

	got := SortByBirthday(recs, today)
	if order := ids(got); order[0] != "soon" || order[1] != "mid" || order[2] != "late" {
		t.Fatalf("order: got %v", order)
	}
	if got[0].FirstNextYear || got[1].FirstNextYear {
		t.Fatal("this-year records must not carry the marker")
	}
	if !got[2].FirstNextYear {
		t.Fatal("first next-year record must carry the marker")
	}
	if n := countMarked(got); n != 1 {
		t.Fatalf("want exactly one marker, got %d", n)
	}
}

func TestSortByBirthdayTodaySortsFirst(t *testing.T) {
	today := d(2026, time.June, 15)
	recs := []Employee{
		emp("tomorrow", "A", "", "", d(1990, time.June, 16)),
		emp("today", "B", "", "", d(1990, time.June, 15)),
	}
	got := SortByBirthday(recs, today)
	if got[0].ID != "today" {
		t.Fatalf("birthday today must sort first, got %v", ids(got))
	}
	if DaysUntil(recs[1].Birthday, today) != 0 {
		t.Fatal("DaysUntil on the birthday itself must be 0")
	}
}

func TestSortByBirthdayStable(t *testing.T) {
	today := d(2026, time.June, 15)
	recs := []Employee{
		emp("a", "A", "", "", d(1990, time.June, 20)),
		emp("b", "B", "", "", d(1985, time.June, 20)),
		emp("c", "C", "", "", d(1999, time.June, 20)),
	}
	got := SortByBirthday(recs, today)
	if order := ids(got); order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("equal keys must keep input order, got %v", order)
	}
}

func TestNextOccurrenceLeapDayClamps(t *testing.T) {
	birthday := d(1996, time.February, 29)

	// 2027 is not a leap year: clamp to Feb 28
	got := NextOccurrence(birthday, d(2026, time.March, 1))
	if !got.Equal(d(2027, time.February, 28)) {
		t.Fatalf("non-leap clamp: got %v", got)
	}

	// 2028 is a leap year: keep Feb 29
	got = NextOccurrence(birthday, d(2027, time.March, 1))
	if !got.Equal(d(2028, time.February, 29)) {
		t.Fatalf("leap year: got %v", got)
	}

	// clamped date today still counts as today
	if days := DaysUntil(birthday, d(2027, time.February, 28)); days != 0 {
		t.Fatalf("clamped occurrence on today: want 0 got %d", days)
	}
}

func TestSortByBirthdayRecomputesMarker(t *testing.T) {
	recs := []Employee{
		emp("x", "A", "", "", d(1990, time.January, 1)),
		emp("y", "B", "", "", d(1990, time.December, 31)),
	}
	first := SortByBirthday(recs, d(2026, time.June, 15))
	second := SortByBirthday(first, d(2026, time.June, 15))
	if countMarked(second) != 1 {
		t.Fatalf("marker must be recomputed, got %d marked", countMarked(second))
	}
}

func ids(es []Employee) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}

func countMarked(es []Employee) int {
	n := 0
	for _, e := range es {
		if e.FirstNextYear {
			n++
		}
	}
	return n
}
