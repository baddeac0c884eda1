// Package mockdir implements the black-box directory endpoint the API
// consumes in local runs: canned department datasets selected with
// __example, generated records under __dynamic, and forced statuses via
// __code for failure drills.
package mockdir

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"staffdir/internal/core/directory"
)

// seed rows get fresh uuids at startup so responses look like a real backend
type seedPerson struct {
	first, last, tag, dept, position, birthday, phone string
}

var seeds = []seedPerson{
	{"Anton", "Orlov", "ao", "android", "Senior Engineer", "1991-06-20", "89991112233"},
	{"Maria", "Kuznetsova", "mkuz", "android", "Engineer", "1994-01-12", "89991112234"},
	{"Ivan", "Petrov", "ivanko", "ios", "Lead Engineer", "1989-03-11", "89991112235"},
	{"Olga", "Smirnova", "osmir", "ios", "Engineer", "1996-02-29", "89991112236"},
	{"Pavel", "Sokolov", "psok", "design", "Product Designer", "1992-11-02", "89991112237"},
	{"Anna", "Volkova", "avolk", "design", "UX Researcher", "1995-07-30", "89991112238"},
	{"Dmitry", "Lebedev", "dleb", "management", "Delivery Manager", "1987-09-14", "89991112239"},
	{"Ekaterina", "Novikova", "enov", "qa", "QA Engineer", "1993-05-05", "89991112240"},
	{"Sergey", "Morozov", "smor", "back_office", "Office Manager", "1990-12-25", "89991112241"},
	{"Natalia", "Pavlova", "npav", "frontend", "Frontend Engineer", "1997-04-18", "89991112242"},
	{"Alexey", "Fedorov", "afed", "hr", "Recruiter", "1991-08-08", "89991112243"},
	{"Yulia", "Mikhailova", "ymik", "pr", "PR Manager", "1994-10-21", "89991112244"},
	{"Nikolay", "Egorov", "nego", "backend", "Backend Engineer", "1988-01-31", "89991112245"},
	{"Tatiana", "Kozlova", "tkoz", "support", "Support Specialist", "1998-06-15", "89991112246"},
	{"Mikhail", "Stepanov", "mstep", "analytics", "Data Analyst", "1992-02-14", "89991112247"},
	{"Elena", "Nikitina", "enik", "backend", "Backend Engineer", "1995-09-09", "89991112248"},
}

// Dataset holds the canned records served by the handler
type Dataset struct {
	all []directory.RawEmployee
}

// NewDataset materializes the seed rows with fresh ids
func NewDataset() *Dataset {
	all := make([]directory.RawEmployee, 0, len(seeds))
	for _, s := range seeds {
		all = append(all, directory.RawEmployee{
			ID:         uuid.NewString(),
			AvatarURL:  "https://cdn.fakercloud.com/avatars/" + s.tag + "_128.jpg",
			FirstName:  s.first,
			LastName:   s.last,
			UserTag:    s.tag,
			Department: s.dept,
			Position:   s.position,
			Birthday:   s.birthday,
			Phone:      s.phone,
		})
	}
	return &Dataset{all: all}
}

// All returns every canned record
func (d *Dataset) All() []directory.RawEmployee { return d.all }

// ByDepartment returns the records of one department code
func (d *Dataset) ByDepartment(code string) []directory.RawEmployee {
	out := make([]directory.RawEmployee, 0, len(d.all))
	for _, e := range d.all {
		if e.Department == code {
			out = append(out, e)
		}
	}
	return out
}

// Dynamic generates n random records spread over the known departments
func (d *Dataset) Dynamic(n int) []directory.RawEmployee {
	out := make([]directory.RawEmployee, 0, n)
	for i := 0; i < n; i++ {
		s := seeds[rand.Intn(len(seeds))]
		dept := directory.Codes[rand.Intn(len(directory.Codes))]
		out = append(out, directory.RawEmployee{
			ID:         uuid.NewString(),
			AvatarURL:  "https://cdn.fakercloud.com/avatars/gen_128.jpg",
			FirstName:  s.first,
			LastName:   s.last,
			UserTag:    fmt.Sprintf("%s%d", s.tag, i),
			Department: dept,
			Position:   s.position,
			Birthday:   s.birthday,
			Phone:      s.phone,
		})
	}
	return out
}
