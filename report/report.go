// Package report renders a Schedule as an HTML document: one 13x6 grid
// per room (period row 1..12, columns label/Mon../Fri), grounded on
// spec.md §6's HTML collaborator description. The teacher repo carries
// no HTML layer of its own, so this package is built directly on
// html/template for its escaping discipline rather than hand-built
// string concatenation — no templating library appears anywhere in the
// retrieved pack, so stdlib is the only grounded choice here (see
// DESIGN.md).
package report

import (
	"html/template"
	"io"

	"github.com/cpmech/gaschedule/criteria"
	"github.com/cpmech/gaschedule/domain"
	"github.com/cpmech/gaschedule/schedule"
)

var dayNames = [domain.DaysNum]string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// markerLetters is the fixed criterion-to-letter mapping (§6): Room,
// Seats, Lab, Professor, Group.
var markerLetters = [criteria.Count]string{"R", "S", "L", "P", "G"}

type marker struct {
	Letter string
	OK     bool
}

// cell is one rendered table cell: either a class's starting hour
// (RowSpan = duration, Markers populated) or an empty/continuation slot
// (Skip = true means "don't emit a <td>, it's covered by a rowspan
// above"; an empty, unscheduled hour emits a bare <td>).
type cell struct {
	Occupied   bool
	Skip       bool
	RowSpan    int
	CourseName string
	ProfName   string
	Markers    []marker
}

type roomTable struct {
	Name string
	// Rows[hour][day] — hour in [0, DayHours), day in [0, DaysNum)
	Rows [domain.DayHours][domain.DaysNum]cell
}

type pageData struct {
	Rooms []roomTable
	Days  []string
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Schedule</title>
<style>
table { border-collapse: collapse; margin-bottom: 2em; }
td, th { border: 1px solid #888; padding: 4px 8px; text-align: center; vertical-align: top; }
.ok { color: green; font-weight: bold; }
.bad { color: red; font-weight: bold; }
</style>
</head>
<body>
{{range .Rooms}}
<h2>{{.Name}}</h2>
<table>
<tr><th>Period</th>{{range $.Days}}<th>{{.}}</th>{{end}}</tr>
{{range $h, $row := .Rows}}
<tr><td>{{add1 $h}}</td>
{{range $row}}{{if not .Skip}}<td{{if gt .RowSpan 1}} rowspan="{{.RowSpan}}"{{end}}>{{if .Occupied}}{{.CourseName}}<br>{{.ProfName}}<br>{{range .Markers}}<span class="{{if .OK}}ok{{else}}bad{{end}}">{{.Letter}}</span> {{end}}{{end}}</td>{{end}}{{end}}
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("schedule").Funcs(template.FuncMap{
	"add1": func(i int) int { return i + 1 },
}).Parse(pageTemplate))

// Render writes s as an HTML document to w: one table per room, with
// scheduled classes spanning their duration via rowspan and annotated
// with five colored criterion markers.
func Render(w io.Writer, s *schedule.Schedule) error {
	data := buildPageData(s)
	return tmpl.Execute(w, data)
}

func buildPageData(s *schedule.Schedule) pageData {
	cfg := s.Configuration
	nr := cfg.NumberOfRooms()

	rooms := make([]roomTable, nr)
	for r, room := range cfg.Rooms {
		rooms[r].Name = room.Name
	}

	for pos, cc := range cfg.CourseClasses {
		if s.StartIndex(pos) < 0 {
			continue
		}
		res := s.Reservation(pos)
		markers := buildMarkers(s, pos)

		rooms[res.Room].Rows[res.Time][res.Day] = cell{
			Occupied:   true,
			RowSpan:    cc.Duration,
			CourseName: cc.Course.Name,
			ProfName:   cc.Professor.Name,
			Markers:    markers,
		}
		for k := 1; k < cc.Duration && res.Time+k < domain.DayHours; k++ {
			rooms[res.Room].Rows[res.Time+k][res.Day] = cell{Occupied: true, Skip: true}
		}
	}

	return pageData{Rooms: rooms, Days: dayNames[:]}
}

func buildMarkers(s *schedule.Schedule, classPos int) []marker {
	k := int(criteria.Count)
	out := make([]marker, k)
	for c := 0; c < k; c++ {
		out[c] = marker{Letter: markerLetters[c], OK: s.Criteria[classPos*k+c]}
	}
	return out
}
