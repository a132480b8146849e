package schedule

import "strings"

// Days are the grid columns, in display order.
var Days = []string{"Seg", "Ter", "Qua", "Qui", "Sex"}

// TimeSlots are the grid rows, in display order: morning, afternoon, night.
var TimeSlots = []string{
	"M1", "M2", "M3", "M4", "M5", "M6",
	"T1", "T2", "T3", "T4", "T5",
	"N1", "N2", "N3", "N4", "N5",
}

// dayNames maps backend day-code tokens to display names.
var dayNames = map[string]string{
	"SEG": "Seg",
	"TER": "Ter",
	"QUA": "Qua",
	"QUI": "Qui",
	"SEX": "Sex",
	"SAB": "Sáb",
}

// Placement is one parsed (day, time-slot) occurrence of a class.
type Placement struct {
	Day  string
	Slot string
}

// ParseTimes tokenizes a backend times string such as "SEG N1 N2 QUA N1 N2".
// A day-code token sets the current day; every following token is a slot on
// that day until the next day code. Tokens before the first day code are
// ignored. Unknown slot tokens under a valid day are kept as-is; the grid
// simply has no matching row for them.
func ParseTimes(times string) []Placement {
	var placements []Placement
	currentDay := ""

	for _, token := range strings.Fields(times) {
		if day, ok := dayNames[strings.ToUpper(token)]; ok {
			currentDay = day
			continue
		}
		if currentDay == "" {
			continue
		}
		placements = append(placements, Placement{Day: currentDay, Slot: token})
	}

	return placements
}
