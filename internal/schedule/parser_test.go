package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimes(t *testing.T) {
	placements := ParseTimes("SEG N1 N2 QUA N1 N2")

	assert.Equal(t, []Placement{
		{Day: "Seg", Slot: "N1"},
		{Day: "Seg", Slot: "N2"},
		{Day: "Qua", Slot: "N1"},
		{Day: "Qua", Slot: "N2"},
	}, placements)
}

func TestParseTimesNoDayCode(t *testing.T) {
	// Slots before the first day code have no home and are dropped
	assert.Empty(t, ParseTimes("N1 N2"))
	assert.Empty(t, ParseTimes(""))
	assert.Empty(t, ParseTimes("   "))
}

func TestParseTimesLeadingTokensIgnored(t *testing.T) {
	placements := ParseTimes("X9 SEG M1")

	assert.Equal(t, []Placement{{Day: "Seg", Slot: "M1"}}, placements)
}

func TestParseTimesUnknownSlotKept(t *testing.T) {
	// An unknown slot under a valid day passes through; the grid just has
	// no row for it
	placements := ParseTimes("TER Z7")

	assert.Equal(t, []Placement{{Day: "Ter", Slot: "Z7"}}, placements)
}

func TestParseTimesCaseInsensitiveDayCodes(t *testing.T) {
	placements := ParseTimes("seg M1 Sab T2")

	assert.Equal(t, []Placement{
		{Day: "Seg", Slot: "M1"},
		{Day: "Sáb", Slot: "T2"},
	}, placements)
}
