package planner

import (
	"testing"

	"github.com/julianstephens/joblit/internal/models"
)

func defaultConfig(startMin, endMin int) ScheduleConfig {
	return ScheduleConfig{
		DayStartMinutes: startMin,
		DayEndMinutes:   endMin,
		BlockOrder:      DefaultBlockOrder(),
	}
}

func blockIDs(blocks []Block) []string {
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}

func TestGenerate_DefaultDay(t *testing.T) {
	p := New()

	blocks := p.Generate(defaultConfig(8*60, 17*60))

	wantIDs := []string{
		BlockMorning, BlockHighFocus, BlockApplications, BlockLunch,
		BlockNetworking, BlockInterviewPrep, BlockSkills, BlockEvening,
	}
	gotIDs := blockIDs(blocks)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %d blocks, got %d (%v)", len(wantIDs), len(gotIDs), gotIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("block %d: expected %s, got %s", i, wantIDs[i], gotIDs[i])
		}
	}

	first := blocks[0]
	if first.StartMinutes != 8*60 || first.EndMinutes != 9*60 {
		t.Errorf("morning routine at %d-%d, expected 480-540", first.StartMinutes, first.EndMinutes)
	}
	if first.Display != "08:00–09:00" {
		t.Errorf("unexpected display: %q", first.Display)
	}
}

func TestGenerate_ShiftPreservesDurationsAndGaps(t *testing.T) {
	p := New()

	base := p.Generate(defaultConfig(8*60, 17*60))
	shifted := p.Generate(defaultConfig(9*60+30, 18*60+30))

	if len(base) != len(shifted) {
		t.Fatalf("shifted day lost blocks: %d vs %d", len(base), len(shifted))
	}

	const shift = 90
	for i := range base {
		if !base[i].Timed {
			if shifted[i].Timed {
				t.Errorf("block %s became timed after shift", base[i].ID)
			}
			continue
		}
		if shifted[i].StartMinutes != base[i].StartMinutes+shift {
			t.Errorf("%s start: expected %d, got %d", base[i].ID, base[i].StartMinutes+shift, shifted[i].StartMinutes)
		}
		def, ok := Definition(base[i].ID)
		if !ok {
			t.Fatalf("generated block %s has no definition", base[i].ID)
		}
		if gotDur := shifted[i].EndMinutes - shifted[i].StartMinutes; gotDur != def.Duration() {
			t.Errorf("%s duration changed: expected %d, got %d", base[i].ID, def.Duration(), gotDur)
		}
	}
}

func TestGenerate_LateStartWrapsPastMidnight(t *testing.T) {
	p := New()

	// A 20:00 start pushes lunch (4h after the anchor) past midnight. With
	// the day ending at 05:00, blocks ending before midnight sit past the
	// boundary and get dropped whole; the wrapped ones survive.
	blocks := p.Generate(defaultConfig(20*60, 5*60))

	wantIDs := []string{
		BlockApplications, BlockLunch, BlockNetworking,
		BlockInterviewPrep, BlockSkills, BlockEvening,
	}
	gotIDs := blockIDs(blocks)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("block %d: expected %s, got %s", i, wantIDs[i], gotIDs[i])
		}
	}

	var lunch Block
	for _, b := range blocks {
		if b.ID == BlockLunch {
			lunch = b
		}
	}
	if lunch.StartMinutes != 0 || lunch.EndMinutes != 60 {
		t.Errorf("lunch at %d-%d, expected wrap to 0-60", lunch.StartMinutes, lunch.EndMinutes)
	}
	if lunch.Display != "00:00–01:00" {
		t.Errorf("unexpected lunch display: %q", lunch.Display)
	}
}

func TestGenerate_TruncatesBlocksPastDayEnd(t *testing.T) {
	p := New()

	// A 12:00 day end keeps everything through applications (which ends
	// exactly at the boundary) and drops the rest of the timed blocks.
	blocks := p.Generate(defaultConfig(8*60, 12*60))

	wantIDs := []string{BlockMorning, BlockHighFocus, BlockApplications, BlockEvening}
	gotIDs := blockIDs(blocks)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Errorf("block %d: expected %s, got %s", i, wantIDs[i], gotIDs[i])
		}
	}
}

func TestGenerate_ShorterDayNeverAddsBlocks(t *testing.T) {
	p := New()

	prev := len(p.Generate(defaultConfig(8*60, 17*60)))
	for end := 16 * 60; end >= 9*60; end -= 60 {
		n := len(p.Generate(defaultConfig(8*60, end)))
		if n > prev {
			t.Fatalf("day end %d produced %d blocks, more than %d at the longer day", end, n, prev)
		}
		prev = n
	}
}

func TestGenerate_UnknownBlockIDSkipped(t *testing.T) {
	p := New()

	config := defaultConfig(8*60, 17*60)
	config.BlockOrder = []string{BlockMorning, "standup", BlockLunch}

	blocks := p.Generate(config)
	gotIDs := blockIDs(blocks)
	want := []string{BlockMorning, BlockLunch}
	if len(gotIDs) != len(want) || gotIDs[0] != want[0] || gotIDs[1] != want[1] {
		t.Errorf("expected %v, got %v", want, gotIDs)
	}
}

func TestGenerate_UntimedBlockHasNoDisplay(t *testing.T) {
	p := New()

	blocks := p.Generate(defaultConfig(8*60, 17*60))
	last := blocks[len(blocks)-1]
	if last.ID != BlockEvening {
		t.Fatalf("expected evening block last, got %s", last.ID)
	}
	if last.Timed || last.Display != "" {
		t.Errorf("evening block should be untimed with no display, got timed=%v display=%q", last.Timed, last.Display)
	}
}

func TestGenerate_OutOfRangeConfigReturnsEmpty(t *testing.T) {
	p := New()

	for _, config := range []ScheduleConfig{
		defaultConfig(-1, 17*60),
		defaultConfig(1440, 17*60),
		defaultConfig(8*60, -5),
		defaultConfig(8*60, 2000),
	} {
		if blocks := p.Generate(config); len(blocks) != 0 {
			t.Errorf("config %+v: expected empty schedule, got %v", config, blockIDs(blocks))
		}
	}
}

func TestGenerateFromSettings_BadTimesReturnEmpty(t *testing.T) {
	p := New()

	settings := models.Settings{DayStart: "25:99", DayEnd: "17:00"}
	if blocks := p.GenerateFromSettings(settings); len(blocks) != 0 {
		t.Errorf("expected empty schedule for malformed day start, got %v", blockIDs(blocks))
	}

	settings = models.Settings{DayStart: "08:00", DayEnd: "noon"}
	if blocks := p.GenerateFromSettings(settings); len(blocks) != 0 {
		t.Errorf("expected empty schedule for malformed day end, got %v", blockIDs(blocks))
	}
}

func TestGenerateFromSettings_EmptyOrderUsesCatalog(t *testing.T) {
	p := New()

	settings := models.Settings{DayStart: "08:00", DayEnd: "17:00"}
	blocks := p.GenerateFromSettings(settings)
	if len(blocks) != len(DefaultBlockOrder()) {
		t.Errorf("expected the full catalog for an empty order, got %v", blockIDs(blocks))
	}
}
