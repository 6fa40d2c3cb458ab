package scheduler

import "testing"

func collectBlocks(grid WeeklyGrid) []Block {
	var blocks []Block
	for _, day := range grid.Days {
		for _, group := range day.Groups {
			blocks = append(blocks, group.Blocks...)
		}
	}
	return blocks
}

func TestBuildGridCoverage(t *testing.T) {
	sessions := []Session{
		{ID: 1, CourseID: 1, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
		{ID: 2, CourseID: 1, TeacherID: 1, DayOfWeek: Wednesday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
		{ID: 3, CourseID: 2, TeacherID: 2, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(11, 0)},
		{ID: 4, CourseID: 3, TeacherID: 3, DayOfWeek: Saturday, StartMinute: mins(13, 0), EndMinute: mins(15, 0)},
	}

	grid := BuildGrid(sessions, DefaultGridOptions())

	if len(grid.Days) != 6 {
		t.Fatalf("expected 6 day columns, got %d", len(grid.Days))
	}
	blocks := collectBlocks(grid)
	if len(blocks) != len(sessions) {
		t.Fatalf("expected %d blocks, got %d", len(sessions), len(blocks))
	}

	seen := map[uint]int{}
	for _, b := range blocks {
		seen[b.Session.ID]++
	}
	for _, s := range sessions {
		if seen[s.ID] != 1 {
			t.Fatalf("session %d appears %d times in the grid", s.ID, seen[s.ID])
		}
	}
}

func TestBuildGridSundayOnSixDayWeek(t *testing.T) {
	// Day 7 is valid input even when the window only asks for six columns;
	// the grid must widen rather than lose the session.
	sessions := []Session{
		{ID: 1, CourseID: 1, TeacherID: 1, DayOfWeek: Sunday, StartMinute: mins(9, 0), EndMinute: mins(11, 0)},
	}

	grid := BuildGrid(sessions, DefaultGridOptions())

	if len(grid.Days) != 7 {
		t.Fatalf("expected the grid to widen to 7 day columns, got %d", len(grid.Days))
	}
	blocks := collectBlocks(grid)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block for 1 input session, got %d", len(blocks))
	}
	if got := grid.Days[6]; got.DayOfWeek != Sunday || len(got.Groups) != 1 {
		t.Fatalf("Sunday column should hold the session: %+v", got)
	}
}

func TestBuildGridEmptyDaysKept(t *testing.T) {
	grid := BuildGrid(nil, DefaultGridOptions())
	if len(grid.Days) != 6 {
		t.Fatalf("expected 6 day columns for an empty week, got %d", len(grid.Days))
	}
	for _, day := range grid.Days {
		if day.Groups == nil {
			t.Fatalf("day %d has nil groups; want empty slice", day.DayOfWeek)
		}
		if len(day.Groups) != 0 {
			t.Fatalf("day %d should be empty", day.DayOfWeek)
		}
	}
}

func TestBuildGridOverlapGroup(t *testing.T) {
	// Three sessions all overlapping 09:00-10:00. Creation would have
	// rejected these for one teacher, but the assembler is display-scoped
	// and must lay them out side by side regardless.
	sessions := []Session{
		{ID: 1, CourseID: 1, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(8, 30), EndMinute: mins(10, 0)},
		{ID: 2, CourseID: 2, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 30)},
		{ID: 3, CourseID: 3, TeacherID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(11, 0)},
	}

	grid := BuildGrid(sessions, DefaultGridOptions())
	monday := grid.Days[0]
	if len(monday.Groups) != 1 {
		t.Fatalf("expected one overlap group, got %d", len(monday.Groups))
	}
	group := monday.Groups[0]
	if len(group.Blocks) != 3 {
		t.Fatalf("expected a 3-column group, got %d blocks", len(group.Blocks))
	}
	for i, block := range group.Blocks {
		if block.Column != i {
			t.Fatalf("block %d has column %d", i, block.Column)
		}
		if block.ColumnCount != 3 {
			t.Fatalf("block %d has column_count %d, want 3", i, block.ColumnCount)
		}
	}
	if group.StartMinute != mins(8, 30) || group.EndMinute != mins(11, 0) {
		t.Fatalf("group spans %d-%d, want %d-%d", group.StartMinute, group.EndMinute, mins(8, 30), mins(11, 0))
	}
}

func TestBuildGridSplitsDisjointGroups(t *testing.T) {
	sessions := []Session{
		{ID: 1, CourseID: 1, DayOfWeek: Tuesday, StartMinute: mins(8, 0), EndMinute: mins(10, 0)},
		{ID: 2, CourseID: 2, DayOfWeek: Tuesday, StartMinute: mins(10, 0), EndMinute: mins(12, 0)},
	}

	grid := BuildGrid(sessions, DefaultGridOptions())
	tuesday := grid.Days[1]
	if len(tuesday.Groups) != 2 {
		t.Fatalf("back-to-back sessions must form separate groups, got %d", len(tuesday.Groups))
	}
	for _, group := range tuesday.Groups {
		if len(group.Blocks) != 1 || group.Blocks[0].ColumnCount != 1 {
			t.Fatalf("expected full-width single blocks, got %+v", group)
		}
	}
}

func TestBuildGridNoSameColumnOverlap(t *testing.T) {
	sessions := []Session{
		{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(8, 0), EndMinute: mins(12, 0)},
		{ID: 2, CourseID: 2, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 0)},
		{ID: 3, CourseID: 3, DayOfWeek: Monday, StartMinute: mins(10, 0), EndMinute: mins(11, 0)},
		{ID: 4, CourseID: 4, DayOfWeek: Monday, StartMinute: mins(13, 0), EndMinute: mins(14, 0)},
	}

	grid := BuildGrid(sessions, DefaultGridOptions())
	for _, day := range grid.Days {
		for _, group := range day.Groups {
			for i, a := range group.Blocks {
				for _, b := range group.Blocks[i+1:] {
					if a.Column == b.Column && Overlaps(a.Session, b.Session) {
						t.Fatalf("sessions %d and %d overlap in day %d column %d",
							a.Session.ID, b.Session.ID, day.DayOfWeek, a.Column)
					}
				}
			}
		}
	}
}

func TestBuildGridClipsToWindow(t *testing.T) {
	sessions := []Session{
		{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(7, 0), EndMinute: mins(9, 0)},
		{ID: 2, CourseID: 2, DayOfWeek: Monday, StartMinute: mins(19, 0), EndMinute: mins(21, 0)},
	}

	grid := BuildGrid(sessions, GridOptions{Days: 6, StartHour: 8, EndHour: 20, UnitsPerMinute: 1})
	blocks := collectBlocks(grid)
	if len(blocks) != 2 {
		t.Fatalf("clipped sessions must not be dropped, got %d blocks", len(blocks))
	}

	early := blocks[0]
	if early.Top != 0 {
		t.Fatalf("early session should clip to top 0, got %v", early.Top)
	}
	if early.Height != 60 {
		t.Fatalf("early session should keep only its visible hour, got height %v", early.Height)
	}

	late := blocks[1]
	if late.Top != float64(mins(19, 0)-mins(8, 0)) {
		t.Fatalf("late session top = %v", late.Top)
	}
	if late.Height != 60 {
		t.Fatalf("late session should clip at the bottom, got height %v", late.Height)
	}
}

func TestBuildGridScale(t *testing.T) {
	sessions := []Session{
		{ID: 1, CourseID: 1, DayOfWeek: Monday, StartMinute: mins(9, 0), EndMinute: mins(10, 30)},
	}
	grid := BuildGrid(sessions, GridOptions{Days: 6, StartHour: 8, EndHour: 20, UnitsPerMinute: 0.5})
	block := collectBlocks(grid)[0]
	if block.Top != 30 {
		t.Fatalf("top = %v, want 30", block.Top)
	}
	if block.Height != 45 {
		t.Fatalf("height = %v, want 45", block.Height)
	}
}

func TestPaletteColorStable(t *testing.T) {
	for courseID := uint(1); courseID <= 50; courseID++ {
		first := PaletteColor(courseID)
		if first == "" {
			t.Fatalf("course %d got no color", courseID)
		}
		if again := PaletteColor(courseID); again != first {
			t.Fatalf("course %d color changed between calls: %s vs %s", courseID, first, again)
		}
	}
	if PaletteColor(3) != PaletteColor(13) {
		t.Fatal("palette should cycle with a fixed modulus")
	}
}
