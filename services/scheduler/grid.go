package scheduler

import "sort"

// GridOptions configures the weekly layout window.
type GridOptions struct {
	// Days is the number of weekday columns, counted from Monday.
	// The UI renders Monday-Saturday by default.
	Days int
	// StartHour/EndHour bound the visible time window.
	StartHour int
	EndHour   int
	// UnitsPerMinute scales block positions to the caller's coordinate
	// system (pixels, rem, whatever). 1 unit per minute when unset.
	UnitsPerMinute float64
}

// DefaultGridOptions matches the current UI: Monday-Saturday, 08:00-20:00.
func DefaultGridOptions() GridOptions {
	return GridOptions{Days: 6, StartHour: 8, EndHour: 20, UnitsPerMinute: 1}
}

func (o GridOptions) normalized() GridOptions {
	if o.Days < 1 || o.Days > 7 {
		o.Days = 6
	}
	if o.EndHour <= o.StartHour {
		o.StartHour, o.EndHour = 8, 20
	}
	if o.UnitsPerMinute <= 0 {
		o.UnitsPerMinute = 1
	}
	return o
}

// Block is one positioned session inside the grid. Column/ColumnCount place
// it inside its overlap group: the group renders as ColumnCount equal-width
// sub-columns of the day column, and this block occupies sub-column Column.
type Block struct {
	Session     Session `json:"session"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Column      int     `json:"column"`
	ColumnCount int     `json:"column_count"`
	Top         float64 `json:"top"`
	Height      float64 `json:"height"`
	Color       string  `json:"color"`
}

// OverlapGroup is a maximal run of same-day sessions whose time ranges form
// a connected overlapping chain. Its blocks render side by side.
type OverlapGroup struct {
	StartMinute int     `json:"start_minute"`
	EndMinute   int     `json:"end_minute"`
	Blocks      []Block `json:"blocks"`
}

// DayColumn is one weekday of the grid. Days with no sessions keep an empty
// group list so the grid always renders a fixed number of columns.
type DayColumn struct {
	DayOfWeek int            `json:"day_of_week"`
	DayName   string         `json:"day_name"`
	Groups    []OverlapGroup `json:"groups"`
}

// WeeklyGrid is the assembled weekly view. It is derived data: rebuild it
// from a fresh session snapshot after every mutation rather than patching
// it in place.
type WeeklyGrid struct {
	Days      []DayColumn `json:"days"`
	StartHour int         `json:"start_hour"`
	EndHour   int         `json:"end_hour"`
}

// palette is the fixed set of block colors. Color assignment is a pure
// function of the course ID so a course keeps its color across renders,
// views and sessions.
var palette = [...]string{
	"#1E88E5", // blue
	"#43A047", // green
	"#FB8C00", // orange
	"#8E24AA", // purple
	"#E53935", // red
	"#00ACC1", // cyan
	"#F4511E", // deep orange
	"#3949AB", // indigo
	"#7CB342", // light green
	"#D81B60", // pink
}

// PaletteColor returns the stable display color for a course.
func PaletteColor(courseID uint) string {
	return palette[courseID%uint(len(palette))]
}

// BuildGrid arranges a flat session collection into a day-by-time grid.
// Per day, sessions are sorted by start then end time and packed greedily
// into overlap groups: a session starts a new group when it begins at or
// after the latest end seen in the current group, otherwise it joins the
// group and may extend it. Within a group of k sessions, each gets a column
// index 0..k-1 in sort order.
//
// Every input session appears exactly once. Sessions reaching outside the
// configured hour window are clipped at the boundary, never dropped; data
// wholly outside the window should have been rejected at validation.
func BuildGrid(sessions []Session, opts GridOptions) WeeklyGrid {
	opts = opts.normalized()
	windowStart := opts.StartHour * 60
	windowEnd := opts.EndHour * 60

	byDay := make(map[int][]Session, opts.Days)
	// Widen the emitted range when sessions fall past the configured day
	// count, so a Sunday session still renders on a Monday-Saturday grid.
	lastDay := opts.Days
	for _, s := range sessions {
		byDay[s.DayOfWeek] = append(byDay[s.DayOfWeek], s)
		if s.DayOfWeek > lastDay && s.DayOfWeek <= Sunday {
			lastDay = s.DayOfWeek
		}
	}

	grid := WeeklyGrid{
		Days:      make([]DayColumn, 0, lastDay),
		StartHour: opts.StartHour,
		EndHour:   opts.EndHour,
	}

	for day := Monday; day <= lastDay; day++ {
		daySessions := byDay[day]
		sort.Slice(daySessions, func(i, j int) bool {
			if daySessions[i].StartMinute != daySessions[j].StartMinute {
				return daySessions[i].StartMinute < daySessions[j].StartMinute
			}
			if daySessions[i].EndMinute != daySessions[j].EndMinute {
				return daySessions[i].EndMinute < daySessions[j].EndMinute
			}
			return daySessions[i].ID < daySessions[j].ID
		})

		column := DayColumn{
			DayOfWeek: day,
			DayName:   DayName(day),
			Groups:    []OverlapGroup{},
		}

		var current []Session
		maxEnd := 0
		flush := func() {
			if len(current) == 0 {
				return
			}
			column.Groups = append(column.Groups, buildGroup(current, windowStart, windowEnd, opts.UnitsPerMinute))
			current = nil
		}

		for _, s := range daySessions {
			if len(current) > 0 && s.StartMinute >= maxEnd {
				flush()
			}
			current = append(current, s)
			if s.EndMinute > maxEnd {
				maxEnd = s.EndMinute
			}
		}
		flush()

		grid.Days = append(grid.Days, column)
	}

	return grid
}

func buildGroup(sessions []Session, windowStart, windowEnd int, scale float64) OverlapGroup {
	group := OverlapGroup{
		StartMinute: sessions[0].StartMinute,
		EndMinute:   sessions[0].EndMinute,
		Blocks:      make([]Block, 0, len(sessions)),
	}

	for i, s := range sessions {
		if s.StartMinute < group.StartMinute {
			group.StartMinute = s.StartMinute
		}
		if s.EndMinute > group.EndMinute {
			group.EndMinute = s.EndMinute
		}

		top := clampMinute(s.StartMinute, windowStart, windowEnd)
		bottom := clampMinute(s.EndMinute, windowStart, windowEnd)

		group.Blocks = append(group.Blocks, Block{
			Session:     s,
			StartTime:   s.StartClock(),
			EndTime:     s.EndClock(),
			Column:      i,
			ColumnCount: len(sessions),
			Top:         float64(top-windowStart) * scale,
			Height:      float64(bottom-top) * scale,
			Color:       PaletteColor(s.CourseID),
		})
	}

	return group
}

func clampMinute(m, lo, hi int) int {
	if m < lo {
		return lo
	}
	if m > hi {
		return hi
	}
	return m
}
