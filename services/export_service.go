package services

import (
	"fmt"
	"strings"
	"uniplan_go/services/scheduler"

	"github.com/xuri/excelize/v2"
)

// ExportService renders an assembled weekly grid into an .xlsx workbook.
// The workbook mirrors the on-screen grid: one column per weekday, one row
// per half hour, each session painted over its time range in its course
// color. A second sheet lists the sessions flat for printing.
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

const (
	gridSheet    = "Weekly Grid"
	listSheet    = "Sessions"
	slotMinutes  = 30
	defaultSheet = "Sheet1"
)

// BuildWorkbook renders the grid. title lands in the top-left cell; pass
// the owner's display name.
func (es *ExportService) BuildWorkbook(grid scheduler.WeeklyGrid, title string) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(gridSheet); err != nil {
		return nil, fmt.Errorf("failed to create grid sheet: %w", err)
	}
	if _, err := f.NewSheet(listSheet); err != nil {
		return nil, fmt.Errorf("failed to create list sheet: %w", err)
	}
	f.DeleteSheet(defaultSheet)

	if err := es.writeGridSheet(f, grid, title); err != nil {
		return nil, err
	}
	if err := es.writeListSheet(f, grid); err != nil {
		return nil, err
	}

	if idx, err := f.GetSheetIndex(gridSheet); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

func (es *ExportService) writeGridSheet(f *excelize.File, grid scheduler.WeeklyGrid, title string) error {
	if err := f.SetCellValue(gridSheet, "A1", title); err != nil {
		return err
	}

	// Header row: time gutter plus one column per weekday.
	for i, day := range grid.Days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		if err := f.SetCellValue(gridSheet, cell, day.DayName); err != nil {
			return err
		}
	}

	// Time gutter, one row per half hour.
	windowStart := grid.StartHour * 60
	windowEnd := grid.EndHour * 60
	for minute := windowStart; minute < windowEnd; minute += slotMinutes {
		row := 3 + (minute-windowStart)/slotMinutes
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(gridSheet, cell, scheduler.FormatMinute(minute)); err != nil {
			return err
		}
	}

	// Paint sessions. Overlapping sessions share a cell; their labels are
	// stacked so nothing silently disappears from the export.
	for dayIdx, day := range grid.Days {
		col := dayIdx + 2
		for _, group := range day.Groups {
			for _, block := range group.Blocks {
				s := block.Session
				startRow := 3 + (clamp(s.StartMinute, windowStart, windowEnd)-windowStart)/slotMinutes
				endRow := 3 + (clamp(s.EndMinute, windowStart, windowEnd)-windowStart)/slotMinutes
				label := es.blockLabel(block)

				for row := startRow; row < endRow; row++ {
					cell, _ := excelize.CoordinatesToCellName(col, row)
					existing, _ := f.GetCellValue(gridSheet, cell)
					value := label
					if existing != "" {
						value = existing + " | " + label
					}
					if err := f.SetCellValue(gridSheet, cell, value); err != nil {
						return err
					}
					if styleID, err := es.fillStyle(f, block.Color); err == nil {
						f.SetCellStyle(gridSheet, cell, cell, styleID)
					}
				}
			}
		}
	}

	f.SetColWidth(gridSheet, "A", "A", 8)
	lastCol, _ := excelize.ColumnNumberToName(len(grid.Days) + 1)
	f.SetColWidth(gridSheet, "B", lastCol, 28)
	return nil
}

func (es *ExportService) writeListSheet(f *excelize.File, grid scheduler.WeeklyGrid) error {
	headers := []string{"Day", "Start", "End", "Course", "Code", "Type", "Room"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(listSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, day := range grid.Days {
		for _, group := range day.Groups {
			for _, block := range group.Blocks {
				s := block.Session
				values := []interface{}{
					day.DayName,
					s.StartClock(),
					s.EndClock(),
					s.CourseName,
					s.CourseCode,
					s.Type,
					s.Room,
				}
				for i, v := range values {
					cell, _ := excelize.CoordinatesToCellName(i+1, row)
					if err := f.SetCellValue(listSheet, cell, v); err != nil {
						return err
					}
				}
				row++
			}
		}
	}
	return nil
}

func (es *ExportService) blockLabel(block scheduler.Block) string {
	s := block.Session
	name := s.CourseName
	if name == "" {
		name = fmt.Sprintf("course #%d", s.CourseID)
	}
	parts := []string{name}
	if s.Room != "" {
		parts = append(parts, s.Room)
	}
	parts = append(parts, s.StartClock()+"-"+s.EndClock())
	return strings.Join(parts, " ")
}

func (es *ExportService) fillStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(color, "#")}},
		Font: &excelize.Font{Color: "FFFFFF", Size: 9},
	})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
