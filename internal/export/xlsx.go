package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/xolan/shiftbook/internal/shift"
)

// SheetName is the name of the worksheet holding the shifts
const SheetName = "Shifts"

// WriteXLSX writes shifts as a single-sheet workbook. Salary and hourly rate
// are stored as numbers; a final row totals the salary column.
func WriteXLSX(w io.Writer, shifts []shift.Shift) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	for col, header := range Headers {
		if err := setCell(f, col+1, 1, header); err != nil {
			return err
		}
	}

	salaryCol := indexOf(Headers, "salary") + 1
	rateCol := indexOf(Headers, "hourly_rate") + 1

	for i, s := range shifts {
		row := i + 2
		for col, value := range Row(s) {
			var cell any = value
			switch col + 1 {
			case salaryCol:
				cell = s.Salary
			case rateCol:
				if s.HourlyRate > 0 {
					cell = s.HourlyRate
				}
			}
			if err := setCell(f, col+1, row, cell); err != nil {
				return err
			}
		}
	}

	totalRow := len(shifts) + 2
	if err := setCell(f, salaryCol-1, totalRow, "total"); err != nil {
		return err
	}
	salaryName, err := excelize.ColumnNumberToName(salaryCol)
	if err != nil {
		return err
	}
	totalCell, err := excelize.CoordinatesToCellName(salaryCol, totalRow)
	if err != nil {
		return err
	}
	formula := "SUM(" + salaryName + "2:" + salaryName + strconv.Itoa(max(totalRow-1, 2)) + ")"
	if err := f.SetCellFormula(SheetName, totalCell, formula); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "A", "C", 12); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
