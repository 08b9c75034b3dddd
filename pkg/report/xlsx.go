package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
	"liyu1981.xyz/battlogger/pkg/models"
)

const (
	SheetName   = "Batteries"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	Filename    = "batteries.xlsx"
)

type column struct {
	header string
	width  float64
	value  func(row models.BatteryData) any
}

var columns = []column{
	{"Battery ID", 20, func(row models.BatteryData) any { return row.ID }},
	{"Model ID", 38, func(row models.BatteryData) any { return row.ModelID }},
	{"Model", 20, func(row models.BatteryData) any { return deref(row.ModelName) }},
	{"Design Capacity (mAh)", 22, func(row models.BatteryData) any { return deref(row.DesignCapacity) }},
	{"Last Tested Capacity (mAh)", 26, func(row models.BatteryData) any { return deref(row.LastTestedCapacity) }},
	{"Last Tested", 26, func(row models.BatteryData) any { return deref(row.LastTestedTimestamp) }},
	{"Retention (%)", 14, retention},
	{"Chemistry", 18, func(row models.BatteryData) any { return deref(row.ChemistryName) }},
	{"Chemistry Short Name", 20, func(row models.BatteryData) any { return deref(row.ChemistryShortName) }},
	{"Form Factor", 14, func(row models.BatteryData) any { return deref(row.FormfactorName) }},
}

func Headers() []string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	return headers
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// retention is the last measured capacity as a share of the design capacity.
func retention(row models.BatteryData) any {
	if row.LastTestedCapacity == nil || row.DesignCapacity == nil || *row.DesignCapacity <= 0 {
		return nil
	}
	return math.Round(*row.LastTestedCapacity/float64(*row.DesignCapacity)*1000) / 10
}

// BatteryListingWorkbook renders listing rows into a single sheet workbook
// with a frozen, styled header. Empty values leave their cell blank.
func BatteryListingWorkbook(rows []models.BatteryData) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, c := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, c.header); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("convert column number: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, c.width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for r, row := range rows {
		for i, c := range columns {
			value := c.value(row)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("convert coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
