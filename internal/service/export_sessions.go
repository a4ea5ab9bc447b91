package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fatura-web/internal/models"
)

// ExportSessionsList renders the import session history as a styled Excel
// workbook for download.
func ExportSessionsList(sessions []models.ImportSession) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Import Sessions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Session Code", "Kind", "Filename", "Total Rows",
		"Processed", "Failed", "Status", "Error Message", "Created At",
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
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
	})
	for i, header := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s1", col)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, s := range sessions {
		row := rowIdx + 2
		values := []interface{}{
			s.ID, s.SessionCode, s.Kind, s.Filename, s.TotalRows,
			s.ProcessedRows, s.FailedRows, s.Status, s.ErrorMessage,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "D", "D", 25)
	f.SetColWidth(sheetName, "I", "I", 30)
	f.SetColWidth(sheetName, "J", "J", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
