package contact

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Full Name", "Email", "Phone", "Company", "Industry", "Subject", "Message", "Submitted At"}

// BuildExportWorkbook renders contacts into an .xlsx workbook for the admin
// export download.
func BuildExportWorkbook(contacts []Contact) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, c := range contacts {
		phone := c.Phone
		if c.CountryCode != "" {
			phone = c.CountryCode + " " + c.Phone
		}
		values := []interface{}{
			c.FullName,
			c.Email,
			phone,
			c.Company,
			c.Industry,
			c.Subject,
			c.Message,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
