package export

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteXLSX writes the enriched batch as a single-sheet workbook using
// the same columns as the CSV export.
func WriteXLSX(leads []model.EnrichedLead, outputPath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, col := range csvColumns {
		header.AddCell().Value = col
	}

	for _, lead := range leads {
		row := sheet.AddRow()
		row.AddCell().Value = lead.Name
		row.AddCell().Value = lead.Website
		row.AddCell().Value = lead.Employees
		row.AddCell().SetInt(lead.Score)
		row.AddCell().Value = strings.Join(lead.Insights, "; ")
		row.AddCell().Value = strings.Join(lead.ValidEmails, "; ")
		row.AddCell().Value = strings.Join(lead.Contacts.Phones, "; ")
		row.AddCell().Value = lead.Message
	}

	if err := file.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save xlsx file")
	}

	return nil
}
