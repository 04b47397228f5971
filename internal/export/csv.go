package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// csvColumns defines the ordered CSV output columns.
var csvColumns = []string{
	"Company",
	"Website",
	"Employees",
	"Score",
	"Insights",
	"Emails",
	"Phones",
	"Message",
}

// WriteCSV writes the enriched batch as flattened CSV rows.
func WriteCSV(leads []model.EnrichedLead, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, lead := range leads {
		if err := w.Write(buildCSVRow(lead)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	return nil
}

// buildCSVRow maps an EnrichedLead to a CSV row.
func buildCSVRow(lead model.EnrichedLead) []string {
	return []string{
		lead.Name,
		lead.Website,
		lead.Employees,
		strconv.Itoa(lead.Score),
		strings.Join(lead.Insights, "; "),
		strings.Join(lead.ValidEmails, "; "),
		strings.Join(lead.Contacts.Phones, "; "),
		lead.Message,
	}
}
