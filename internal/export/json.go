package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteJSON writes the enriched batch as a pretty-printed JSON array.
func WriteJSON(leads []model.EnrichedLead, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create json file")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(leads); err != nil {
		return eris.Wrap(err, "export: encode json")
	}

	return nil
}
