package search

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// seedFile is the on-disk shape of a seed lead list.
type seedFile struct {
	Leads []model.Lead `yaml:"leads"`
}

// LoadSeedFile reads a YAML lead list, bypassing the search provider.
func LoadSeedFile(path string) ([]model.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "search: read seed file")
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, eris.Wrap(err, "search: parse seed file")
	}
	if len(sf.Leads) == 0 {
		return nil, eris.New("search: seed file contains no leads")
	}

	return sf.Leads, nil
}
