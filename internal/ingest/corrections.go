package ingest

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/cleanse-cli/internal/pipeline"
)

// LoadCorrections reads a YAML file mapping incorrect name values to
// corrected ones. An empty path returns a nil table, which disables
// corrections.
func LoadCorrections(path string) (pipeline.CorrectionTable, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read corrections file")
	}

	var table pipeline.CorrectionTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, eris.Wrap(err, "ingest: parse corrections yaml")
	}
	return table, nil
}
