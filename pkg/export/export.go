package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/redhat-data-and-ai/profilemanager/pkg/serializer"
	"github.com/redhat-data-and-ai/profilemanager/pkg/store"
	"github.com/redhat-data-and-ai/profilemanager/pkg/types"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for export formats other than yaml and json
var ErrUnknownFormat = errors.New("unknown export format")

// Records converts every stored profile into a ProfileRecord, in ListIDs order
func Records(s store.ProfileStoreInterface) []types.ProfileRecord {
	records := make([]types.ProfileRecord, 0, s.Size())
	for _, id := range s.ListIDs() {
		p, ok := s.Find(id)
		if !ok {
			continue
		}

		hobbies := p.Hobbies()
		// Ensure we always export an empty list instead of null
		if hobbies == nil {
			hobbies = []string{}
		}

		records = append(records, types.ProfileRecord{
			ID:      p.ID(),
			Name:    p.Name(),
			Age:     p.Age(),
			City:    p.City(),
			Country: p.Country(),
			Hobbies: hobbies,
		})
	}
	return records
}

// Build assembles the export document for s
func Build(s store.ProfileStoreInterface) types.ProfileExport {
	records := Records(s)
	return types.ProfileExport{
		Format:   serializer.FormatHeader,
		Count:    len(records),
		Profiles: records,
	}
}

// Write encodes the export document for s to w in the requested format
func Write(w io.Writer, s store.ProfileStoreInterface, format string) error {
	doc := Build(s)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s export: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return nil
}
