package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/schema"
)

//go:embed data/timezones.json
var timezonesJSON []byte

// TimezonesJSON returns the embedded timezone table in API envelope form.
func TimezonesJSON() []byte {
	out := make([]byte, len(timezonesJSON))
	copy(out, timezonesJSON)
	return out
}

// Timezones decodes the embedded table through the response schema.
func Timezones() ([]models.Timezone, error) {
	resp, err := schema.Decode[models.TimezonesResponse](timezonesJSON, models.TimezonesResponseShape)
	if err != nil {
		return nil, fmt.Errorf("embedded timezones: %w", err)
	}
	return resp.Data, nil
}
