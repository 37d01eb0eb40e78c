package seed

import (
	"fmt"
	"os"

	"github.com/guttosm/marketprobe/internal/domain/models"
	"github.com/guttosm/marketprobe/internal/schema"
)

// readEOD decodes an EOD envelope and checks that every bar belongs to
// symbol. Files are small enough to read whole.
func readEOD(path, symbol string) ([]models.EOD, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	env, err := schema.Decode[models.EODResponse](body, models.EODResponseShape)
	if err != nil {
		return nil, err
	}
	for i, b := range env.Data {
		if b.Symbol != symbol {
			return nil, fmt.Errorf("data[%d]: symbol %q does not match file symbol %q", i, b.Symbol, symbol)
		}
	}
	return env.Data, nil
}

func readTimezones(path string) ([]models.Timezone, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	env, err := schema.Decode[models.TimezonesResponse](body, models.TimezonesResponseShape)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
