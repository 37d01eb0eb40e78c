package models

import "github.com/guttosm/marketprobe/internal/schema"

// Timezone is one entry of GET /timezones.
type Timezone struct {
	Timezone string `json:"timezone" validate:"required"`
	Abbr     string `json:"abbr"`
	AbbrDST  string `json:"abbr_dst"`
}

type TimezonesResponse = ListResponse[Timezone]

var TimezoneShape = schema.Object("timezone",
	schema.String("timezone"),
	schema.String("abbr"),
	schema.String("abbr_dst"),
)

var TimezonesResponseShape = listShape("timezones_response", false, TimezoneShape)
