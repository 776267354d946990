// Package catalog defines the fixed record collection played by the
// turntable widget and loads custom collections from YAML or TOML files.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/spinhue/pkg/color"
)

// Record is one album in the collection. Records are immutable once loaded.
type Record struct {
	ID       int    `yaml:"id" toml:"id" json:"id"`
	Title    string `yaml:"title" toml:"title" json:"title"`
	Artist   string `yaml:"artist" toml:"artist" json:"artist"`
	Color1   string `yaml:"color1" toml:"color1" json:"color1"`
	Color2   string `yaml:"color2" toml:"color2" json:"color2"`
	Duration int    `yaml:"duration" toml:"duration" json:"duration"` // seconds
}

// Length returns the record's duration as a time.Duration.
func (r Record) Length() time.Duration {
	return time.Duration(r.Duration) * time.Second
}

// Default returns the built-in collection of eight records.
func Default() []Record {
	return []Record{
		{ID: 1, Title: "Kind of Blue", Artist: "Miles Davis", Color1: "#1e3a8a", Color2: "#3b82f6", Duration: 2757},
		{ID: 2, Title: "Abbey Road", Artist: "The Beatles", Color1: "#065f46", Color2: "#10b981", Duration: 2843},
		{ID: 3, Title: "Rumours", Artist: "Fleetwood Mac", Color1: "#92400e", Color2: "#f59e0b", Duration: 2389},
		{ID: 4, Title: "Blue Train", Artist: "John Coltrane", Color1: "#0c4a6e", Color2: "#0ea5e9", Duration: 2571},
		{ID: 5, Title: "Pet Sounds", Artist: "The Beach Boys", Color1: "#9d174d", Color2: "#ec4899", Duration: 2150},
		{ID: 6, Title: "Blue", Artist: "Joni Mitchell", Color1: "#1e40af", Color2: "#60a5fa", Duration: 2147},
		{ID: 7, Title: "Purple Rain", Artist: "Prince", Color1: "#581c87", Color2: "#a855f7", Duration: 2617},
		{ID: 8, Title: "Songs in the Key of Life", Artist: "Stevie Wonder", Color1: "#7c2d12", Color2: "#f97316", Duration: 6271},
	}
}

// Validate checks that a collection can drive the player: it must be
// non-empty, ids must be unique, durations positive and colors valid hex.
// All problems are reported together.
func Validate(records []Record) error {
	if len(records) == 0 {
		return errors.New("catalog: no records")
	}
	var errs []error
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("catalog: record %d: duplicate id %d", i, r.ID))
		}
		seen[r.ID] = true
		if r.Duration <= 0 {
			errs = append(errs, fmt.Errorf("catalog: record %d (%s): duration must be positive", i, r.Title))
		}
		for _, c := range []string{r.Color1, r.Color2} {
			if _, ok := color.ParseHex(c); !ok {
				errs = append(errs, fmt.Errorf("catalog: record %d (%s): invalid color %q", i, r.Title, c))
			}
		}
	}
	return errors.Join(errs...)
}
