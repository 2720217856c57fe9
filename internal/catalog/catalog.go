// Package catalog maps human-readable exercise names to Hevy
// exercise-template IDs.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// builtin is the Min-Max program's exercise map. Hevy template IDs are
// either 8-char hex short codes or full UUIDs.
var builtin = map[string]string{
	"1-Arm Reverse Pec Deck":           "7a0128ce-90ec-45b1-a445-7de6ac03bed0",
	"Alternating DB Curl":              "37FCC2BB",
	"Barbell Incline Press":            "50DFDFAB",
	"Barbell RDL":                      "2B4B7310",
	"Bayesian Cable Curl":              "234897AB",
	"Cable Crunch":                     "23A48484",
	"Cable Triceps Kickback":           "EC3B69A3",
	"Chest-Supported T-Bar Row":        "914F3A96",
	"Close-Grip Lat Pulldown":          "4E5257DE",
	"DB Wrist Curl":                    "1006DF48",
	"DB Wrist Extension":               "9202CC23",
	"Dead Hang (optional)":             "B9380898",
	"High-Cable Lateral Raise":         "DE68C825",
	"Incline DB Y-Raise":               "F21D5693",
	"Leg Extension":                    "75A4F6C4",
	"Leg Press":                        "C7973E0E",
	"Lying Leg Curl":                   "B8127AD1",
	"Machine Chest Press":              "7EB3F7C3",
	"Machine Hip Thrust":               "68CE0B9B",
	"Machine Lateral Raise":            "D5D0354D",
	"Machine Shrug":                    "19A38071",
	"Modified Zottman Curl":            "123EE239",
	"Overhead Cable Triceps Extension": "B5EFBF9C",
	"Pull-Up (Wide Grip)":              "7C50F118",
	"Squat (Your Choice)":              "D04AC939",
	"Standing Calf Raise":              "06745E58",
}

// shortCodeRe matches Hevy's legacy 8-char hex template IDs.
var shortCodeRe = regexp.MustCompile(`^[0-9A-F]{8}$`)

// Catalog is an immutable name -> template ID lookup, built once at startup
// and injected into the converter.
type Catalog struct {
	ids map[string]string
}

// Builtin returns the catalog with only the built-in entries.
func Builtin() *Catalog {
	ids := make(map[string]string, len(builtin))
	for name, id := range builtin {
		ids[name] = id
	}
	return &Catalog{ids: ids}
}

// LoadFile returns the built-in catalog merged with a YAML file of
// name -> template ID pairs. File entries override built-ins.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	c := Builtin()
	for name, id := range extra {
		c.ids[strings.TrimSpace(name)] = strings.TrimSpace(id)
	}
	return c, nil
}

// TemplateID looks up the Hevy template ID for an exercise name.
func (c *Catalog) TemplateID(name string) (string, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Len returns the number of mapped exercises.
func (c *Catalog) Len() int { return len(c.ids) }

// Validate checks every template ID is either an 8-char hex short code or a
// UUID, reporting offending exercise names sorted for stable output.
func (c *Catalog) Validate() error {
	var bad []string
	for name, id := range c.ids {
		if shortCodeRe.MatchString(id) {
			continue
		}
		if _, err := uuid.Parse(id); err == nil {
			continue
		}
		bad = append(bad, name)
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("catalog has malformed template IDs for: %s", strings.Join(bad, ", "))
}
