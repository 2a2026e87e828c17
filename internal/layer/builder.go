package layer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/aggregate"
	"github.com/rcegan/Splunk-MITRE-Generator/internal/config"
)

const rulesMetadataName = "Rules Using Technique"

// Build converts aggregated coverage into a Navigator layer document.
// Technique entries come out in the coverage's first-seen order. now is
// the generation wall-clock, injected so builds are reproducible in
// tests.
func Build(cov *aggregate.Coverage, settings *config.Settings, now time.Time) *Layer {
	techniques := make([]Technique, 0, len(cov.TechniqueCounts))
	for _, id := range cov.Techniques() {
		count := cov.TechniqueCounts[id]
		techniques = append(techniques, Technique{
			TechniqueID: id,
			Score:       count,
			Color:       scoreColor(count),
			Enabled:     true,
			Metadata: []Metadata{{
				Name:  rulesMetadataName,
				Value: strings.Join(cov.RuleNamesFor(id), "\n"),
			}},
			ShowSubtechniques: true,
		})
	}

	return &Layer{
		Name: settings.LayerName,
		Versions: Versions{
			Attack:    settings.AttackVersion,
			Navigator: settings.NavigatorVersion,
			Layer:     settings.LayerVersion,
		},
		Domain: settings.Domain,
		Description: fmt.Sprintf("Coverage of %d MITRE ATT&CK techniques in Splunk rules",
			len(cov.TechniqueCounts)),
		Metadata: []Metadata{
			{Name: "generated", Value: now.Format("2006-01-02 15:04:05")},
			{Name: "rules_analyzed", Value: strconv.Itoa(len(cov.Rules))},
		},
		Techniques: techniques,
		Gradient: Gradient{
			Colors:   settings.GradientColors,
			MinValue: 0,
			MaxValue: cov.MaxCount(),
		},
	}
}

// scoreColor maps a count to a hex color: the red channel saturates at 50
// per occurrence, green and blue stay fixed, so heavier coverage reads as
// a deeper red.
func scoreColor(count int) string {
	red := count * 50
	if red > 255 {
		red = 255
	}
	return fmt.Sprintf("#%02x3333", red)
}
