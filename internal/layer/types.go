// Package layer builds MITRE ATT&CK Navigator layer documents from
// aggregated coverage state.
package layer

// Layer is the Navigator layer document root.
type Layer struct {
	Name        string      `json:"name"`
	Versions    Versions    `json:"versions"`
	Domain      string      `json:"domain"`
	Description string      `json:"description"`
	Metadata    []Metadata  `json:"metadata"`
	Techniques  []Technique `json:"techniques"`
	Gradient    Gradient    `json:"gradient"`
}

// Versions is the ATT&CK / Navigator / layer-schema version triple.
type Versions struct {
	Attack    string `json:"attack"`
	Navigator string `json:"navigator"`
	Layer     string `json:"layer"`
}

// Metadata is a name/value pair shown by the Navigator UI.
type Metadata struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Technique is one scored cell in the Navigator matrix.
type Technique struct {
	TechniqueID       string     `json:"techniqueID"`
	Score             int        `json:"score"`
	Color             string     `json:"color"`
	Enabled           bool       `json:"enabled"`
	Metadata          []Metadata `json:"metadata"`
	ShowSubtechniques bool       `json:"showSubtechniques"`
}

// Gradient defines the heat-map color scale.
type Gradient struct {
	Colors   []string `json:"colors"`
	MinValue int      `json:"minValue"`
	MaxValue int      `json:"maxValue"`
}
