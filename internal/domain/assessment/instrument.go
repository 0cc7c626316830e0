package assessment

import "strings"

// Instrument is the closed set of assessment instruments the care-plan rule
// catalog understands. Anything else contributes no tasks.
type Instrument string

const (
	InstrumentKatzADL    Instrument = "KATZ_ADL"
	InstrumentLawtonIADL Instrument = "LAWTON_IADL"
	InstrumentPHQ9       Instrument = "PHQ9"
	InstrumentMiniCog    Instrument = "MINI_COG"
	InstrumentUnknown    Instrument = ""
)

// Match describes how a template name resolved to an instrument.
type Match int

const (
	MatchNone Match = iota
	// MatchExact means the template name was found in the versioned lookup
	// table.
	MatchExact
	// MatchLegacyCode means resolution fell back to the historical
	// uppercase/underscore code transform. Renaming a template silently
	// breaks this path, so callers should log when they see it.
	MatchLegacyCode
)

// templateInstruments is the versioned mapping from assessment template
// display names to instruments. New template names are added here, never
// derived at runtime.
var templateInstruments = map[string]Instrument{
	"Katz ADL":                      InstrumentKatzADL,
	"Katz Index of Independence":    InstrumentKatzADL,
	"Lawton IADL":                   InstrumentLawtonIADL,
	"Lawton IADL Scale":             InstrumentLawtonIADL,
	"PHQ-9":                         InstrumentPHQ9,
	"PHQ-9 Depression Screen":       InstrumentPHQ9,
	"Mini-Cog":                      InstrumentMiniCog,
	"Mini-Cog Cognitive Screen":     InstrumentMiniCog,
}

// legacyCodes maps the historical derived codes to instruments so that rows
// captured before the lookup table existed still resolve.
var legacyCodes = map[string]Instrument{
	"KATZ_ADL":    InstrumentKatzADL,
	"LAWTON_IADL": InstrumentLawtonIADL,
	"PHQ-9":       InstrumentPHQ9,
	"PHQ_9":       InstrumentPHQ9,
	"MINI-COG":    InstrumentMiniCog,
	"MINI_COG":    InstrumentMiniCog,
}

// InstrumentFromTemplate resolves a template display name to an instrument.
// The versioned table is consulted first; the legacy derived-code transform
// is kept only as a fallback for unmapped names.
func InstrumentFromTemplate(templateName string) (Instrument, Match) {
	if inst, ok := templateInstruments[templateName]; ok {
		return inst, MatchExact
	}
	if inst, ok := legacyCodes[LegacyCode(templateName)]; ok {
		return inst, MatchLegacyCode
	}
	return InstrumentUnknown, MatchNone
}

// LegacyCode reproduces the historical display-name-to-code transform:
// uppercase with spaces replaced by underscores.
func LegacyCode(templateName string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(templateName)), " ", "_")
}
