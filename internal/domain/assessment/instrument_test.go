package assessment

import "testing"

func TestInstrumentFromTemplate_Exact(t *testing.T) {
	cases := map[string]Instrument{
		"Katz ADL":                  InstrumentKatzADL,
		"Lawton IADL":               InstrumentLawtonIADL,
		"PHQ-9":                     InstrumentPHQ9,
		"Mini-Cog":                  InstrumentMiniCog,
		"Mini-Cog Cognitive Screen": InstrumentMiniCog,
	}
	for name, want := range cases {
		inst, match := InstrumentFromTemplate(name)
		if inst != want {
			t.Errorf("%q: expected %s, got %s", name, want, inst)
		}
		if match != MatchExact {
			t.Errorf("%q: expected exact match", name)
		}
	}
}

func TestInstrumentFromTemplate_LegacyFallback(t *testing.T) {
	// Not in the lookup table, but its derived code is a known legacy code.
	inst, match := InstrumentFromTemplate("katz adl")
	if inst != InstrumentKatzADL {
		t.Errorf("expected KATZ_ADL via legacy code, got %s", inst)
	}
	if match != MatchLegacyCode {
		t.Error("expected legacy-code match")
	}
}

func TestInstrumentFromTemplate_Unknown(t *testing.T) {
	inst, match := InstrumentFromTemplate("Braden Scale")
	if inst != InstrumentUnknown || match != MatchNone {
		t.Errorf("expected no match, got %s / %d", inst, match)
	}
}

func TestLegacyCode(t *testing.T) {
	if got := LegacyCode("Mini Cog"); got != "MINI_COG" {
		t.Errorf("expected MINI_COG, got %q", got)
	}
	if got := LegacyCode("  Katz ADL "); got != "KATZ_ADL" {
		t.Errorf("expected KATZ_ADL, got %q", got)
	}
}

func TestResult_CarriesScores(t *testing.T) {
	score, max := 3.0, 6.0
	a := &Assessment{TemplateName: "Katz ADL", TotalScore: &score, MaxScore: &max}
	res, match := a.Result()
	if res.Instrument != InstrumentKatzADL || match != MatchExact {
		t.Fatalf("unexpected resolution: %s / %d", res.Instrument, match)
	}
	if res.TotalScore == nil || *res.TotalScore != 3.0 {
		t.Error("total score not carried")
	}
	if res.MaxScore == nil || *res.MaxScore != 6.0 {
		t.Error("max score not carried")
	}
}
