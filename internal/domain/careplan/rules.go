package careplan

import (
	"github.com/careops/careops/internal/domain/assessment"
)

// Task types used by generated plans.
const (
	TaskTypePersonalCare     = "PERSONAL_CARE"
	TaskTypeMobility         = "MOBILITY"
	TaskTypeNutrition        = "NUTRITION"
	TaskTypeMealPrep         = "MEAL_PREP"
	TaskTypeHousekeeping     = "HOUSEKEEPING"
	TaskTypeMedication       = "MEDICATION"
	TaskTypeErrands          = "ERRANDS"
	TaskTypeCompanionship    = "COMPANIONSHIP"
	TaskTypeMonitoring       = "MONITORING"
	TaskTypeSafety           = "SAFETY"
	TaskTypeCognitiveSupport = "COGNITIVE_SUPPORT"
)

func str(s string) *string { return &s }

// The rule catalog. Each instrument maps to a band function over the raw
// total score; bands are inclusive and tested low-to-high (high-to-low for
// PHQ-9, where higher is worse), first match wins. The task lists are fixed
// clinical fixtures, not derived.
var ruleCatalog = map[assessment.Instrument]func(score float64) []TaskSpecification{
	assessment.InstrumentKatzADL:    katzADLTasks,
	assessment.InstrumentLawtonIADL: lawtonIADLTasks,
	assessment.InstrumentPHQ9:       phq9Tasks,
	assessment.InstrumentMiniCog:    miniCogTasks,
}

// TasksForResult returns the task specifications a single assessment result
// contributes. Unknown instruments and missing scores contribute nothing;
// neither is an error.
func TasksForResult(res assessment.Result) []TaskSpecification {
	rule, ok := ruleCatalog[res.Instrument]
	if !ok || res.TotalScore == nil {
		return nil
	}
	return rule(*res.TotalScore)
}

// Katz ADL: 0-6, lower = more impaired.
func katzADLTasks(score float64) []TaskSpecification {
	switch {
	case score <= 2:
		return []TaskSpecification{
			{TaskType: TaskTypePersonalCare, Description: "Full assistance with bathing",
				Frequency: "Daily", Duration: str("45 minutes"),
				Instructions: str("Client requires full assistance. Use shower chair and check water temperature before each bath.")},
			{TaskType: TaskTypePersonalCare, Description: "Full assistance with dressing",
				Frequency: "Daily", Duration: str("20 minutes"),
				Instructions: str("Lay out clothing in order of use. Allow client to participate where able.")},
			{TaskType: TaskTypePersonalCare, Description: "Toileting assistance",
				Frequency: "Each visit", Duration: str("15 minutes"),
				Instructions: str("Assist with transfers on and off the toilet and with hygiene.")},
			{TaskType: TaskTypeMobility, Description: "Two-person assisted transfer",
				Frequency: "Each visit", Duration: str("10 minutes"),
				Instructions: str("Two caregivers required for all transfers. Use gait belt.")},
			{TaskType: TaskTypeNutrition, Description: "Feeding assistance",
				Frequency: "3 times daily", Duration: str("30 minutes"),
				Instructions: str("Position client upright. Monitor for swallowing difficulty and report changes.")},
		}
	case score <= 4:
		return []TaskSpecification{
			{TaskType: TaskTypePersonalCare, Description: "Bathing supervision and standby assistance",
				Frequency: "Daily", Duration: str("30 minutes"),
				Instructions: str("Remain within arm's reach during bathing. Assist only as needed.")},
			{TaskType: TaskTypePersonalCare, Description: "Dressing assistance",
				Frequency: "Daily", Duration: str("15 minutes"), Instructions: nil},
			{TaskType: TaskTypePersonalCare, Description: "Toileting standby assistance",
				Frequency: "Each visit", Duration: str("10 minutes"), Instructions: nil},
		}
	default:
		return []TaskSpecification{
			{TaskType: TaskTypePersonalCare, Description: "General ADL supervision",
				Frequency: "Each visit", Duration: str("15 minutes"),
				Instructions: str("Observe for changes in independence and report to the care manager.")},
		}
	}
}

// Lawton IADL: lower = more impaired.
func lawtonIADLTasks(score float64) []TaskSpecification {
	switch {
	case score <= 4:
		return []TaskSpecification{
			{TaskType: TaskTypeMealPrep, Description: "Meal preparation",
				Frequency: "Daily", Duration: str("45 minutes"),
				Instructions: str("Prepare meals per dietary guidelines in the client record.")},
			{TaskType: TaskTypeHousekeeping, Description: "Light housekeeping",
				Frequency: "3 times weekly", Duration: str("60 minutes"), Instructions: nil},
			{TaskType: TaskTypeMedication, Description: "Medication reminders",
				Frequency: "Daily", Duration: str("10 minutes"),
				Instructions: str("Remind only. Do not administer. Report missed doses.")},
			{TaskType: TaskTypeErrands, Description: "Grocery shopping and errands",
				Frequency: "Weekly", Duration: str("90 minutes"), Instructions: nil},
		}
	case score <= 6:
		return []TaskSpecification{
			{TaskType: TaskTypeMealPrep, Description: "Meal preparation assistance",
				Frequency: "Daily", Duration: str("30 minutes"), Instructions: nil},
			{TaskType: TaskTypeHousekeeping, Description: "Heavy housekeeping",
				Frequency: "Weekly", Duration: str("120 minutes"), Instructions: nil},
		}
	default:
		return nil
	}
}

// PHQ-9: 0-27, higher = more severe.
func phq9Tasks(score float64) []TaskSpecification {
	switch {
	case score >= 15:
		return []TaskSpecification{
			{TaskType: TaskTypeCompanionship, Description: "Intensive companionship and engagement",
				Frequency: "Daily", Duration: str("120 minutes"),
				Instructions: str("Engage in preferred activities. Escalate any talk of self-harm immediately.")},
			{TaskType: TaskTypeMonitoring, Description: "Mental health monitoring and mood check-in",
				Frequency: "Daily", Duration: str("15 minutes"),
				Instructions: str("Document mood and sleep. Notify the clinical director of any decline.")},
		}
	case score >= 10:
		return []TaskSpecification{
			{TaskType: TaskTypeCompanionship, Description: "Daily companionship",
				Frequency: "Daily", Duration: str("60 minutes"), Instructions: nil},
		}
	default:
		return nil
	}
}

// Mini-Cog: 0-5, a low score is a positive screen.
func miniCogTasks(score float64) []TaskSpecification {
	if score <= 2 {
		return []TaskSpecification{
			{TaskType: TaskTypeSafety, Description: "Continuous safety supervision",
				Frequency: "Each visit", Duration: nil,
				Instructions: str("Client must not be left unattended. Secure exits and remove trip hazards.")},
			{TaskType: TaskTypeCognitiveSupport, Description: "Verbal cueing and redirection",
				Frequency: "Each visit", Duration: str("15 minutes"),
				Instructions: str("Use short, simple prompts. Redirect rather than correct.")},
			{TaskType: TaskTypeMedication, Description: "Supervised medication administration",
				Frequency: "3 times daily", Duration: str("10 minutes"),
				Instructions: str("Observe client take each dose. Lock medications between administrations.")},
		}
	}
	return nil
}
