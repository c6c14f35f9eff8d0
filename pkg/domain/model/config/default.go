package config

import "github.com/umlindi-lab/wardrisk/pkg/domain/types"

// DefaultCatalog returns the built-in question catalog. The question and
// option texts are the fixed survey battery and must stay byte-identical
// across releases so that master datasets collected by different
// deployments remain comparable.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Variant: types.VariantScored,
		Hazards: []string{
			"Flood",
			"Veld Fire",
			"Drought",
			"Severe Storm",
			"Strong Winds",
			"Lightning",
			"Landslide",
			"Earthquake",
			"Epidemic",
			"Hazardous Material Spill",
			"Road Transport Accident",
			"Coastal Erosion",
		},
		Levels:            types.DefaultLevels(),
		HazardQuestions:   defaultHazardQuestions(),
		CapacityQuestions: defaultCapacityQuestions(),
	}
}

func defaultHazardQuestions() []Question {
	return []Question{
		{
			Text: "Has this hazard occurred in the past?",
			Options: []types.Level{
				"0 - Has not occurred and has no chance of occurrence",
				"1 - Has not occurred but there is real potential for occurrence",
				"2 - Has occurred but only once",
				"3 - Has occurred but only a few times or rarely",
				"4 - Has occurred regularly or at least once a year",
				"5 - Occurs multiple times during a single year",
			},
		},
		{
			Text: "How frequently does it occur?",
			Options: []types.Level{
				"0 - Unknown / Not applicable",
				"1 - Decreasing",
				"2 - Stable",
				"3 - Marginally increasing",
				"4 - Increasing",
				"5 - Increasing rapidly",
			},
		},
		{
			Text: "What is the typical duration of the hazard?",
			Options: []types.Level{
				"0 - Unknown / Not applicable",
				"1 - Few minutes",
				"2 - Few hours",
				"3 - Few days",
				"4 - Few weeks",
				"5 - Few months",
			},
		},
		{
			Text: "What is the area of impact?",
			Options: []types.Level{
				"0 - None",
				"1 - Single property",
				"2 - Single Ward",
				"3 - Few wards",
				"4 - Entire municipality",
				"5 - Larger than municipality",
			},
		},
		{
			Text: "What is the impact on people?",
			Options: []types.Level{
				"0 - None",
				"1 - Low impact / Discomfort",
				"2 - Minimal impact / Minor injuries",
				"3 - Serious injuries / Health problems no fatalities",
				"4 - Fatalities / Serious health problems but confined",
				"5 - Multiple fatalities spread over wide area",
			},
		},
		{
			Text: "What is the impact on infrastructure and services?",
			Options: []types.Level{
				"0 - None",
				"1 - Low impact / Minor damage / Minor disruption",
				"2 - Some structural damage / Short term disruption of services",
				"3 - Medium structural damage / 1 Week disruption",
				"4 - Serious structural damage / Disruption of longer than a week",
				"5 - Total disruption of structure / Disruption of longer than a month",
			},
		},
		{
			Text: "What is the impact on the environment?",
			Options: []types.Level{
				"0 - Not applicable / No effects",
				"1 - Minor effects",
				"2 - Medium effects",
				"3 - Severe",
				"4 - Severe effects over wide area",
				"5 - Total destruction",
			},
		},
		{
			Text: "What is the level of economic disruption?",
			Options: []types.Level{
				"0 - No disruption",
				"1 - Some disruption",
				"2 - Medium disruption",
				"3 - Severe short-term disruption",
				"4 - Severe long-term disruption",
				"5 - Total stop in activities",
			},
		},
		{
			Text: "How predictable is the hazard?",
			Options: []types.Level{
				"0 - Not applicable",
				"1 - Effective early warning",
				"3 - Partially predictable",
				"5 - No early warning",
			},
		},
		{
			Text: "What is the urgency or priority level?",
			Options: []types.Level{
				"0 - Not applicable / No effects",
				"1 - Low priority",
				"2 - Medium priority",
				"3 - Medium high priority",
				"4 - High priority",
				"5 - Very high priority",
			},
		},
	}
}

func defaultCapacityQuestions() []Question {
	agreement := []types.Level{
		"Strongly Disagree",
		"Disagree",
		"Neutral",
		"Agree",
		"Strongly Agree",
	}

	texts := []string{
		"Sufficient staff/human resources",
		"Experience and special knowledge",
		"Equipment availability",
		"Adequate funding/budget allocation",
		"Facilities and infrastructure for response",
		"Prevention and mitigation plans",
		"Response and recovery plans",
		"Community awareness and training programs",
		"Early warning systems in place",
		"Coordination with local authorities and partners",
	}

	questions := make([]Question, len(texts))
	for i, text := range texts {
		questions[i] = Question{Text: text, Options: agreement}
	}
	return questions
}
