package models

// LegacyNoMedication is the pick-list value old clients stored when nothing was taken.
const LegacyNoMedication = "None"

type EntryOptions struct {
	Locations   []string `json:"locations"`
	Triggers    []string `json:"triggers"`
	Medications []string `json:"medications"`
	Onsets      []string `json:"onsets"`
	Durations   []string `json:"durations"`
	Reliefs     []string `json:"reliefs"`
}

func DefaultEntryOptions() EntryOptions {
	return EntryOptions{
		Locations: []string{
			"Forehead",
			"Temple (L)",
			"Temple (R)",
			"Both Temples",
			"Behind Eyes",
			"Crown",
			"Back of Head",
			"One Side",
			"Whole Head",
		},
		Triggers: []string{
			"Screen time",
			"Bright light",
			"Noise",
			"Stress",
			"Sleep",
			"Food/drink",
			"Exercise",
			"Weather",
			"Unknown",
		},
		Medications: []string{"Advil", "Tylenol", "Naproxen", "Aspirin", "Prescription", "Other"},
		Onsets:      []string{"Morning", "Afternoon", "Evening", "Night"},
		Durations:   []string{"< 1 hour", "1-4 hours", "Half day", "All day", "All night"},
		Reliefs:     []string{"Full relief", "Partial relief", "No relief"},
	}
}
