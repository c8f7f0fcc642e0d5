package bot

// Step names the current position of a conversation. Every inbound message is
// dispatched on the session's step; invalid input re-prompts without moving.
type Step string

const (
	// Hoofdmenu / idle.
	StepMenu Step = "menu"

	// Balanstest flow.
	StepVragen      Step = "questions"
	StepTakenIntro  Step = "tasks_intro"
	StepTakenUren   Step = "tasks_hours"
	StepTakenMoeite Step = "tasks_difficulty"
	StepAfgerond    Step = "completed"

	// Onboarding flow.
	StepOnboardingKeuze Step = "choice"
	StepEigenPostcode   Step = "location_own_postcode"
	StepEigenHuisnummer Step = "location_own_huisnummer"
	StepZorgNaam        Step = "location_care_name"
	StepZorgRelatie     Step = "location_care_relation"
	StepZorgPostcode    Step = "location_care_postcode"
	StepZorgHuisnummer  Step = "location_care_huisnummer"

	// Hulp-zoeken flow.
	StepHulpKeuze      Step = "main_choice"
	StepHulpSoort      Step = "soort_hulp"
	StepHulpTaak       Step = "onderdeel_taak"
	StepHulpResultaten Step = "results"
)
