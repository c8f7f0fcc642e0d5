package database

import (
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/repositories"
)

// BalanstestQuestions is the canonical 11-question catalog. Weights per
// section sum to 4.5 (energie), 4.0 (gevoel) and 3.5 (tijd): 12.0 in total,
// for a maximum weighted score of 24.
func BalanstestQuestions() []entities.Question {
	return []entities.Question{
		// Energie
		{ID: "b1", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionEnergie, Order: 1, Weight: 1.5,
			Text: "Voel je je vaak moe of uitgeput door het zorgen?",
			Tip:  "Plan elke week een vast rustmoment voor jezelf in."},
		{ID: "b2", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionEnergie, Order: 2, Weight: 1.0,
			Text: "Slaap je slechter sinds je voor iemand zorgt?",
			Tip:  "Een vast slaapritme helpt om je energie op peil te houden."},
		{ID: "b3", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionEnergie, Order: 3, Weight: 1.0,
			Text: "Heb je lichamelijke klachten door het zorgen, zoals rugpijn of hoofdpijn?",
			Tip:  "Vraag bij je gemeente naar hulpmiddelen die het zorgen lichter maken."},
		{ID: "b4", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionEnergie, Order: 4, Weight: 1.0,
			Text: "Sla je maaltijden of beweging over omdat het zorgen voorgaat?",
			Tip:  "Goed voor jezelf zorgen is geen luxe maar een voorwaarde."},

		// Gevoel
		{ID: "b5", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionGevoel, Order: 5, Weight: 1.0,
			Text: "Pieker je veel over degene voor wie je zorgt?",
			Tip:  "Praat er eens over met iemand die je vertrouwt."},
		{ID: "b6", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionGevoel, Order: 6, Weight: 1.0,
			Text: "Voel je je er alleen voor staan?",
			Tip:  "Er zijn lotgenotengroepen voor mantelzorgers bij jou in de buurt."},
		{ID: "b7", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionGevoel, Order: 7, Weight: 1.0,
			Text: "Ben je sneller geïrriteerd of somber dan vroeger?",
			Tip:  "Een mantelzorgconsulent kan met je meedenken."},
		{ID: "b8", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionGevoel, Order: 8, Weight: 1.0,
			Text: "Voel je je schuldig als je tijd voor jezelf neemt?",
			Tip:  "Tijd voor jezelf nemen maakt je zorg vol te houden."},

		// Tijd
		{ID: "b9", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionTijd, Order: 9, Weight: 1.0,
			Text: "Komt je werk of opleiding in de knel door het zorgen?",
			Tip:  "Bespreek mantelzorgvriendelijke regelingen met je werkgever."},
		{ID: "b10", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionTijd, Order: 10, Weight: 1.0,
			Text: "Zie je vrienden of familie minder dan je zou willen?",
			Tip:  "Plan sociale afspraken net zo vast in als zorgafspraken."},
		{ID: "b11", QuestionnaireType: entities.QuestionnaireBalanstest, Section: entities.SectionTijd, Order: 11, Weight: 1.5,
			Text: "Heb je het gevoel dat je nooit vrij bent van de zorg?",
			Tip:  "Respijtzorg kan de zorg tijdelijk van je overnemen."},
	}
}

// CheckinQuestions is the monthly check-in catalog: five questions, two
// reverse-scored, one multi-select.
func CheckinQuestions() []entities.Question {
	return []entities.Question{
		{ID: "c1", QuestionnaireType: entities.QuestionnaireCheckin, Order: 1, Weight: 1.0,
			Text: "Was de zorg deze maand zwaarder dan normaal?"},
		{ID: "c2", QuestionnaireType: entities.QuestionnaireCheckin, Order: 2, Weight: 1.0,
			Text: "Heb je slecht geslapen deze maand?"},
		{ID: "c3", QuestionnaireType: entities.QuestionnaireCheckin, Order: 3, Weight: 1.0, Reversed: true,
			Text: "Heb je deze maand voldoende tijd voor jezelf gehad?"},
		{ID: "c4", QuestionnaireType: entities.QuestionnaireCheckin, Order: 4, Weight: 1.0, Reversed: true,
			Text: "Kon je de zorg goed combineren met je andere bezigheden?"},
		{ID: "c5", QuestionnaireType: entities.QuestionnaireCheckin, Order: 5, Weight: 1.0, IsMultiSelect: true,
			Text: "Waar had je deze maand de meeste moeite mee? (meerdere antwoorden mogelijk)"},
	}
}

// CareTasks is the caregiving-duty catalog.
func CareTasks() []entities.CareTask {
	return []entities.CareTask{
		{ID: "administratie", Name: "Administratie en geldzaken", Order: 1,
			Description: "Post, rekeningen, aanvragen en formulieren regelen."},
		{ID: "vervoer", Name: "Vervoer en begeleiding", Order: 2,
			Description: "Meegaan naar afspraken, rijden, begeleiden bij uitjes."},
		{ID: "maaltijden", Name: "Maaltijden", Order: 3,
			Description: "Boodschappen doen, koken of eten klaarzetten."},
		{ID: "huishouden", Name: "Huishouden", Order: 4,
			Description: "Schoonmaken, wassen en klusjes in huis."},
		{ID: "verzorging", Name: "Persoonlijke verzorging", Order: 5,
			Description: "Helpen met wassen, aankleden en toiletgang."},
		{ID: "medicatie", Name: "Medicijnen en medische zorg", Order: 6,
			Description: "Medicijnen klaarzetten, wondzorg, contact met artsen."},
		{ID: "emotionele-steun", Name: "Emotionele steun en gezelschap", Order: 7,
			Description: "Luisteren, gezelschap houden, gerust stellen."},
		{ID: "regelzaken", Name: "Zorg regelen en afstemmen", Order: 8,
			Description: "Afspraken plannen en afstemmen met zorgverleners."},
	}
}

// SeedCatalogs upserts the question and task catalogs by natural key.
// Running it twice with the same data is a no-op.
func SeedCatalogs(db *gorm.DB) error {
	questionRepo := repositories.NewQuestionRepository(db)
	taskRepo := repositories.NewCareTaskRepository(db)

	if err := questionRepo.UpsertQuestions(BalanstestQuestions()); err != nil {
		return err
	}
	if err := questionRepo.UpsertQuestions(CheckinQuestions()); err != nil {
		return err
	}
	return taskRepo.UpsertTasks(CareTasks())
}
