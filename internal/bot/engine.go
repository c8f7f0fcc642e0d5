package bot

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/geo"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// Engine drives the conversational flows. Every inbound message resolves to
// exactly one outbound reply; malformed input re-prompts and never errors out
// to the transport layer.
type Engine struct {
	store      *Store
	vragen     usecases.VraagUseCase
	balans     usecases.BalanstestUseCase
	hulp       usecases.HulpbronUseCase
	caregivers usecases.CaregiverUseCase
	geo        geo.Lookup
	log        *logrus.Entry
}

func NewEngine(
	store *Store,
	vragen usecases.VraagUseCase,
	balans usecases.BalanstestUseCase,
	hulp usecases.HulpbronUseCase,
	caregivers usecases.CaregiverUseCase,
	geoLookup geo.Lookup,
	log *logrus.Entry,
) *Engine {
	return &Engine{
		store:      store,
		vragen:     vragen,
		balans:     balans,
		hulp:       hulp,
		caregivers: caregivers,
		geo:        geoLookup,
		log:        log,
	}
}

// Store exposes the session store for metrics wiring.
func (e *Engine) Store() *Store {
	return e.store
}

// Handle processes one inbound message and returns the reply text.
func (e *Engine) Handle(ctx context.Context, phone, body string) string {
	if IsStop(body) {
		e.store.Delete(phone)
		return msgGestopt + "\n\n" + msgMenu
	}

	var reply string
	e.store.With(phone, func(sess *Session, created bool) bool {
		var done bool
		reply, done = e.dispatch(ctx, sess, created, body)
		return done
	})
	return reply
}

func (e *Engine) dispatch(ctx context.Context, sess *Session, created bool, body string) (string, bool) {
	switch sess.CurrentStep {
	case StepMenu:
		return e.handleMenu(ctx, sess, created, body)

	case StepVragen:
		return e.handleVragen(ctx, sess, body)
	case StepTakenIntro:
		return e.handleTakenIntro(ctx, sess, body)
	case StepTakenUren:
		return e.handleTakenUren(sess, body)
	case StepTakenMoeite:
		return e.handleTakenMoeite(ctx, sess, body)

	case StepOnboardingKeuze:
		return e.handleOnboardingKeuze(sess, body)
	case StepEigenPostcode:
		return e.handlePostcode(sess, body, true)
	case StepEigenHuisnummer:
		return e.handleEigenHuisnummer(ctx, sess, body)
	case StepZorgNaam:
		return e.handleZorgNaam(sess, body)
	case StepZorgRelatie:
		return e.handleZorgRelatie(sess, body)
	case StepZorgPostcode:
		return e.handlePostcode(sess, body, false)
	case StepZorgHuisnummer:
		return e.handleZorgHuisnummer(ctx, sess, body)

	case StepHulpKeuze:
		return e.handleHulpKeuze(ctx, sess, body)
	case StepHulpSoort:
		return e.handleHulpSoort(ctx, sess, body)
	case StepHulpTaak:
		return e.handleHulpTaak(ctx, sess, body)
	}

	// Unknown step can only come from a stale session after a deploy; start
	// over rather than getting stuck.
	sess.resetFlow()
	return msgMenu, false
}

// --- hoofdmenu ---

func (e *Engine) handleMenu(ctx context.Context, sess *Session, created bool, body string) (string, bool) {
	if created {
		// First contact: any text shows the menu, digits are honored right
		// away so "1" as an opener still works.
		if reply, done, ok := e.menuChoice(ctx, sess, body); ok {
			return reply, done
		}
		return msgMenu, false
	}

	if reply, done, ok := e.menuChoice(ctx, sess, body); ok {
		return reply, done
	}
	return msgOngeldigeKeuze + "\n\n" + msgMenu, false
}

func (e *Engine) menuChoice(ctx context.Context, sess *Session, body string) (string, bool, bool) {
	switch Normalize(body) {
	case "1", "balanstest", "test":
		reply, done := e.startBalanstest(ctx, sess)
		return reply, done, true
	case "2", "hulp", "hulp zoeken":
		sess.CurrentStep = StepHulpKeuze
		return msgHulpKeuze, false, true
	case "3", "aanmelden", "gegevens":
		sess.CurrentStep = StepOnboardingKeuze
		return msgOnboardingKeuze, false, true
	}
	return "", false, false
}

// --- balanstest flow ---

func (e *Engine) startBalanstest(ctx context.Context, sess *Session) (string, bool) {
	questions, err := e.vragen.GetVragen(entities.QuestionnaireBalanstest)
	if err != nil || len(questions) == 0 {
		e.log.WithError(err).Error("balanstestvragen laden mislukt")
		return msgStoornis, false
	}

	sess.Questions = questions
	sess.QuestionIndex = 0
	sess.Answers = nil
	sess.CurrentStep = StepVragen

	return msgBalanstestIntro + renderVraag(0, len(questions), questions[0].Text), false
}

func (e *Engine) handleVragen(ctx context.Context, sess *Session, body string) (string, bool) {
	value, ok := NormalizeAnswer(body)
	if !ok {
		return "Kies 1 (ja), 2 (soms) of 3 (nee).\n\n" +
			renderVraag(sess.QuestionIndex, len(sess.Questions), sess.Questions[sess.QuestionIndex].Text), false
	}

	question := sess.Questions[sess.QuestionIndex]
	sess.Answers = append(sess.Answers, scoring.AnswerInput{QuestionID: question.ID, Value: value})
	sess.QuestionIndex++

	if sess.QuestionIndex < len(sess.Questions) {
		return renderVraag(sess.QuestionIndex, len(sess.Questions), sess.Questions[sess.QuestionIndex].Text), false
	}

	tasks, err := e.vragen.GetZorgtaken()
	if err != nil || len(tasks) == 0 {
		e.log.WithError(err).Error("zorgtaken laden mislukt")
		// No task catalog: finish with the answers alone.
		return e.finalize(ctx, sess)
	}

	sess.Tasks = tasks
	sess.CurrentStep = StepTakenIntro
	return "Dat waren de vragen! 🙌\n\n" + renderTakenIntro(tasks), false
}

func (e *Engine) handleTakenIntro(ctx context.Context, sess *Session, body string) (string, bool) {
	norm := Normalize(body)
	if norm == "geen" {
		sess.SelectedTasks = nil
		return e.finalize(ctx, sess)
	}

	ids, ok := parseTaskSelection(norm, len(sess.Tasks))
	if !ok {
		return "Stuur de nummers van je taken, gescheiden door komma's (bijvoorbeeld 1,3), of typ 'geen'.\n\n" +
			renderTakenIntro(sess.Tasks), false
	}

	sess.SelectedTasks = make([]string, 0, len(ids))
	for _, i := range ids {
		sess.SelectedTasks = append(sess.SelectedTasks, sess.Tasks[i].ID)
	}
	sess.TaskIndex = 0
	sess.CurrentStep = StepTakenUren

	taskID, _ := sess.currentTask()
	return renderUrenVraag(sess.taskName(taskID)), false
}

func (e *Engine) handleTakenUren(sess *Session, body string) (string, bool) {
	taskID, ok := sess.currentTask()
	if !ok {
		sess.resetFlow()
		return msgMenu, false
	}

	option, err := parseMenuNumber(Normalize(body))
	hours, valid := usecases.HoursForBand(option)
	if err != nil || !valid {
		return "Kies een nummer uit de lijst.\n\n" + renderUrenVraag(sess.taskName(taskID)), false
	}

	sess.TaskHours[taskID] = hours
	sess.CurrentStep = StepTakenMoeite
	return renderMoeiteVraag(sess.taskName(taskID)), false
}

func (e *Engine) handleTakenMoeite(ctx context.Context, sess *Session, body string) (string, bool) {
	taskID, ok := sess.currentTask()
	if !ok {
		sess.resetFlow()
		return msgMenu, false
	}

	value, valid := NormalizeAnswer(body)
	if !valid {
		return "Kies 1 (ja), 2 (soms) of 3 (nee).\n\n" + renderMoeiteVraag(sess.taskName(taskID)), false
	}

	sess.TaskDifficulty[taskID] = value
	sess.TaskIndex++

	if next, more := sess.currentTask(); more {
		sess.CurrentStep = StepTakenUren
		return renderUrenVraag(sess.taskName(next)), false
	}

	return e.finalize(ctx, sess)
}

func (e *Engine) finalize(ctx context.Context, sess *Session) (string, bool) {
	sub := usecases.BalanstestSubmission{}
	for _, a := range sess.Answers {
		sub.Answers = append(sub.Answers, usecases.AnswerSubmission{QuestionID: a.QuestionID, Value: usecases.AnswerValue(a.Value)})
	}
	for _, taskID := range sess.SelectedTasks {
		sub.Tasks = append(sub.Tasks, usecases.TaskSubmission{
			TaskID:       taskID,
			HoursPerWeek: sess.TaskHours[taskID],
			Difficulty:   sess.TaskDifficulty[taskID],
		})
	}

	rapport, err := e.balans.SubmitByPhone(sess.Phone, sub)
	if err != nil {
		// Keep the session so the user can retry from where they are.
		e.log.WithError(err).WithField("phone", sess.Phone).Error("balanstest opslaan mislukt")
		return msgStoornis, false
	}

	taskNames := make(map[string]string, len(sess.Tasks))
	for _, t := range sess.Tasks {
		taskNames[t.ID] = t.Name
	}

	sess.CurrentStep = StepAfgerond
	return renderRapport(rapport, taskNames), true
}

// --- onboarding flow ---

func (e *Engine) handleOnboardingKeuze(sess *Session, body string) (string, bool) {
	switch Normalize(body) {
	case "1", "ja", "yes":
		sess.CurrentStep = StepEigenPostcode
		return msgVraagEigenPostcode, false
	}
	return msgOngeldigeKeuze + "\n\n" + msgOnboardingKeuze, false
}

func (e *Engine) handlePostcode(sess *Session, body string, own bool) (string, bool) {
	postcode, ok := utils.NormalizePostcode(body)
	if !ok {
		return msgOngeldigePostcode, false
	}

	if own {
		sess.OwnPostcode = postcode
		sess.CurrentStep = StepEigenHuisnummer
		return msgVraagEigenHuisnummer, false
	}
	sess.CarePostcode = postcode
	sess.CurrentStep = StepZorgHuisnummer
	return msgVraagZorgHuisnummer, false
}

func (e *Engine) handleEigenHuisnummer(ctx context.Context, sess *Session, body string) (string, bool) {
	house := Normalize(body)
	if house == "" {
		return msgVraagEigenHuisnummer, false
	}
	sess.OwnHouse = house

	address, err := e.geo.Resolve(ctx, sess.OwnPostcode, house)
	if err != nil {
		// Recoverable: same step, user can retype the house number.
		e.log.WithError(err).Warn("adreslookup mislukt")
		return msgAdresNietGevonden, false
	}

	sess.OwnStreet = address.Street
	sess.OwnCity = address.City
	sess.OwnMunicipality = address.Municipality
	sess.CurrentStep = StepZorgNaam

	return "Gevonden: " + address.Street + " in " + address.City + " ✅\n\n" + msgVraagZorgNaam, false
}

func (e *Engine) handleZorgNaam(sess *Session, body string) (string, bool) {
	name := normalizeFree(body)
	if name == "" {
		return msgVraagZorgNaam, false
	}
	sess.CareName = name
	sess.CurrentStep = StepZorgRelatie
	return msgVraagZorgRelatie, false
}

func (e *Engine) handleZorgRelatie(sess *Session, body string) (string, bool) {
	relation := normalizeFree(body)
	if relation == "" {
		return msgVraagZorgRelatie, false
	}
	sess.CareRelation = relation
	sess.CurrentStep = StepZorgPostcode
	return msgVraagZorgPostcode, false
}

func (e *Engine) handleZorgHuisnummer(ctx context.Context, sess *Session, body string) (string, bool) {
	house := Normalize(body)
	if house == "" {
		return msgVraagZorgHuisnummer, false
	}
	sess.CareHouse = house

	// Best effort: the care address city is informative only, a failed
	// lookup does not block finishing the onboarding.
	if address, err := e.geo.Resolve(ctx, sess.CarePostcode, house); err == nil {
		sess.CareCity = address.City
	} else {
		e.log.WithError(err).Warn("adreslookup zorgadres mislukt")
	}

	_, err := e.caregivers.SaveOnboarding(sess.Phone, usecases.OnboardingInput{
		Postcode:              sess.OwnPostcode,
		HouseNumber:           sess.OwnHouse,
		Street:                sess.OwnStreet,
		City:                  sess.OwnCity,
		Municipality:          sess.OwnMunicipality,
		CareRecipientName:     sess.CareName,
		CareRecipientRelation: sess.CareRelation,
		CareRecipientPostcode: sess.CarePostcode,
		CareRecipientCity:     sess.CareCity,
	})
	if err != nil {
		e.log.WithError(err).WithField("phone", sess.Phone).Error("onboarding opslaan mislukt")
		return msgStoornis, false
	}

	return "Je gegevens zijn opgeslagen. ✅ Ik kan nu hulp bij jou in de buurt zoeken.\n\n" + msgMenu, true
}

// --- hulp zoeken flow ---

func (e *Engine) handleHulpKeuze(ctx context.Context, sess *Session, body string) (string, bool) {
	switch Normalize(body) {
	case "1", "soort", "soort hulp":
		sess.CurrentStep = StepHulpSoort
		return renderHulpSoorten(), false
	case "2", "taak", "zorgtaak":
		tasks, err := e.vragen.GetZorgtaken()
		if err != nil || len(tasks) == 0 {
			e.log.WithError(err).Error("zorgtaken laden mislukt")
			return msgStoornis, false
		}
		sess.Tasks = tasks
		sess.CurrentStep = StepHulpTaak
		return renderHulpTaken(tasks), false
	}
	return msgOngeldigeKeuze + "\n\n" + msgHulpKeuze, false
}

func (e *Engine) handleHulpSoort(ctx context.Context, sess *Session, body string) (string, bool) {
	option, err := parseMenuNumber(Normalize(body))
	if err != nil || option < 1 || option > len(hulpSoorten) {
		return "Kies een nummer uit de lijst.\n\n" + renderHulpSoorten(), false
	}

	return e.zoekHulp(ctx, sess, e.queryForPhone(sess.Phone, func(q *resolver.Query) {
		q.Type = hulpSoorten[option-1].Type
	}))
}

func (e *Engine) handleHulpTaak(ctx context.Context, sess *Session, body string) (string, bool) {
	option, err := parseMenuNumber(Normalize(body))
	if err != nil || option < 1 || option > len(sess.Tasks) {
		return "Kies een nummer uit de lijst.\n\n" + renderHulpTaken(sess.Tasks), false
	}

	return e.zoekHulp(ctx, sess, e.queryForPhone(sess.Phone, func(q *resolver.Query) {
		q.Category = sess.Tasks[option-1].ID
	}))
}

func (e *Engine) zoekHulp(ctx context.Context, sess *Session, q resolver.Query) (string, bool) {
	resources, err := e.hulp.Zoek(q)
	if err != nil {
		e.log.WithError(err).Error("hulpbronnen zoeken mislukt")
		return msgStoornis, false
	}

	sess.CurrentStep = StepHulpResultaten
	// Results are terminal: the session is cleared, the next message starts
	// fresh at the menu.
	return renderHulpbronnen(resources), true
}

// queryForPhone scopes a search to the caregiver's municipality when the
// sender has completed onboarding; otherwise the search is nationwide.
func (e *Engine) queryForPhone(phone string, mutate func(q *resolver.Query)) resolver.Query {
	var q resolver.Query
	caregiver, err := e.caregivers.GetByPhone(phone)
	if err != nil && !errors.Is(err, usecases.ErrNietGevonden) {
		e.log.WithError(err).Warn("mantelzorger opzoeken mislukt")
	}
	if caregiver != nil {
		q.Municipality = caregiver.Municipality
	}
	mutate(&q)
	return q
}
