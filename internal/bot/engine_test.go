package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/geo"
	"github.com/mantelbuddy/mantelbuddy-api/internal/resolver"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

type fakeVragen struct {
	vragen []entities.Question
	taken  []entities.CareTask
}

func (f *fakeVragen) GetVragen(t entities.QuestionnaireType) ([]entities.Question, error) {
	return f.vragen, nil
}
func (f *fakeVragen) GetZorgtaken() ([]entities.CareTask, error) { return f.taken, nil }
func (f *fakeVragen) InvalidateCache()                           {}

type fakeBalans struct {
	submitted *usecases.BalanstestSubmission
	phone     string
	err       error
}

func (f *fakeBalans) SubmitByPhone(phone string, sub usecases.BalanstestSubmission) (*usecases.Rapport, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.phone = phone
	f.submitted = &sub
	return &usecases.Rapport{
		TotalScore: 8,
		TierLevel:  scoring.TierGemiddeld,
		Deelgebieden: []scoring.Deelgebied{
			{Name: "energie", Percentage: 60, TierLevel: scoring.TierGemiddeld, Tip: "rust nemen"},
		},
		CompletedAt: time.Now(),
	}, nil
}
func (f *fakeBalans) Submit(id uuid.UUID, sub usecases.BalanstestSubmission) (*usecases.Rapport, error) {
	return nil, errors.New("niet gebruikt")
}
func (f *fakeBalans) Laatste(id uuid.UUID) (*usecases.Rapport, error) {
	return nil, usecases.ErrNietGevonden
}
func (f *fakeBalans) Trend(id uuid.UUID) ([]usecases.TrendPoint, error) {
	return nil, usecases.ErrNietGevonden
}

type fakeHulp struct {
	lastQuery resolver.Query
	results   []entities.HelpResource
}

func (f *fakeHulp) Zoek(q resolver.Query) ([]entities.HelpResource, error) {
	f.lastQuery = q
	return f.results, nil
}
func (f *fakeHulp) GetAll(page, limit int, municipality string) ([]entities.HelpResource, int64, error) {
	return nil, 0, nil
}
func (f *fakeHulp) GetByID(id uuid.UUID) (*entities.HelpResource, error) {
	return nil, usecases.ErrNietGevonden
}
func (f *fakeHulp) Save(r *entities.HelpResource, scoped string) error { return nil }
func (f *fakeHulp) Delete(id uuid.UUID, scoped string) error          { return nil }

type fakeCaregivers struct {
	caregiver *entities.Caregiver
	saved     *usecases.OnboardingInput
	savedFor  string
}

func (f *fakeCaregivers) GetByPhone(phone string) (*entities.Caregiver, error) {
	if f.caregiver == nil {
		return nil, usecases.ErrNietGevonden
	}
	return f.caregiver, nil
}
func (f *fakeCaregivers) GetByID(id uuid.UUID) (*entities.Caregiver, error) {
	return nil, usecases.ErrNietGevonden
}
func (f *fakeCaregivers) SaveOnboarding(phone string, input usecases.OnboardingInput) (*entities.Caregiver, error) {
	f.savedFor = phone
	f.saved = &input
	return &entities.Caregiver{Phone: phone}, nil
}

type fakeGeo struct {
	address *geo.Address
	err     error
}

func (f *fakeGeo) Resolve(ctx context.Context, postcode, houseNumber string) (*geo.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.address, nil
}

func testQuestions() []entities.Question {
	return []entities.Question{
		{ID: "b1", QuestionnaireType: entities.QuestionnaireBalanstest, Section: "energie", Text: "Zit je goed in je vel?", Weight: 1.5, Order: 1},
		{ID: "b2", QuestionnaireType: entities.QuestionnaireBalanstest, Section: "tijd", Text: "Heb je tijd voor jezelf?", Weight: 1, Order: 2},
	}
}

func testTasks() []entities.CareTask {
	return []entities.CareTask{
		{ID: "vervoer", Name: "Vervoer", Order: 1},
		{ID: "maaltijden", Name: "Maaltijden", Order: 2},
		{ID: "huishouden", Name: "Huishouden", Order: 3},
	}
}

func testEngine(balans *fakeBalans, hulp *fakeHulp, caregivers *fakeCaregivers, lookup geo.Lookup) *Engine {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return NewEngine(
		NewStore(time.Minute),
		&fakeVragen{vragen: testQuestions(), taken: testTasks()},
		balans,
		hulp,
		caregivers,
		lookup,
		logrus.NewEntry(l),
	)
}

func TestFirstContactShowsMenu(t *testing.T) {
	e := testEngine(&fakeBalans{}, &fakeHulp{}, &fakeCaregivers{}, &fakeGeo{})

	reply := e.Handle(context.Background(), "0612345678", "hallo")
	if reply != msgMenu {
		t.Fatalf("first contact reply = %q, want menu", reply)
	}
}

func TestStopFromAnyState(t *testing.T) {
	e := testEngine(&fakeBalans{}, &fakeHulp{}, &fakeCaregivers{}, &fakeGeo{})
	phone := "0612345678"

	e.Handle(context.Background(), phone, "1") // into the questions
	reply := e.Handle(context.Background(), phone, "stop")

	if !strings.Contains(reply, msgGestopt) {
		t.Fatalf("stop reply = %q, want gestopt message", reply)
	}
	if _, ok := e.Store().Get(phone); ok {
		t.Fatal("session should be removed after stop")
	}

	// Next message starts fresh at the menu.
	reply = e.Handle(context.Background(), phone, "hallo")
	if reply != msgMenu {
		t.Fatalf("post-stop reply = %q, want menu", reply)
	}
}

func TestBalanstestFullFlow(t *testing.T) {
	balans := &fakeBalans{}
	e := testEngine(balans, &fakeHulp{}, &fakeCaregivers{}, &fakeGeo{})
	phone := "0612345678"
	ctx := context.Background()

	reply := e.Handle(ctx, phone, "1")
	if !strings.Contains(reply, "Vraag 1 van 2") {
		t.Fatalf("expected first question, got %q", reply)
	}

	// Invalid answer re-prompts the same question.
	reply = e.Handle(ctx, phone, "misschien")
	if !strings.Contains(reply, "Vraag 1 van 2") {
		t.Fatalf("invalid answer should re-prompt question 1, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "ja")
	if !strings.Contains(reply, "Vraag 2 van 2") {
		t.Fatalf("expected second question, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "3")
	if !strings.Contains(reply, "Welke zorgtaken") {
		t.Fatalf("expected task intro after last question, got %q", reply)
	}

	// Two tasks: first hours, then difficulty, then the next task.
	reply = e.Handle(ctx, phone, "1,3")
	if !strings.Contains(reply, "vervoer") || !strings.Contains(reply, "Hoeveel uur") {
		t.Fatalf("expected hours question for vervoer, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "2") // band 2-4 uur
	if !strings.Contains(reply, "zwaar om te doen") {
		t.Fatalf("expected difficulty question, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "1") // ja, zwaar
	if !strings.Contains(reply, "huishouden") {
		t.Fatalf("expected hours question for huishouden, got %q", reply)
	}

	e.Handle(ctx, phone, "4")          // band 8-16 uur
	reply = e.Handle(ctx, phone, "3")  // nee, niet zwaar
	if !strings.Contains(reply, "Totaalscore") {
		t.Fatalf("expected rapport, got %q", reply)
	}

	if balans.phone != phone {
		t.Fatalf("submission for %q, want %q", balans.phone, phone)
	}
	sub := balans.submitted
	if sub == nil || len(sub.Answers) != 2 {
		t.Fatalf("expected 2 submitted answers, got %+v", sub)
	}
	if sub.Answers[0].Value != "ja" || sub.Answers[1].Value != "nee" {
		t.Fatalf("submitted answers %+v, want ja/nee", sub.Answers)
	}
	if len(sub.Tasks) != 2 {
		t.Fatalf("expected 2 submitted tasks, got %d", len(sub.Tasks))
	}
	if sub.Tasks[0].TaskID != "vervoer" || sub.Tasks[0].HoursPerWeek != 3 || sub.Tasks[0].Difficulty != "ja" {
		t.Fatalf("task 1 = %+v, want vervoer 3u ja", sub.Tasks[0])
	}
	if sub.Tasks[1].TaskID != "huishouden" || sub.Tasks[1].HoursPerWeek != 12 || sub.Tasks[1].Difficulty != "nee" {
		t.Fatalf("task 2 = %+v, want huishouden 12u nee", sub.Tasks[1])
	}

	// Rapport is terminal: session is gone.
	if _, ok := e.Store().Get(phone); ok {
		t.Fatal("session should be removed after the rapport")
	}
}

func TestBalanstestGeenTaken(t *testing.T) {
	balans := &fakeBalans{}
	e := testEngine(balans, &fakeHulp{}, &fakeCaregivers{}, &fakeGeo{})
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "1")
	e.Handle(ctx, phone, "ja")
	e.Handle(ctx, phone, "soms")

	reply := e.Handle(ctx, phone, "geen")
	if !strings.Contains(reply, "Totaalscore") {
		t.Fatalf("expected rapport after 'geen', got %q", reply)
	}
	if len(balans.submitted.Tasks) != 0 {
		t.Fatalf("expected no submitted tasks, got %d", len(balans.submitted.Tasks))
	}
}

func TestBalanstestBackendFailureKeepsSession(t *testing.T) {
	balans := &fakeBalans{err: errors.New("db weg")}
	e := testEngine(balans, &fakeHulp{}, &fakeCaregivers{}, &fakeGeo{})
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "1")
	e.Handle(ctx, phone, "ja")
	e.Handle(ctx, phone, "ja")

	reply := e.Handle(ctx, phone, "geen")
	if reply != msgStoornis {
		t.Fatalf("expected stoornis message, got %q", reply)
	}
	if _, ok := e.Store().Get(phone); !ok {
		t.Fatal("session should survive a backend failure for a retry")
	}
}

func TestOnboardingFlow(t *testing.T) {
	caregivers := &fakeCaregivers{}
	lookup := &fakeGeo{address: &geo.Address{
		Street:       "Spoorstraat",
		City:         "Arnhem",
		Municipality: "Arnhem",
	}}
	e := testEngine(&fakeBalans{}, &fakeHulp{}, caregivers, lookup)
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "3")
	reply := e.Handle(ctx, phone, "1")
	if reply != msgVraagEigenPostcode {
		t.Fatalf("expected postcode prompt, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "12 AB")
	if reply != msgOngeldigePostcode {
		t.Fatalf("invalid postcode should re-prompt, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "6811ab")
	if reply != msgVraagEigenHuisnummer {
		t.Fatalf("expected house number prompt, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "12")
	if !strings.Contains(reply, "Spoorstraat") || !strings.Contains(reply, msgVraagZorgNaam) {
		t.Fatalf("expected resolved address + care name prompt, got %q", reply)
	}

	e.Handle(ctx, phone, "Moeder")
	e.Handle(ctx, phone, "moeder")
	e.Handle(ctx, phone, "6812 CD")
	reply = e.Handle(ctx, phone, "7")

	if !strings.Contains(reply, "opgeslagen") {
		t.Fatalf("expected confirmation, got %q", reply)
	}

	if caregivers.savedFor != phone {
		t.Fatalf("onboarding saved for %q, want %q", caregivers.savedFor, phone)
	}
	saved := caregivers.saved
	if saved.Postcode != "6811 AB" || saved.HouseNumber != "12" || saved.Municipality != "Arnhem" {
		t.Fatalf("saved own address %+v, want normalized postcode + municipality", saved)
	}
	if saved.CareRecipientName != "Moeder" || saved.CareRecipientPostcode != "6812 CD" {
		t.Fatalf("saved care recipient %+v", saved)
	}
	if _, ok := e.Store().Get(phone); ok {
		t.Fatal("session should be removed after onboarding")
	}
}

func TestOnboardingLookupFailureKeepsStep(t *testing.T) {
	lookup := &fakeGeo{err: errors.New("service onbereikbaar")}
	e := testEngine(&fakeBalans{}, &fakeHulp{}, &fakeCaregivers{}, lookup)
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "3")
	e.Handle(ctx, phone, "1")
	e.Handle(ctx, phone, "6811 AB")

	reply := e.Handle(ctx, phone, "12")
	if reply != msgAdresNietGevonden {
		t.Fatalf("expected address-not-found message, got %q", reply)
	}

	sess, ok := e.Store().Get(phone)
	if !ok || sess.CurrentStep != StepEigenHuisnummer {
		t.Fatalf("session should stay on the house-number step, got %+v", sess)
	}
}

func TestHulpZoekenScopedToMunicipality(t *testing.T) {
	hulp := &fakeHulp{results: []entities.HelpResource{
		{Name: "Mantelzorg Arnhem", Description: "Steunpunt", Phone: "026-1234567"},
	}}
	caregivers := &fakeCaregivers{caregiver: &entities.Caregiver{Municipality: "Arnhem"}}
	e := testEngine(&fakeBalans{}, hulp, caregivers, &fakeGeo{})
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "2")
	reply := e.Handle(ctx, phone, "1")
	if !strings.Contains(reply, "soort hulp") {
		t.Fatalf("expected resource type menu, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "2") // respijtzorg
	if !strings.Contains(reply, "Mantelzorg Arnhem") {
		t.Fatalf("expected results, got %q", reply)
	}

	if hulp.lastQuery.Municipality != "Arnhem" {
		t.Fatalf("query municipality %q, want Arnhem", hulp.lastQuery.Municipality)
	}
	if hulp.lastQuery.Type != entities.ResourceRespijtzorg {
		t.Fatalf("query type %q, want respijtzorg", hulp.lastQuery.Type)
	}

	// Results are terminal.
	if _, ok := e.Store().Get(phone); ok {
		t.Fatal("session should be removed after results")
	}
}

func TestHulpZoekenBijTaak(t *testing.T) {
	hulp := &fakeHulp{}
	e := testEngine(&fakeBalans{}, hulp, &fakeCaregivers{}, &fakeGeo{})
	phone := "0612345678"
	ctx := context.Background()

	e.Handle(ctx, phone, "2")
	reply := e.Handle(ctx, phone, "2")
	if !strings.Contains(reply, "zorgtaak") {
		t.Fatalf("expected task menu, got %q", reply)
	}

	reply = e.Handle(ctx, phone, "2") // maaltijden
	if reply != msgGeenHulpGevonden {
		t.Fatalf("expected empty-result message, got %q", reply)
	}
	if hulp.lastQuery.Category != "maaltijden" {
		t.Fatalf("query category %q, want maaltijden", hulp.lastQuery.Category)
	}
	// No onboarding: nationwide search.
	if hulp.lastQuery.Municipality != "" {
		t.Fatalf("query municipality %q, want empty", hulp.lastQuery.Municipality)
	}
}
