package bot

import (
	"fmt"
	"strings"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/scoring"
)

// All outbound text follows the numbered-menu convention: digit + emoji per
// option, 0 is always "stoppen / terug naar menu".

const msgMenu = `Hoi! Ik ben MantelBuddy 👋
Waar kan ik je mee helpen?

1️⃣ 📋 Balanstest doen
2️⃣ 🔍 Hulp zoeken
3️⃣ 📍 Aanmelden / gegevens invullen

0️⃣ 🛑 Stoppen`

const msgGestopt = "Oké, ik stop. Stuur een bericht als je verder wilt. 👋"

const msgOngeldigeKeuze = "Dat begrijp ik niet helemaal. Kies een nummer uit het menu, of stuur 0 om te stoppen."

const msgAntwoordOpties = "\n\n1️⃣ ✅ Ja\n2️⃣ 🤔 Soms\n3️⃣ ❌ Nee"

const msgBalanstestIntro = "We gaan de balanstest doen. Beantwoord elke vraag met ja, soms of nee.\n\n"

const msgStoornis = "Er ging iets mis aan onze kant. Probeer het zo nog een keer. 🙏"

const msgOnboardingKeuze = `Fijn dat je je wilt aanmelden! Ik stel je een paar korte vragen over jou en degene voor wie je zorgt.

1️⃣ ✅ Ja, ga door
0️⃣ 🛑 Liever niet`

const msgVraagEigenPostcode = "Wat is je postcode? (bijvoorbeeld 6811 AB)"
const msgOngeldigePostcode = "Dat lijkt geen geldige postcode. Probeer het formaat 1234 AB."
const msgVraagEigenHuisnummer = "En je huisnummer?"
const msgAdresNietGevonden = "Ik kon dat adres niet vinden. Controleer je huisnummer en probeer het opnieuw."
const msgVraagZorgNaam = "Voor wie zorg je? (voornaam is genoeg)"
const msgVraagZorgRelatie = "Wat is je relatie tot diegene? (bijvoorbeeld moeder, partner, buurman)"
const msgVraagZorgPostcode = "Wat is de postcode van degene voor wie je zorgt?"
const msgVraagZorgHuisnummer = "En het huisnummer daar?"

const msgHulpKeuze = `Waar wil je hulp bij zoeken?

1️⃣ 🔍 Op soort hulp
2️⃣ 📋 Bij een zorgtaak

0️⃣ 🛑 Terug`

const msgGeenHulpGevonden = "Ik heb geen passende organisaties gevonden. Probeer het later opnieuw of neem contact op met je gemeente."

// Readable labels for the resource-type menu, in fixed order.
var hulpSoorten = []struct {
	Type  entities.ResourceType
	Label string
}{
	{entities.ResourceMantelzorgsteun, "Mantelzorgondersteuning"},
	{entities.ResourceRespijtzorg, "Respijtzorg (zorg tijdelijk overdragen)"},
	{entities.ResourceThuiszorg, "Thuiszorg"},
	{entities.ResourceVrijwilligers, "Vrijwilligersorganisaties"},
	{entities.ResourceWelzijn, "Welzijnsorganisaties"},
	{entities.ResourceGemeenteLoket, "Gemeente / Wmo-loket"},
}

func renderVraag(index, total int, text string) string {
	return fmt.Sprintf("Vraag %d van %d:\n%s%s", index+1, total, text, msgAntwoordOpties)
}

func renderTakenIntro(tasks []entities.CareTask) string {
	var b strings.Builder
	b.WriteString("Welke zorgtaken doe jij? Stuur de nummers, gescheiden door komma's (bijvoorbeeld 1,3).\n\n")
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, t.Name)
	}
	b.WriteString("\nDoe je geen van deze taken? Typ 'geen'.")
	return b.String()
}

func renderUrenVraag(taskName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hoeveel uur per week ben je bezig met %s?\n\n", strings.ToLower(taskName))
	for i, band := range usecases.HourBands {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, band.Label)
	}
	return b.String()
}

func renderMoeiteVraag(taskName string) string {
	return fmt.Sprintf("Vind je %s zwaar om te doen?%s", strings.ToLower(taskName), msgAntwoordOpties)
}

func renderHulpSoorten() string {
	var b strings.Builder
	b.WriteString("Wat voor soort hulp zoek je?\n\n")
	for i, s := range hulpSoorten {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, s.Label)
	}
	b.WriteString("\n0️⃣ 🛑 Terug")
	return b.String()
}

func renderHulpTaken(tasks []entities.CareTask) string {
	var b strings.Builder
	b.WriteString("Bij welke zorgtaak zoek je hulp?\n\n")
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d️⃣ %s\n", i+1, t.Name)
	}
	b.WriteString("\n0️⃣ 🛑 Terug")
	return b.String()
}

func renderHulpbronnen(resources []entities.HelpResource) string {
	if len(resources) == 0 {
		return msgGeenHulpGevonden
	}
	if len(resources) > 5 {
		resources = resources[:5]
	}

	var b strings.Builder
	b.WriteString("Dit vond ik voor je:\n")
	for _, r := range resources {
		fmt.Fprintf(&b, "\n*%s*\n%s\n", r.Name, r.Description)
		if r.Phone != "" {
			fmt.Fprintf(&b, "📞 %s\n", r.Phone)
		}
		if r.Website != "" {
			fmt.Fprintf(&b, "🌐 %s\n", r.Website)
		}
	}
	b.WriteString("\nSterkte! Stuur een bericht als je nog iets wilt weten.")
	return b.String()
}

func renderRapport(rapport *usecases.Rapport, taskNames map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Klaar! 🎉 Dit is jouw uitslag.\n\nTotaalscore: %.1f van 24\nNiveau: %s\n", rapport.TotalScore, tierLabel(rapport.TierLevel))

	if len(rapport.Deelgebieden) > 0 {
		b.WriteString("\nPer deelgebied:\n")
		for _, d := range rapport.Deelgebieden {
			fmt.Fprintf(&b, "- %s: %d%% (%s)\n  💡 %s\n", d.Name, d.Percentage, tierLabel(d.TierLevel), d.Tip)
		}
	}

	if rapport.TotalCareHoursPerWeek > 0 {
		fmt.Fprintf(&b, "\nJe zorgt ongeveer %.0f uur per week.\n", rapport.TotalCareHoursPerWeek)
	}

	if len(rapport.TaakAdviezen) > 0 {
		b.WriteString("\nAdvies bij jouw taken:\n")
		for taskID, advies := range rapport.TaakAdviezen {
			name := taskID
			if n, ok := taskNames[taskID]; ok {
				name = n
			}
			fmt.Fprintf(&b, "- %s: %s\n", name, advies)
		}
	}

	if len(rapport.Hulpbronnen) > 0 {
		b.WriteString("\nDeze organisaties kunnen je helpen:\n")
		max := len(rapport.Hulpbronnen)
		if max > 3 {
			max = 3
		}
		for _, r := range rapport.Hulpbronnen[:max] {
			fmt.Fprintf(&b, "- %s", r.Name)
			if r.Phone != "" {
				fmt.Fprintf(&b, " (📞 %s)", r.Phone)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func tierLabel(t scoring.Tier) string {
	switch t {
	case scoring.TierLaag:
		return "laag 🟢"
	case scoring.TierGemiddeld:
		return "gemiddeld 🟠"
	case scoring.TierHoog:
		return "hoog 🔴"
	}
	return string(t)
}
