package templates

import "github.com/Minomoreno86/EMOCIONES/internal/emotion"

// Static is an immutable in-memory phrase table.
type Static struct {
	responses           map[emotion.State][]string
	fallback            string
	empathySuffix       string
	encouragementSuffix string
	breathing           string
	welcome             string
	risky               []string
	hedge               string
	disclaimer          string
	disclaimerMarkers   []string
	noEmotionsSummary   string
	summaryFormat       string
}

func (s *Static) Responses(state emotion.State) []string { return s.responses[state] }
func (s *Static) Fallback() string                       { return s.fallback }
func (s *Static) EmpathySuffix() string                  { return s.empathySuffix }
func (s *Static) EncouragementSuffix() string            { return s.encouragementSuffix }
func (s *Static) BreathingIntervention() string          { return s.breathing }
func (s *Static) Welcome() string                        { return s.welcome }
func (s *Static) RiskyPhrases() []string                 { return s.risky }
func (s *Static) HedgePhrase() string                    { return s.hedge }
func (s *Static) Disclaimer() string                     { return s.disclaimer }
func (s *Static) DisclaimerMarkers() []string            { return s.disclaimerMarkers }
func (s *Static) NoEmotionsSummary() string              { return s.noEmotionsSummary }
func (s *Static) SummaryFormat() string                  { return s.summaryFormat }

// Spanish is the default table.
func Spanish() *Static {
	return &Static{
		responses: map[emotion.State][]string{
			emotion.StateAnxious: {
				"Entiendo que te sientes ansiosa. Respiremos juntas por un momento.",
				"La ansiedad es natural en este proceso. ¿Qué te ayudaría a sentirte más tranquila?",
				"Estoy aquí contigo. Vamos paso a paso, sin prisa.",
			},
			emotion.StateSad: {
				"Siento que estés pasando por este momento difícil.",
				"Está bien sentir tristeza. Es parte del proceso y eres muy valiente.",
				"No estás sola en esto. Permítete sentir, yo estaré aquí.",
			},
			emotion.StateHopeful: {
				"Me alegra sentir tu esperanza. Es una fuerza hermosa.",
				"Esa esperanza que tienes es el motor de todo lo bueno que viene.",
				"Tu optimismo es contagioso y me inspira.",
			},
			emotion.StateExcited: {
				"¡Qué hermoso verte tan emocionada! Comparto tu alegría.",
				"Tu emoción me llena de felicidad. ¡Celebremos juntas!",
				"Es maravilloso verte brillar así. Mereces toda esta felicidad.",
			},
			emotion.StateFrustrated: {
				"Comprendo tu frustración. A veces el camino se siente muy difícil.",
				"Es válido sentirse frustrada. ¿Qué necesitas para sentirte mejor?",
				"Tu frustración habla de lo mucho que deseas esto. Eso es fortaleza.",
			},
			emotion.StateGrateful: {
				"Tu gratitud es hermosa y se siente en cada palabra.",
				"Qué bonito es compartir este momento de agradecimiento contigo.",
				"La gratitud que sientes ilumina todo a tu alrededor.",
			},
			emotion.StateNeutral: {
				"Te escucho. Estoy aquí para acompañarte en lo que necesites.",
				"¿Cómo puedo apoyarte mejor en este momento?",
				"Estoy contigo. Cuéntame lo que sientes.",
			},
		},
		fallback:            "Te escucho. Estoy aquí para apoyarte.",
		empathySuffix:       " Estoy aquí contigo en este momento.",
		encouragementSuffix: " Tu fortaleza me inspira.",
		breathing:           "Pausa de 60s: inhala 4, sostén 7, exhala 8. ¿Seguimos cuando estés lista?",
		welcome:             "¡Hola! Soy Luna, tu compañera de apoyo emocional. Estoy aquí para escucharte y acompañarte. ¿Cómo te sientes hoy?",
		risky: []string{
			"debes ", "tienes que ", "diagnóstico", "ajusta dosis", "ajustar dosis", "receta", "medicación",
		},
		hedge:             "podrías considerar ",
		disclaimer:        "Recuerda: este apoyo no sustituye la evaluación de un profesional de salud.",
		disclaimerMarkers: []string{"no sustituye", "profesional de salud"},
		noEmotionsSummary: "Sin emociones detectadas",
		summaryFormat:     "Resumen emocional (%d mensajes): %s. Emoción dominante: %s (confianza promedio: %.1f%%)",
	}
}

// English mirrors the Spanish table for the secondary locale.
func English() *Static {
	return &Static{
		responses: map[emotion.State][]string{
			emotion.StateAnxious: {
				"I understand you feel anxious. Let's breathe together for a moment.",
				"Anxiety is natural in this process. What would help you feel calmer?",
				"I'm here with you. One step at a time, no rush.",
			},
			emotion.StateSad: {
				"I'm sorry you're going through this difficult moment.",
				"It's okay to feel sad. It's part of the process and you are very brave.",
				"You are not alone in this. Let yourself feel, I'll be here.",
			},
			emotion.StateHopeful: {
				"It warms me to sense your hope. It's a beautiful strength.",
				"That hope of yours drives all the good that's coming.",
				"Your optimism is contagious and it inspires me.",
			},
			emotion.StateExcited: {
				"How lovely to see you so excited! I share your joy.",
				"Your excitement fills me with happiness. Let's celebrate!",
				"It's wonderful to see you shine like this.",
			},
			emotion.StateFrustrated: {
				"I understand your frustration. Sometimes the road feels very hard.",
				"It's valid to feel frustrated. What do you need to feel better?",
				"Your frustration speaks of how much you want this. That is strength.",
			},
			emotion.StateGrateful: {
				"Your gratitude is beautiful and shows in every word.",
				"How nice to share this moment of thankfulness with you.",
				"The gratitude you feel lights up everything around you.",
			},
			emotion.StateNeutral: {
				"I hear you. I'm here for whatever you need.",
				"How can I best support you right now?",
				"I'm with you. Tell me what you feel.",
			},
		},
		fallback:            "I'm listening. I'm here to support you.",
		empathySuffix:       " I'm right here with you.",
		encouragementSuffix: " Your strength inspires me.",
		breathing:           "60s pause: inhale 4, hold 7, exhale 8. Shall we continue when you're ready?",
		welcome:             "Hi! I'm Luna, your emotional support companion. I'm here to listen. How do you feel today?",
		risky: []string{
			"you must ", "you have to ", "diagnosis", "adjust dosage", "prescription", "medication",
		},
		hedge:             "you might consider ",
		disclaimer:        "Remember: this support does not replace an evaluation by a health professional.",
		disclaimerMarkers: []string{"does not replace", "health professional"},
		noEmotionsSummary: "No emotions detected",
		summaryFormat:     "Emotional summary (%d messages): %s. Dominant emotion: %s (average confidence: %.1f%%)",
	}
}
