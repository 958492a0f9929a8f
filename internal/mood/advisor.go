package mood

// Advisor maps a journal entry to a mindfulness suggestion.
type Advisor interface {
	Suggest(e Entry) string
}

// BandAdvisor suggests a practice per score band.
type BandAdvisor struct{}

func (BandAdvisor) Suggest(e Entry) string {
	switch {
	case e.Score == 1:
		return "Considera una sesión de respiración profunda de 10 minutos"
	case e.Score == 2:
		return "Te sugiero un ejercicio de grounding de 5 minutos"
	case e.Score == 3:
		return "Una breve meditación de 5 minutos puede ayudarte a mantener el equilibrio"
	case e.Score == 4:
		return "Una sesión de visualización positiva puede potenciar tu bienestar"
	case e.Score == 5:
		return "¡Excelente! Mantén esta energía con una sesión de gratitud"
	default:
		return "Considera una pausa consciente de 3 minutos"
	}
}
