package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
)

func TestBuildSystemIncludesTraitsAndState(t *testing.T) {
	b := NewBuilder()
	b.nowFunc = func() time.Time {
		return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	}

	got, err := b.BuildSystem(emotion.DefaultTraits(), emotion.StateAnxious, nil)
	if err != nil {
		t.Fatalf("BuildSystem: %v", err)
	}

	for _, want := range []string{
		"Eres Luna",
		"Empatía: 80%",
		"Apoyo: 70%",
		"Intuición: 60%",
		"Esperanza: 90%",
		"Emoción de la usuaria: anxious",
		"2025-03-10T09:00:00Z",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Recuerdos relevantes") {
		t.Error("memory section must be omitted when nothing was recalled")
	}
}

func TestBuildSystemListsRecalledMemories(t *testing.T) {
	b := NewBuilder()

	got, err := b.BuildSystem(emotion.DefaultTraits(), emotion.StateSad, []string{
		"la transferencia es el jueves",
		"su hermana la acompaña a las citas",
	})
	if err != nil {
		t.Fatalf("BuildSystem: %v", err)
	}
	if !strings.Contains(got, "Recuerdos relevantes") {
		t.Fatalf("memory section missing:\n%s", got)
	}
	if !strings.Contains(got, "- la transferencia es el jueves") {
		t.Fatalf("recalled item missing:\n%s", got)
	}
}
