package dialogue

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type failingGateway struct {
	mu    sync.Mutex
	saves int
}

func (g *failingGateway) SaveSession(context.Context, *Session) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves++
	return errors.New("store unavailable")
}

func (g *failingGateway) LoadLatest(context.Context) (*Session, error) { return nil, nil }

type fakeCompletion struct {
	reply        string
	err          error
	systemPrompt string
	turns        []Turn
}

func (c *fakeCompletion) Complete(_ context.Context, turns []Turn, systemPrompt string) (string, error) {
	c.turns = turns
	c.systemPrompt = systemPrompt
	return c.reply, c.err
}

type fakePrompt struct {
	system string
}

func (p *fakePrompt) BuildSystem(emotion.Traits, emotion.State, []string) (string, error) {
	return p.system, nil
}

func testConfig() Config {
	return Config{
		Temperature:  0.25,
		DailySeed:    7,
		RateLimit:    0,
		SummaryEvery: 1000,
		MaxMessages:  300,
		RetainTail:   100,
	}
}

func newTestOrchestrator(t *testing.T, deps Deps, cfg Config) *Orchestrator {
	t.Helper()
	o, err := NewOrchestrator(context.Background(), deps, cfg)
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}
	t.Cleanup(o.Flush)
	return o
}

func TestFreshSessionOpensWithWelcome(t *testing.T) {
	provider := templates.Spanish()
	o := newTestOrchestrator(t, Deps{Provider: provider, Now: newFakeClock().Now}, testConfig())

	history := o.History()
	if len(history) != 1 {
		t.Fatalf("expected only the welcome message, got %d", len(history))
	}
	welcome := history[0]
	if welcome.IsFromUser {
		t.Fatal("welcome must come from the assistant")
	}
	if welcome.Content != provider.Welcome() {
		t.Fatalf("unexpected welcome: %q", welcome.Content)
	}
	if welcome.DetectedEmotion == nil || *welcome.DetectedEmotion != emotion.StateHopeful {
		t.Fatalf("welcome emotion = %v, want hopeful", welcome.DetectedEmotion)
	}
	if welcome.Confidence != 1.0 || welcome.Rationale != "mensaje inicial" {
		t.Fatalf("welcome metadata = (%v, %q)", welcome.Confidence, welcome.Rationale)
	}
}

func TestRateLimitDropsRapidMessages(t *testing.T) {
	clock := newFakeClock()
	cfg := testConfig()
	cfg.RateLimit = time.Second
	o := newTestOrchestrator(t, Deps{Now: clock.Now}, cfg)

	if o.SendMessage(context.Background(), "hola") == nil {
		t.Fatal("first message must be accepted")
	}
	before := len(o.History())

	clock.Advance(200 * time.Millisecond)
	if o.SendMessage(context.Background(), "hola otra vez") != nil {
		t.Fatal("message inside the rate window must be dropped")
	}
	if len(o.History()) != before {
		t.Fatal("a dropped message must not be recorded")
	}

	clock.Advance(time.Second)
	if o.SendMessage(context.Background(), "ahora sí") == nil {
		t.Fatal("message past the rate window must be accepted")
	}
}

func TestNegativeStreakTriggersBreathing(t *testing.T) {
	provider := templates.Spanish()
	o := newTestOrchestrator(t, Deps{Provider: provider, Now: newFakeClock().Now}, testConfig())

	o.SendMessage(context.Background(), "Estoy muy ansiosa hoy")
	o.SendMessage(context.Background(), "Me siento triste")
	traitsBefore := o.Traits()

	reply := o.SendMessage(context.Background(), "Tengo mucho miedo")
	if reply == nil {
		t.Fatal("intervention turn must return a reply")
	}
	if reply.Content != provider.BreathingIntervention() {
		t.Fatalf("expected the breathing intervention verbatim, got %q", reply.Content)
	}
	if strings.Contains(reply.Content, provider.Disclaimer()) {
		t.Fatal("the intervention bypasses the safety filter")
	}
	if o.Traits() != traitsBefore {
		t.Fatal("the intervention turn must not adapt traits")
	}
}

func TestNegativeTurnsAdaptTraits(t *testing.T) {
	o := newTestOrchestrator(t, Deps{Now: newFakeClock().Now}, testConfig())

	o.SendMessage(context.Background(), "Estoy muy ansiosa hoy")
	got := o.Traits()
	if math.Abs(got.Empathy-0.85) > 1e-9 || math.Abs(got.Supportiveness-0.75) > 1e-9 {
		t.Fatalf("anxious turn should raise empathy and supportiveness by 0.05, got %+v", got)
	}
}

func TestConversationCapKeepsMostRecent(t *testing.T) {
	cfg := testConfig()
	cfg.MaxMessages = 8
	cfg.RetainTail = 4
	o := newTestOrchestrator(t, Deps{Now: newFakeClock().Now}, cfg)

	for i := 1; i <= 4; i++ {
		o.SendMessage(context.Background(), fmt.Sprintf("hola %d", i))
	}

	history := o.History()
	if len(history) != 4 {
		t.Fatalf("history = %d messages, want the retained tail of 4", len(history))
	}
	if history[0].Content != "hola 3" || !history[0].IsFromUser {
		t.Fatalf("unexpected oldest retained message: %+v", history[0])
	}
	if history[2].Content != "hola 4" || !history[2].IsFromUser {
		t.Fatalf("retained tail out of order: %+v", history[2])
	}
	if history[3].IsFromUser {
		t.Fatal("newest retained message must be the assistant reply")
	}
}

func TestSummaryAppendedAtInterval(t *testing.T) {
	cfg := testConfig()
	cfg.SummaryEvery = 5
	o := newTestOrchestrator(t, Deps{Now: newFakeClock().Now}, cfg)

	o.SendMessage(context.Background(), "Estoy triste")
	if len(o.History()) != 3 {
		t.Fatalf("history = %d messages before the interval", len(o.History()))
	}

	o.SendMessage(context.Background(), "Sigo triste por todo")
	history := o.History()
	if len(history) != 6 {
		t.Fatalf("history = %d messages, want 5 plus the appended summary", len(history))
	}
	summary := history[5]
	if summary.Rationale != "resumen" || summary.IsFromUser {
		t.Fatalf("unexpected summary message: %+v", summary)
	}
	if !strings.Contains(summary.Content, "Resumen emocional") || !strings.Contains(summary.Content, "sad=2") {
		t.Fatalf("unexpected summary content: %q", summary.Content)
	}
	if summary.DetectedEmotion == nil || *summary.DetectedEmotion != emotion.StateNeutral {
		t.Fatalf("summary emotion = %v, want neutral", summary.DetectedEmotion)
	}
}

func TestPersistenceFailureIsTolerated(t *testing.T) {
	gw := &failingGateway{}
	o := newTestOrchestrator(t, Deps{Gateway: gw, Now: newFakeClock().Now}, testConfig())

	reply := o.SendMessage(context.Background(), "hola")
	o.Flush()

	if reply == nil {
		t.Fatal("a save failure must not fail the turn")
	}
	if len(o.History()) != 3 {
		t.Fatalf("history = %d messages, want welcome plus one exchange", len(o.History()))
	}
	gw.mu.Lock()
	defer gw.mu.Unlock()
	if gw.saves < 2 {
		t.Fatalf("saves = %d, want one per mutating step", gw.saves)
	}
}

func TestCompletionErrorFallsBackToCanned(t *testing.T) {
	provider := templates.Spanish()
	completion := &fakeCompletion{err: errors.New("upstream timeout")}
	o := newTestOrchestrator(t, Deps{Provider: provider, Completion: completion, Now: newFakeClock().Now}, testConfig())

	reply := o.SendMessage(context.Background(), "Estoy triste")
	if reply == nil {
		t.Fatal("fallback turn must produce a reply")
	}
	matched := false
	for _, canned := range provider.Responses(emotion.StateSad) {
		if strings.HasPrefix(reply.Content, canned) {
			matched = true
			break
		}
	}
	if !matched {
		t.Fatalf("fallback reply must come from the canned pool, got %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "no sustituye") {
		t.Fatal("fallback reply must carry the disclaimer")
	}
}

func TestCompletionReplyPassesThroughSafetyFilter(t *testing.T) {
	completion := &fakeCompletion{reply: "Debes hablar con tu equipo sobre la medicación."}
	prompt := &fakePrompt{system: "eres luna"}
	o := newTestOrchestrator(t, Deps{Completion: completion, Prompt: prompt, Now: newFakeClock().Now}, testConfig())

	reply := o.SendMessage(context.Background(), "No sé qué hacer con mi tratamiento")
	if reply == nil {
		t.Fatal("expected a reply")
	}
	if !strings.Contains(reply.Content, "podrías considerar ") {
		t.Fatalf("risky directive not hedged: %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "no sustituye") {
		t.Fatalf("disclaimer missing: %q", reply.Content)
	}

	if completion.systemPrompt != "eres luna" {
		t.Fatalf("system prompt = %q", completion.systemPrompt)
	}
	if n := len(completion.turns); n == 0 || completion.turns[n-1].Role != "user" {
		t.Fatalf("completion turns must end with the user message: %+v", completion.turns)
	}
}

func TestRestoresPreviousSession(t *testing.T) {
	clock := newFakeClock()
	gw := NewInMemoryGateway()

	prior := NewSession(clock.Now())
	prior.Traits.Empathy = 0.9
	hopeful := emotion.StateHopeful
	prior.Messages = []Message{
		{Content: "bienvenida previa", Timestamp: clock.Now(), DetectedEmotion: &hopeful, Confidence: 1.0},
		{Content: "me siento esperanzada", IsFromUser: true, Timestamp: clock.Now(), DetectedEmotion: &hopeful, Confidence: 0.4},
		{Content: "qué bonito escuchar eso", Timestamp: clock.Now(), DetectedEmotion: &hopeful, Confidence: 0.4},
	}
	if err := gw.SaveSession(context.Background(), prior); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	o := newTestOrchestrator(t, Deps{Gateway: gw, Now: clock.Now}, testConfig())

	history := o.History()
	if len(history) != 3 {
		t.Fatalf("restored history = %d messages, want 3 and no second welcome", len(history))
	}
	if history[0].Content != "bienvenida previa" {
		t.Fatalf("restored history out of order: %q", history[0].Content)
	}
	if got := o.Traits().Empathy; got != 0.9 {
		t.Fatalf("restored empathy = %v, want 0.9", got)
	}
	if got := o.AdaptationLevel(); got != 1.0 {
		t.Fatalf("adaptation level after restore = %v, want 1.0", got)
	}
}

func TestAdaptationLevelTracksPositiveShare(t *testing.T) {
	o := newTestOrchestrator(t, Deps{Now: newFakeClock().Now}, testConfig())

	o.SendMessage(context.Background(), "Estoy feliz")
	o.SendMessage(context.Background(), "Tengo mucha esperanza")
	o.SendMessage(context.Background(), "hola")

	if got := o.AdaptationLevel(); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Fatalf("adaptation level = %v, want 2/3", got)
	}

	a := o.Analytics()
	if a.TotalMessages != 7 {
		t.Fatalf("analytics total = %d, want 7", a.TotalMessages)
	}
	if a.EmotionDistribution[emotion.StateExcited] != 1 || a.EmotionDistribution[emotion.StateHopeful] != 1 {
		t.Fatalf("unexpected distribution: %+v", a.EmotionDistribution)
	}
}
