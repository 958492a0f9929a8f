package dialogue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Minomoreno86/EMOCIONES/internal/emotion"
	"github.com/Minomoreno86/EMOCIONES/internal/templates"
)

const (
	// streakWindow is how many consecutive negative user emotions trigger the
	// breathing intervention; patternWindow bounds the adaptation statistic.
	streakWindow  = 3
	patternWindow = 10

	// historyLimit caps the turns handed to a remote completion client.
	historyLimit = 10
)

// SystemPromptBuilder assembles the system prompt for the remote path.
type SystemPromptBuilder interface {
	BuildSystem(traits emotion.Traits, state emotion.State, recalled []string) (string, error)
}

// Recaller is the optional semantic-recall collaborator.
type Recaller interface {
	Remember(ctx context.Context, sessionID uuid.UUID, message Message) error
	Retrieve(ctx context.Context, sessionID uuid.UUID, query string) ([]string, error)
}

// Deps bundles the orchestrator's collaborators. Analyzer, Adapter, Provider,
// Gateway, Logger, and Now have working defaults; Completion, Prompt, and
// Recall are optional.
type Deps struct {
	Analyzer   emotion.Analyzer
	Adapter    emotion.Adapter
	Provider   templates.Provider
	Gateway    PersistenceGateway
	Completion CompletionClient
	Prompt     SystemPromptBuilder
	Recall     Recaller
	Logger     *slog.Logger
	Now        func() time.Time
}

// Orchestrator sequences one conversation turn: rate limiting, classification,
// streak intervention, personality adaptation, response selection, safety
// filtering, history maintenance, and persistence hand-off. Turns are
// serialized; the orchestrator is safe for concurrent callers but processes
// one turn at a time.
type Orchestrator struct {
	mu sync.Mutex

	analyzer   emotion.Analyzer
	adapter    emotion.Adapter
	provider   templates.Provider
	selector   *Selector
	safety     *SafetyFilter
	summarizer *Summarizer
	gateway    PersistenceGateway
	completion CompletionClient
	prompt     SystemPromptBuilder
	recall     Recaller
	logger     *slog.Logger
	now        func() time.Time
	cfg        Config

	session         *Session
	rng             *SeededRand
	pattern         []emotion.State
	lastUserAt      time.Time
	turns           int
	adaptationLevel float64

	persistWG sync.WaitGroup
}

// NewOrchestrator validates cfg, fills defaulted deps, and restores the most
// recent session from the gateway. A load failure is logged and a fresh
// session is started; a fresh session opens with the welcome message.
func NewOrchestrator(ctx context.Context, deps Deps, cfg Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Analyzer == nil {
		deps.Analyzer = emotion.NewLexiconAnalyzer(nil)
	}
	if deps.Adapter == nil {
		deps.Adapter = emotion.NewClampedAdapter()
	}
	if deps.Provider == nil {
		deps.Provider = templates.Spanish()
	}
	if deps.Gateway == nil {
		deps.Gateway = NewInMemoryGateway()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	o := &Orchestrator{
		analyzer:   deps.Analyzer,
		adapter:    deps.Adapter,
		provider:   deps.Provider,
		selector:   NewSelector(deps.Provider),
		safety:     NewSafetyFilter(deps.Provider),
		summarizer: NewSummarizer(deps.Provider),
		gateway:    deps.Gateway,
		completion: deps.Completion,
		prompt:     deps.Prompt,
		recall:     deps.Recall,
		logger:     deps.Logger,
		now:        deps.Now,
		cfg:        cfg,
		rng:        NewSeededRand(cfg.DailySeed),
	}
	o.restore(ctx)
	return o, nil
}

func (o *Orchestrator) restore(ctx context.Context) {
	loaded, err := o.gateway.LoadLatest(ctx)
	if err != nil {
		o.logger.Error("failed to load previous session, starting fresh", "error", err)
	}
	if loaded != nil {
		o.session = loaded
		for _, m := range loaded.Messages {
			if m.IsFromUser && m.DetectedEmotion != nil {
				o.pushPattern(*m.DetectedEmotion)
			}
		}
		o.updateAdaptationLevel()
		return
	}

	now := o.now()
	o.session = NewSession(now)
	hopeful := emotion.StateHopeful
	o.session.Messages = append(o.session.Messages, Message{
		ID:              uuid.New(),
		Content:         o.provider.Welcome(),
		IsFromUser:      false,
		Timestamp:       now,
		DetectedEmotion: &hopeful,
		Confidence:      1.0,
		Rationale:       "mensaje inicial",
	})
	o.persist()
}

// SendMessage processes one user turn and returns the appended assistant
// message. A rate-limited turn is a silent no-op and returns nil: nothing is
// recorded and no error is surfaced.
func (o *Orchestrator) SendMessage(ctx context.Context, text string) *Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.now()
	if !o.lastUserAt.IsZero() && now.Sub(o.lastUserAt) < o.cfg.RateLimit {
		o.logger.Debug("user message rate limited")
		return nil
	}
	o.lastUserAt = now

	res := o.analyzer.Detect(text)
	state := res.State
	userMsg := Message{
		ID:              uuid.New(),
		Content:         text,
		IsFromUser:      true,
		Timestamp:       now,
		DetectedEmotion: &state,
		Confidence:      res.Confidence,
		Rationale:       res.Rationale,
	}
	o.session.Messages = append(o.session.Messages, userMsg)
	o.pushPattern(state)
	o.remember(ctx, userMsg)
	o.logger.Debug("emotion detected", "state", state, "confidence", res.Confidence)

	// A negative streak short-circuits the turn: no adaptation, no selector,
	// no safety filter, just the brief intervention.
	if o.negativeStreak() {
		reply := o.appendAssistant(o.provider.BreathingIntervention(), res, now)
		o.turns++
		o.updateAdaptationLevel()
		o.enforceCap()
		o.persist()
		o.logger.Info("negative streak intervention triggered")
		return reply
	}

	o.adapter.Adapt(state, &o.session.Traits)

	text = o.respond(ctx, state, userMsg.Content)
	text = o.safety.Filter(text)
	reply := o.appendAssistant(text, res, now)

	o.turns++
	o.updateAdaptationLevel()
	o.enforceCap()
	o.maybeSummarize(now)
	o.persist()
	return reply
}

// respond tries the remote completion client when configured and falls back
// to the canned selector on any failure.
func (o *Orchestrator) respond(ctx context.Context, state emotion.State, userText string) string {
	if o.completion != nil {
		reply, err := o.completeRemote(ctx, state, userText)
		if err == nil {
			return reply
		}
		o.logger.Warn("remote completion failed, falling back to canned response", "error", err)
	}
	picked := o.selector.Select(state, o.rng)
	return o.selector.Personalize(picked, state, o.session.Traits)
}

func (o *Orchestrator) completeRemote(ctx context.Context, state emotion.State, userText string) (string, error) {
	var recalled []string
	if o.recall != nil {
		var err error
		recalled, err = o.recall.Retrieve(ctx, o.session.ID, userText)
		if err != nil {
			o.logger.Warn("memory recall failed", "error", err)
			recalled = nil
		}
	}

	systemPrompt := ""
	if o.prompt != nil {
		var err error
		systemPrompt, err = o.prompt.BuildSystem(o.session.Traits, state, recalled)
		if err != nil {
			return "", err
		}
	}

	msgs := o.session.Messages
	if len(msgs) > historyLimit {
		msgs = msgs[len(msgs)-historyLimit:]
	}
	turns := make([]Turn, 0, len(msgs))
	for _, m := range msgs {
		role := "assistant"
		if m.IsFromUser {
			role = "user"
		}
		turns = append(turns, Turn{Role: role, Content: m.Content})
	}
	return o.completion.Complete(ctx, turns, systemPrompt)
}

func (o *Orchestrator) appendAssistant(content string, res emotion.Result, now time.Time) *Message {
	state := res.State
	msg := Message{
		ID:              uuid.New(),
		Content:         content,
		IsFromUser:      false,
		Timestamp:       now,
		DetectedEmotion: &state,
		Confidence:      res.Confidence,
		Rationale:       res.Rationale,
	}
	o.session.Messages = append(o.session.Messages, msg)
	return &msg
}

func (o *Orchestrator) pushPattern(state emotion.State) {
	o.pattern = append(o.pattern, state)
	if len(o.pattern) > patternWindow {
		o.pattern = o.pattern[len(o.pattern)-patternWindow:]
	}
}

func (o *Orchestrator) negativeStreak() bool {
	if len(o.pattern) < streakWindow {
		return false
	}
	for _, s := range o.pattern[len(o.pattern)-streakWindow:] {
		if s != emotion.StateAnxious && s != emotion.StateSad {
			return false
		}
	}
	return true
}

func (o *Orchestrator) updateAdaptationLevel() {
	if len(o.pattern) == 0 {
		o.adaptationLevel = 0
		return
	}
	positive := 0
	for _, s := range o.pattern {
		if emotion.Positive[s] {
			positive++
		}
	}
	o.adaptationLevel = float64(positive) / float64(len(o.pattern))
}

func (o *Orchestrator) enforceCap() {
	if len(o.session.Messages) <= o.cfg.MaxMessages {
		return
	}
	removed := len(o.session.Messages) - o.cfg.RetainTail
	o.session.Messages = append([]Message(nil), o.session.Messages[removed:]...)
	o.logger.Info("conversation capped", "removed", removed, "kept", o.cfg.RetainTail)
}

func (o *Orchestrator) maybeSummarize(now time.Time) {
	if len(o.session.Messages)%o.cfg.SummaryEvery != 0 {
		return
	}
	summary := o.summarizer.Summarize(o.session.Messages)
	neutral := emotion.StateNeutral
	o.session.Messages = append(o.session.Messages, Message{
		ID:              uuid.New(),
		Content:         summary,
		IsFromUser:      false,
		Timestamp:       now,
		DetectedEmotion: &neutral,
		Confidence:      1.0,
		Rationale:       "resumen",
	})
	o.logger.Info("conversation summarized", "messages", len(o.session.Messages))
}

// persist hands a snapshot to the gateway without awaiting it; a failure is
// logged and never rolls back in-memory state.
func (o *Orchestrator) persist() {
	snapshot := o.session.Snapshot()
	o.persistWG.Add(1)
	go func() {
		defer o.persistWG.Done()
		if err := o.gateway.SaveSession(context.Background(), snapshot); err != nil {
			o.logger.Error("failed to save session", "error", err)
		}
	}()
}

// remember indexes a user message for semantic recall, best effort.
func (o *Orchestrator) remember(ctx context.Context, msg Message) {
	if o.recall == nil {
		return
	}
	if err := o.recall.Remember(ctx, o.session.ID, msg); err != nil {
		o.logger.Warn("failed to index message for recall", "error", err)
	}
}

// Flush waits for in-flight persistence writes. Call before shutdown.
func (o *Orchestrator) Flush() {
	o.persistWG.Wait()
}

// History returns a copy of the conversation log.
func (o *Orchestrator) History() []Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Message, len(o.session.Messages))
	copy(out, o.session.Messages)
	return out
}

// Traits returns the current personality vector.
func (o *Orchestrator) Traits() emotion.Traits {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session.Traits
}

// AdaptationLevel is the fraction of the last ten user emotions that are
// positive.
func (o *Orchestrator) AdaptationLevel() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.adaptationLevel
}

// Analytics computes a rollup of the current conversation.
func (o *Orchestrator) Analytics() Analytics {
	o.mu.Lock()
	defer o.mu.Unlock()

	dist := make(map[emotion.State]int)
	confidenceSum := 0.0
	for _, m := range o.session.Messages {
		if m.IsFromUser && m.DetectedEmotion != nil {
			dist[*m.DetectedEmotion]++
		}
		confidenceSum += m.Confidence
	}

	var duration time.Duration
	if n := len(o.session.Messages); n > 1 {
		duration = o.session.Messages[n-1].Timestamp.Sub(o.session.Messages[0].Timestamp)
	}

	avg := 0.0
	if len(o.session.Messages) > 0 {
		avg = confidenceSum / float64(len(o.session.Messages))
	}
	return Analytics{
		TotalMessages:        len(o.session.Messages),
		EmotionDistribution:  dist,
		AdaptationLevel:      o.adaptationLevel,
		AverageConfidence:    avg,
		ConversationDuration: duration,
	}
}
