package mood

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repo is the journal's storage contract. ListEntries returns newest first.
type Repo interface {
	AddEntry(ctx context.Context, entry Entry) error
	ListEntries(ctx context.Context) ([]Entry, error)
}

// Journal records mood entries and derives correlations and suggestions.
type Journal struct {
	repo    Repo
	advisor Advisor
	now     func() time.Time
}

// NewJournal returns a journal over repo. A nil advisor defaults to the
// score-band advisor.
func NewJournal(repo Repo, advisor Advisor) *Journal {
	if advisor == nil {
		advisor = BandAdvisor{}
	}
	return &Journal{repo: repo, advisor: advisor, now: time.Now}
}

// Record validates and stores one entry, filling ID and date when absent.
func (j *Journal) Record(ctx context.Context, entry Entry) (Entry, error) {
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Date.IsZero() {
		entry.Date = j.now()
	}
	if err := j.repo.AddEntry(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// History returns all entries, newest first.
func (j *Journal) History(ctx context.Context) ([]Entry, error) {
	return j.repo.ListEntries(ctx)
}

// Correlations computes the lifestyle correlations over the full history.
func (j *Journal) Correlations(ctx context.Context) ([]Correlation, error) {
	entries, err := j.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return Correlations(entries), nil
}

// Suggestion returns the mindfulness suggestion for one entry.
func (j *Journal) Suggestion(entry Entry) string {
	return j.advisor.Suggest(entry)
}

// InMemoryRepo is a thread-safe Repo for tests and store-less runs.
type InMemoryRepo struct {
	mu      sync.Mutex
	entries []Entry
}

// NewInMemoryRepo returns an empty in-memory repo.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{}
}

func (r *InMemoryRepo) AddEntry(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *InMemoryRepo) ListEntries(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
