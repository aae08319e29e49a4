// Package pipeline runs loaded emails through the four triage stages and
// collects one result record per email, preserving the discovery order.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/felo/inbox-triage/internal/parser"
	"github.com/felo/inbox-triage/internal/scanner"
	"github.com/felo/inbox-triage/internal/triage"
)

// Result is the triage outcome for one email. The field names and the
// Priority/Category spellings are part of the output contract consumed by
// downstream tooling and must not change.
type Result struct {
	Identifier string          `json:"identifier"`
	Subject    string          `json:"subject"`
	Sender     string          `json:"sender"`
	Priority   triage.Priority `json:"priority"`
	Summary    string          `json:"summary"`
	DraftReply string          `json:"draft_reply"`
	Category   triage.Category `json:"category"`
}

// Stats summarizes one pipeline run.
type Stats struct {
	TotalFound  int
	Processed   int
	Failed      int
	FailedFiles []string
	ByPriority  map[triage.Priority]int
}

// Pipeline wires the four classification stages together. All stages are
// pure functions of their input, so a Pipeline is safe for concurrent use.
type Pipeline struct {
	prioritizer *triage.Prioritizer
	summarizer  *triage.Summarizer
	drafter     *triage.Drafter
	categorizer *triage.Categorizer
	logger      *zap.Logger
	workers     int
}

// SummarySentences is the number of leading sentences kept in a summary.
const SummarySentences = 2

// New creates a pipeline from a rule set. A nil logger disables logging.
func New(rules *triage.Rules, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		prioritizer: triage.NewPrioritizer(rules.Priority),
		summarizer:  triage.NewSummarizer(SummarySentences),
		drafter:     triage.NewDrafter(rules.Replies, rules.ReplyFallback),
		categorizer: triage.NewCategorizer(rules.Categories),
		logger:      logger,
		workers:     runtime.NumCPU() * 2,
	}
}

// WithWorkers sets the number of concurrent workers
func (p *Pipeline) WithWorkers(workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	p.workers = workers
	return p
}

// Process runs one email through all four stages. It cannot fail: every
// stage is total over its input, including empty subjects, senders, and
// bodies.
func (p *Pipeline) Process(email *parser.Email) Result {
	return Result{
		Identifier: email.Identifier,
		Subject:    email.Subject,
		Sender:     email.Sender,
		Priority:   p.prioritizer.Classify(email.Subject, email.Body),
		Summary:    p.summarizer.Summarize(email.Body),
		DraftReply: p.drafter.Draft(email.Subject, email.Body),
		Category:   p.categorizer.Categorize(email.Sender),
	}
}

// ProcessAll processes emails independently and returns one result per
// email in the same order.
func (p *Pipeline) ProcessAll(emails []*parser.Email) []Result {
	results := make([]Result, len(emails))
	p.forEach(len(emails), func(i int) {
		results[i] = p.Process(emails[i])
	})
	return results
}

// Run scans root for email files, loads each one, and processes the loaded
// emails. Files that fail to load are logged and omitted from the results;
// they never abort the run. Results keep the scan order regardless of how
// many workers are processing.
func (p *Pipeline) Run(root string) ([]Result, *Stats, error) {
	files, err := scanner.NewScanner(root).Scan()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan for files: %w", err)
	}

	stats := &Stats{
		TotalFound: len(files),
		ByPriority: make(map[triage.Priority]int),
	}

	p.logger.Info("starting triage run",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("workers", p.workers))

	// Slots are indexed by scan position; failed loads leave a nil slot so
	// the surviving results stay in order after compaction.
	slots := make([]*Result, len(files))

	var mu sync.Mutex
	p.forEach(len(files), func(i int) {
		email, err := parser.LoadFile(root, files[i])
		if err != nil {
			p.logger.Warn("skipping unreadable email",
				zap.String("file", files[i]),
				zap.Error(err))
			mu.Lock()
			stats.Failed++
			stats.FailedFiles = append(stats.FailedFiles, files[i])
			mu.Unlock()
			return
		}
		res := p.Process(email)
		slots[i] = &res
	})

	results := make([]Result, 0, len(files))
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		results = append(results, *slot)
		stats.Processed++
		stats.ByPriority[slot.Priority]++
	}

	p.logger.Info("triage run complete",
		zap.Int("processed", stats.Processed),
		zap.Int("failed", stats.Failed))

	return results, stats, nil
}

// forEach invokes fn for every index in [0, n) using the configured worker
// pool. With one worker this degenerates to a plain sequential loop.
func (p *Pipeline) forEach(n int, fn func(i int)) {
	if p.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	indexChan := make(chan int, n)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indexChan <- i
	}
	close(indexChan)

	wg.Wait()
}
