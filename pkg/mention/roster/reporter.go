// ABOUTME: Attachment reporters: JSON lines to a writer, eventbus fan-out, and a tee
// ABOUTME: Reporting is fire-and-forget; write failures are logged, never returned

package roster

import (
	"io"
	"slices"
	"sync"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/pi-mention-go/internal/eventbus"
	pilog "github.com/mauromedda/pi-mention-go/internal/log"
	"github.com/mauromedda/pi-mention-go/pkg/mention"
)

// JSONLines writes one {"seq":N,"attachments":[...]} object per report.
type JSONLines struct {
	mu  sync.Mutex
	w   io.Writer
	seq int
}

// NewJSONLines returns a reporter writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{w: w}
}

// Report implements mention.AttachmentReporter.
func (j *JSONLines) Report(attachments []mention.Candidate) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq++
	line, err := easyjson.Marshal(report{Seq: j.seq, Attachments: toEntries(attachments)})
	if err != nil {
		pilog.Warn("roster: encode report %d: %v", j.seq, err)
		return
	}
	line = append(line, '\n')
	if _, err := j.w.Write(line); err != nil {
		pilog.Warn("roster: write report %d: %v", j.seq, err)
	}
}

// Publisher publishes every report on a bus so several listeners can follow
// the attachment set.
type Publisher struct {
	bus *eventbus.Bus[[]mention.Candidate]
}

// NewPublisher returns a reporter backed by bus.
func NewPublisher(bus *eventbus.Bus[[]mention.Candidate]) *Publisher {
	return &Publisher{bus: bus}
}

// Report implements mention.AttachmentReporter. Subscribers share one copy
// detached from the caller's slice.
func (p *Publisher) Report(attachments []mention.Candidate) {
	snapshot := slices.Clone(attachments)
	p.bus.Publish(snapshot)
}

// Tee forwards each report to every non-nil reporter in order.
func Tee(reporters ...mention.AttachmentReporter) mention.AttachmentReporter {
	return mention.ReporterFunc(func(attachments []mention.Candidate) {
		for _, r := range reporters {
			if r != nil {
				r.Report(slices.Clone(attachments))
			}
		}
	})
}
