package scrollfx

import (
	"errors"
	"fmt"
)

// ErrFieldOwned is returned when a section's timeline writes a field that
// another registered section already writes.
var ErrFieldOwned = errors.New("field already owned by another section")

// ErrDuplicateSection is returned when a section name is registered twice.
var ErrDuplicateSection = errors.New("duplicate section")

// Section is a scroll-linked timeline: a named page region whose trigger
// range is mapped onto the timeline's progress. Sections are defined once at
// page setup and not mutated after registration.
type Section struct {
	Name     string
	Trigger  Trigger
	Scrub    float64
	Timeline *Timeline

	scrub    Scrubber
	raw      float64
	resolved bool
}

// NewSection creates a section. A nil timeline makes a progress-only section,
// useful for consumers that read Progress directly.
func NewSection(name string, trigger Trigger, scrub float64, tl *Timeline) *Section {
	if tl == nil {
		tl = NewTimeline(nil)
	}
	return &Section{
		Name:     name,
		Trigger:  trigger,
		Scrub:    scrub,
		Timeline: tl,
		scrub:    Scrubber{Lag: scrub},
	}
}

// Progress returns the scrubbed progress in [0, 1].
func (s *Section) Progress() float64 {
	return s.scrub.Value()
}

// RawProgress returns the unsmoothed progress computed on the last update.
func (s *Section) RawProgress() float64 {
	return s.raw
}

// Resolved reports whether the trigger target was found on the last update.
func (s *Section) Resolved() bool {
	return s.resolved
}

// update recomputes progress and seeks the timeline. A trigger whose target
// is missing from the layout leaves the section at rest.
func (s *Section) update(layout *Layout, scrollY, viewportH, dt float64) {
	box, ok := layout.Box(s.Trigger.Target, viewportH)
	s.resolved = ok
	if !ok {
		return
	}
	s.raw = s.Trigger.Progress(box, scrollY, viewportH)
	s.Timeline.Seek(s.scrub.Update(s.raw, dt))
}

// Sequencer drives every registered section from the page scroll offset.
// Field ownership is partitioned: no two sections may write the same field.
type Sequencer struct {
	layout   *Layout
	sections []*Section
	owners   map[*float64]string
}

// NewSequencer creates a sequencer resolving triggers against layout.
func NewSequencer(layout *Layout) *Sequencer {
	return &Sequencer{
		layout: layout,
		owners: make(map[*float64]string),
	}
}

// Add registers a section. It fails without side effects if the name is
// taken or if the timeline writes a field owned by another section.
func (q *Sequencer) Add(s *Section) error {
	for _, existing := range q.sections {
		if existing.Name == s.Name {
			return fmt.Errorf("add section %q: %w", s.Name, ErrDuplicateSection)
		}
	}
	fields := s.Timeline.fieldsWritten()
	for i, f := range fields {
		if owner, ok := q.owners[f]; ok {
			tr := s.Timeline.tracks[i]
			return fmt.Errorf("add section %q: %s of %q written by %q: %w",
				s.Name, tr.Prop, tr.Node.Name, owner, ErrFieldOwned)
		}
	}
	for _, f := range fields {
		q.owners[f] = s.Name
	}
	q.sections = append(q.sections, s)
	return nil
}

// Update recomputes every section's progress at scroll offset scrollY and
// applies its timeline. dt is the frame time used for scrub smoothing.
func (q *Sequencer) Update(scrollY, viewportH, dt float64) {
	for _, s := range q.sections {
		s.update(q.layout, scrollY, viewportH, dt)
	}
}

// Sections returns the registered sections. The slice MUST NOT be mutated.
func (q *Sequencer) Sections() []*Section {
	return q.sections
}

// Len returns the number of registered sections.
func (q *Sequencer) Len() int {
	return len(q.sections)
}

// Section returns the section with the given name, or nil.
func (q *Sequencer) Section(name string) *Section {
	for _, s := range q.sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Owner returns the section writing prop p of node n, if any.
func (q *Sequencer) Owner(n *Node, p Prop) (string, bool) {
	owner, ok := q.owners[n.fields(p)[0]]
	return owner, ok
}

// Dispose unregisters every section.
func (q *Sequencer) Dispose() {
	q.sections = nil
	q.owners = make(map[*float64]string)
}
