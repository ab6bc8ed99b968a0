package usecase

import (
	"log"
	"sync"

	"precad_service/internal/domain/entities"
)

// FormEvent identifies a lifecycle moment of an open editing session.
type FormEvent string

const (
	EventRefreshed  FormEvent = "refreshed"
	EventBeforeSave FormEvent = "before_save"
)

// FormObserver reacts to session lifecycle events. Observers may mutate
// the intake they receive.
type FormObserver interface {
	Notify(event FormEvent, intake *entities.Intake)
}

// FormSession is the in-memory editing session for one intake. It holds
// the working copy of the record and notifies subscribed observers on
// refresh and immediately before each persist, so cross-cutting rules
// attach as observers instead of patching the mutation paths.
type FormSession struct {
	mu        sync.Mutex
	intake    entities.Intake
	observers []FormObserver
}

func NewFormSession(intake entities.Intake) *FormSession {
	return &FormSession{intake: intake}
}

// Subscribe registers an observer for subsequent events.
func (s *FormSession) Subscribe(o FormObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Intake returns a copy of the current working record.
func (s *FormSession) Intake() entities.Intake {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intake
}

// Update applies a mutation to the working record under the session
// lock.
func (s *FormSession) Update(mutate func(*entities.Intake)) entities.Intake {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.intake)
	return s.intake
}

// Refresh replaces the working copy with freshly loaded state and
// emits EventRefreshed so observers can repair it.
func (s *FormSession) Refresh(latest entities.Intake) entities.Intake {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intake = latest
	s.emit(EventRefreshed)
	return s.intake
}

// BeforeSave emits EventBeforeSave and returns the record that must be
// handed to persistence.
func (s *FormSession) BeforeSave() entities.Intake {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(EventBeforeSave)
	return s.intake
}

func (s *FormSession) emit(event FormEvent) {
	for _, o := range s.observers {
		o.Notify(event, &s.intake)
	}
}

// LinkGuard keeps the intake's entity link fields from being lost while
// a session is open. Once a link value has been observed it is treated
// as known-good: a refresh that comes back with the field empty gets it
// restored, and every save goes out with the known-good values forced
// in.
type LinkGuard struct {
	mu    sync.Mutex
	known map[string]string
}

// InstallLinkGuard attaches a guard to the session and seeds it with
// the links already present on the working record.
func InstallLinkGuard(session *FormSession) *LinkGuard {
	g := &LinkGuard{known: map[string]string{}}
	g.remember(session.Intake())
	session.Subscribe(g)
	return g
}

func (g *LinkGuard) Notify(event FormEvent, intake *entities.Intake) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch event {
	case EventRefreshed:
		g.restore(intake, false)
		g.rememberLocked(*intake)
	case EventBeforeSave:
		g.rememberLocked(*intake)
		g.restore(intake, true)
	}
}

// Known returns the guarded value for a link field, if any.
func (g *LinkGuard) Known(field string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.known[field]
	return v, ok
}

func (g *LinkGuard) remember(intake entities.Intake) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rememberLocked(intake)
}

func (g *LinkGuard) rememberLocked(intake entities.Intake) {
	for field, value := range linkFields(&intake) {
		if *value != "" {
			g.known[field] = *value
		}
	}
}

// restore writes known-good values back. With force=false only empty
// fields are repaired; with force=true the known value always wins.
func (g *LinkGuard) restore(intake *entities.Intake, force bool) {
	for field, value := range linkFields(intake) {
		known, ok := g.known[field]
		if !ok {
			continue
		}
		if *value == known {
			continue
		}
		if *value == "" || force {
			log.Printf("[linkguard][usecase] restoring %s=%q (was %q)", field, known, *value)
			*value = known
		}
	}
}

func linkFields(intake *entities.Intake) map[string]*string {
	return map[string]*string{
		"customer_link": &intake.CustomerLink,
		"student_link":  &intake.StudentLink,
		"gestante_link": &intake.GestanteLink,
		"crianca_link":  &intake.CriancaLink,
	}
}
