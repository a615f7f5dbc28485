package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrWrongMode = errors.New("taps are only accepted in interval mode")
)

// Session is a snapshot of one fretboard or keyboard instance.
type Session struct {
	Id        string
	Mode      model.ViewMode
	Selection model.Selection
}

// Store keeps every open instance's selection. Each instance owns its own
// state, so taps on one never touch another.
type Store struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

func (s *Store) Create(mode model.ViewMode) (Session, error) {
	if !mode.Valid() {
		return Session{}, errors.Errorf("unknown view mode %q", mode)
	}
	sess := Session{Id: uuid.New().String(), Mode: mode}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Id] = sess
	return sess, nil
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, errors.Wrap(ErrNotFound, id)
	}
	return sess, nil
}

func (s *Store) Tap(id string, p model.Pitch) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, errors.Wrap(ErrNotFound, id)
	}
	if sess.Mode != model.ViewInterval {
		return sess, errors.Wrapf(ErrWrongMode, "session is in %s mode", sess.Mode)
	}
	sess.Selection = interval.ApplyTap(sess.Selection, p)
	s.sessions[id] = sess
	return sess, nil
}

// SetMode switches the view mode. Leaving interval mode clears the
// selection.
func (s *Store) SetMode(id string, mode model.ViewMode) (Session, error) {
	if !mode.Valid() {
		return Session{}, errors.Errorf("unknown view mode %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, errors.Wrap(ErrNotFound, id)
	}
	if sess.Mode == model.ViewInterval && mode != model.ViewInterval {
		sess.Selection = model.Selection{}
	}
	sess.Mode = mode
	s.sessions[id] = sess
	return sess, nil
}

func (s *Store) Reset(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, errors.Wrap(ErrNotFound, id)
	}
	sess.Selection = model.Selection{}
	s.sessions[id] = sess
	return sess, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.Wrap(ErrNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// List returns every open session, ordered by id.
func (s *Store) List() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Session, 0, len(s.sessions))
	for _, id := range util.GetKeys(s.sessions) {
		res = append(res, s.sessions[id])
	}
	return res
}
