package dictionary

import "strings"

// Store holds the base dictionary, the user-learned overlay and the
// care-label dictionary. The overlay is only mutated through Learn, between
// translation passes; Snapshot hands out fresh copies so a running pass never
// observes a mutation.
type Store struct {
	base    Dictionary
	learned Dictionary
	care    Dictionary
}

// NewStore creates a store over the built-in base dictionary.
func NewStore(learned, care Dictionary) *Store {
	if learned == nil {
		learned = make(Dictionary)
	}
	if care == nil {
		care = make(Dictionary)
	}
	return &Store{
		base:    Base(),
		learned: learned,
		care:    care,
	}
}

// Effective returns base merged with the learned overlay. Learned entries win
// on key collision so user corrections take precedence.
func (s *Store) Effective() Dictionary {
	out := s.base.Clone()
	for k, v := range s.learned {
		out[k] = v
	}
	return out
}

// Snapshot returns the read-only dictionary state for one translation pass.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		General: s.Effective(),
		Care:    s.care.Clone(),
	}
}

// Learn inserts or overwrites a term in the learned overlay.
func (s *Store) Learn(term, translation string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return ErrInvalidTerm
	}
	s.learned[term] = translation
	return nil
}

// Learned returns the learned overlay for persistence.
func (s *Store) Learned() Dictionary {
	return s.learned.Clone()
}

// LearnedCount reports how many terms have been learned so far.
func (s *Store) LearnedCount() int {
	return len(s.learned)
}
