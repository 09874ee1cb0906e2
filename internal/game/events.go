package game

// Listener receives session notifications. Callbacks run synchronously on
// the caller's goroutine; nil fields are skipped.
type Listener struct {
	PendingWordChanged  func(word string)
	PendingScoreChanged func(score PendingScore)
	TotalScoreChanged   func(total int)
	WordFound           func(word string, points int)
	WordRejected        func(word string)
}

// Subscribe registers l and returns a function that removes it.
func (s *Session) Subscribe(l Listener) (unsubscribe func()) {
	entry := &l
	s.listeners = append(s.listeners, entry)

	return func() {
		for i, existing := range s.listeners {
			if existing == entry {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// emit calls fn for a snapshot of the registered listeners.
func (s *Session) emit(fn func(l *Listener)) {
	for _, l := range append([]*Listener(nil), s.listeners...) {
		fn(l)
	}
}

func (s *Session) emitPending() {
	word := s.path.Word()
	score := s.path.Score()
	s.emit(func(l *Listener) {
		if l.PendingWordChanged != nil {
			l.PendingWordChanged(word)
		}
	})
	s.emit(func(l *Listener) {
		if l.PendingScoreChanged != nil {
			l.PendingScoreChanged(score)
		}
	})
}

func (s *Session) emitTotal() {
	total := s.total
	s.emit(func(l *Listener) {
		if l.TotalScoreChanged != nil {
			l.TotalScoreChanged(total)
		}
	})
}

func (s *Session) emitWordFound(word string, points int) {
	s.emit(func(l *Listener) {
		if l.WordFound != nil {
			l.WordFound(word, points)
		}
	})
}

func (s *Session) emitWordRejected(word string) {
	s.emit(func(l *Listener) {
		if l.WordRejected != nil {
			l.WordRejected(word)
		}
	})
}
