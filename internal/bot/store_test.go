package bot

import (
	"testing"
	"time"
)

func TestStoreCreatesAndKeepsSession(t *testing.T) {
	s := NewStore(time.Minute)

	s.With("0612345678", func(sess *Session, created bool) bool {
		if !created {
			t.Fatal("first contact should create a session")
		}
		if sess.CurrentStep != StepMenu {
			t.Fatalf("new session starts at %q, want menu", sess.CurrentStep)
		}
		sess.CurrentStep = StepVragen
		return false
	})

	s.With("0612345678", func(sess *Session, created bool) bool {
		if created {
			t.Fatal("second contact should reuse the session")
		}
		if sess.CurrentStep != StepVragen {
			t.Fatalf("session step %q, want questions", sess.CurrentStep)
		}
		return false
	})

	if s.Len() != 1 {
		t.Fatalf("Len=%d, want 1", s.Len())
	}
}

func TestStoreDoneRemovesSession(t *testing.T) {
	s := NewStore(time.Minute)

	s.With("0612345678", func(sess *Session, created bool) bool {
		return true
	})

	if _, ok := s.Get("0612345678"); ok {
		t.Fatal("done session should be removed")
	}
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.With("0612345678", func(sess *Session, created bool) bool {
		sess.CurrentStep = StepVragen
		return false
	})

	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get("0612345678"); ok {
		t.Fatal("expired session still visible via Get")
	}

	s.With("0612345678", func(sess *Session, created bool) bool {
		if !created {
			t.Fatal("expired session should be replaced by a fresh one")
		}
		if sess.CurrentStep != StepMenu {
			t.Fatalf("fresh session starts at %q, want menu", sess.CurrentStep)
		}
		return false
	})
}

func TestStoreDeleteExpired(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.With("a", func(sess *Session, created bool) bool { return false })
	s.With("b", func(sess *Session, created bool) bool { return false })

	time.Sleep(30 * time.Millisecond)
	s.DeleteExpired()

	if s.Len() != 0 {
		t.Fatalf("Len=%d after sweep, want 0", s.Len())
	}
}
