package repository

import "testing"

func TestAnswerTextCache(t *testing.T) {
	c := NewAnswerTextCache()
	c.Put(1, "A1", "en", 0, "Yes")
	c.Put(1, "A1", "de", 0, "Ja")
	c.Put(2, "A1", "en", 0, "Other")

	if text, ok := c.Get(1, "A1", "de", 0); !ok || text != "Ja" {
		t.Fatalf("Get: got %q %v", text, ok)
	}
	if _, ok := c.Get(1, "A1", "en", 1); ok {
		t.Fatalf("Get: scale 1 should miss")
	}

	c.InvalidateQuestion(1)
	if c.Len() != 1 {
		t.Fatalf("InvalidateQuestion: got %d entries, want 1", c.Len())
	}
	if _, ok := c.Get(2, "A1", "en", 0); !ok {
		t.Fatalf("InvalidateQuestion removed another question")
	}

	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("Reset: got %d entries", c.Len())
	}
}
