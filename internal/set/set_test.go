package set

import "testing"

func TestAddContainsRemove(t *testing.T) {
	s := New(1, 2, 3)
	if !s.Contains(2) {
		t.Error("expected set to contain 2")
	}
	s.Remove(2)
	if s.Contains(2) {
		t.Error("expected 2 to be removed")
	}
	if s.Size() != 2 {
		t.Errorf("Size() = %d, want 2", s.Size())
	}
}

func TestClear(t *testing.T) {
	s := New("a", "b")
	s.Clear()
	if s.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", s.Size())
	}
}

func TestValues(t *testing.T) {
	s := New(5, 6, 7)
	vals := s.Values()
	if len(vals) != 3 {
		t.Fatalf("Values() = %v, want 3 elements", vals)
	}
	seen := map[int]bool{}
	for _, v := range vals {
		seen[v] = true
	}
	for _, want := range []int{5, 6, 7} {
		if !seen[want] {
			t.Errorf("Values() missing %d", want)
		}
	}
}
