package roster

import (
	"reflect"
	"testing"
)

func TestRingPushEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for _, v := range []int{1, 2, 3, 4, 5} {
		r.Push(v)
	}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if got, want := r.Values(), []int{3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if r.Last() != 5 {
		t.Errorf("Last() = %d, want 5", r.Last())
	}
}

func TestRingSeedOverflow(t *testing.T) {
	r := NewRing(4, 1, 2, 3, 4, 5, 6)
	if got, want := r.Values(), []int{3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRingPartialFill(t *testing.T) {
	r := NewRing(5, 7, 8)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if r.Cap() != 5 {
		t.Errorf("Cap() = %d, want 5", r.Cap())
	}
	if got, want := r.Values(), []int{7, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRingEmpty(t *testing.T) {
	r := NewRing(3)
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
	if r.Last() != 0 {
		t.Errorf("Last() = %d, want 0 for empty ring", r.Last())
	}
	if got := r.Values(); len(got) != 0 {
		t.Errorf("Values() = %v, want empty", got)
	}
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing(0)
	r.Push(1)
	r.Push(2)
	if got, want := r.Values(), []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}
