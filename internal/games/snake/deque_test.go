package snake

import (
	"slices"
	"testing"
)

func TestDequePushPop(t *testing.T) {
	d := newDeque[int](2)

	for i := 1; i <= 5; i++ {
		d.PushFront(i) // forces two grows
	}
	if d.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", d.Len())
	}
	if got := d.Slice(); !slices.Equal(got, []int{5, 4, 3, 2, 1}) {
		t.Errorf("Slice() = %v", got)
	}

	if v := d.PopBack(); v != 1 {
		t.Errorf("PopBack() = %d, expected 1", v)
	}
	d.PushFront(6)
	if got := d.Slice(); !slices.Equal(got, []int{6, 5, 4, 3, 2}) {
		t.Errorf("Slice() after wraparound = %v", got)
	}
	if !d.Contains(4) || d.Contains(1) {
		t.Error("Contains() mismatch")
	}
	if d.At(0) != 6 {
		t.Errorf("At(0) = %d, expected 6", d.At(0))
	}
}

func TestDequeClear(t *testing.T) {
	d := newDeque[int](4)
	d.PushFront(1)
	d.PushFront(2)
	d.Clear()

	if d.Len() != 0 || d.Contains(1) {
		t.Error("Clear() should empty the deque")
	}
}

func TestDequePopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PopBack on empty deque should panic")
		}
	}()
	newDeque[int](1).PopBack()
}
