package lazyseq

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFromFuncMemoization(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	calls := 0
	s := FromFunc(func(index int) int64 {
		calls++
		return int64(index) * 10
	})
	if term := s.At(5); term != 50 {
		t.Errorf("expected term at 5 to be 50, is %d", term)
	}
	if term := s.At(5); term != 50 {
		t.Errorf("expected repeated term at 5 to be 50, is %d", term)
	}
	if calls != 1 {
		t.Errorf("expected 1 call to the term function, have %d", calls)
	}
	if term := s.At(2); term != 20 {
		t.Errorf("expected out-of-order term at 2 to be 20, is %d", term)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls to the term function, have %d", calls)
	}
}

func TestFromProducerDraining(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	pulls := 0
	s := FromProducer(func() int64 {
		pulls++
		return int64(pulls) // yields 1, 2, 3, …
	})
	if term := s.At(3); term != 4 {
		t.Errorf("expected term at 3 to be 4, is %d", term)
	}
	if pulls != 4 {
		t.Errorf("expected producer to be drained 4 times, was %d", pulls)
	}
	if term := s.At(1); term != 2 {
		t.Errorf("expected memoized term at 1 to be 2, is %d", term)
	}
	if pulls != 4 {
		t.Errorf("expected no further pulls for a memoized index, have %d", pulls)
	}
}

func TestTermInvalidIndex(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromFunc(func(index int) int64 { return int64(index) })
	if _, err := s.Term(-1); err != ErrInvalidIndex {
		t.Errorf("expected ErrInvalidIndex for negative index, have %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected At(-1) to panic, did not")
		}
	}()
	s.At(-1)
}

func TestShiftView(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromFunc(func(index int) int64 { return int64(index) + 1 })
	view := s.Shift(3)
	if term := view.At(0); term != 4 {
		t.Errorf("expected shifted term at 0 to be 4, is %d", term)
	}
	if view.memo != nil || view.filled != nil {
		t.Errorf("expected a view to carry no memo of its own")
	}
}

func TestShiftCollapsing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromFunc(func(index int) int64 { return int64(index) + 1 })
	view := s.Shift(2).Shift(3)
	if view.parent != s || view.offset != 5 {
		t.Errorf("expected view-of-view to collapse to offset 5 over the original")
	}
	if term := view.At(1); term != s.At(6) {
		t.Errorf("expected collapsed view at 1 to equal original at 6")
	}
	if s.Shift(0) != s {
		t.Errorf("expected zero shift to be the sequence itself")
	}
}
