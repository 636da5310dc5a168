package engine

import (
	"testing"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

func TestCurrentTransformationPicksHighestReached(t *testing.T) {
	cases := []struct {
		kiTotal int
		wantKey string
	}{
		{0, "normal"},
		{99, "normal"},
		{100, "kaioken"},
		{299, "kaioken"},
		{300, "kaioken10"},
		{599, "kaioken10"},
		{600, "ssj"},
		{9000, "mui"},
		{50000, "mui"},
	}
	for _, tc := range cases {
		if got := CurrentTransformation(tc.kiTotal).Key; got != tc.wantKey {
			t.Errorf("CurrentTransformation(%d) = %s, want %s", tc.kiTotal, got, tc.wantKey)
		}
	}
}

func TestTransformationMonotonicity(t *testing.T) {
	prev := -1
	for ki := 0; ki <= 10000; ki += 37 {
		cur := CurrentTransformation(ki).MinKi
		if cur < prev {
			t.Fatalf("threshold went backwards at ki=%d: %d < %d", ki, cur, prev)
		}
		prev = cur
	}
}

func TestProgressToNextBoundary(t *testing.T) {
	p := ProgressToNext(599)
	if p.Current.Key != "kaioken10" {
		t.Fatalf("current = %s, want kaioken10", p.Current.Key)
	}
	if p.Next == nil || p.Next.MinKi != 600 {
		t.Fatalf("next = %+v, want threshold 600", p.Next)
	}
	if p.Remaining != 1 {
		t.Fatalf("remaining = %d, want 1", p.Remaining)
	}
}

func TestProgressAtMaxTransformation(t *testing.T) {
	top := catalog.Transformations[len(catalog.Transformations)-1]
	p := ProgressToNext(top.MinKi)
	if p.Next != nil {
		t.Fatalf("next = %+v, want nil at max", p.Next)
	}
	if p.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0 at max", p.Remaining)
	}
	below := ProgressToNext(top.MinKi - 1)
	if below.Next == nil {
		t.Fatalf("expected a next transformation just below the top threshold")
	}
	if below.Remaining != 1 {
		t.Fatalf("remaining below top = %d, want 1", below.Remaining)
	}
}

func TestLadderIsAscendingFromZero(t *testing.T) {
	if catalog.Transformations[0].MinKi != 0 {
		t.Fatalf("ladder must start at 0, got %d", catalog.Transformations[0].MinKi)
	}
	for i := 1; i < len(catalog.Transformations); i++ {
		if catalog.Transformations[i].MinKi <= catalog.Transformations[i-1].MinKi {
			t.Fatalf("ladder not strictly ascending at %q", catalog.Transformations[i].Key)
		}
	}
}
