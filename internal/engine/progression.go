package engine

import (
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

// CurrentTransformation returns the highest rung whose threshold the ki
// total has reached. The ladder starts at 0, so this always resolves.
func CurrentTransformation(kiTotal int) catalog.Transformation {
	current := catalog.Transformations[0]
	for _, t := range catalog.Transformations {
		if kiTotal >= t.MinKi {
			current = t
		}
	}
	return current
}

// NextTransformation returns the first rung still out of reach, or nil at
// the top of the ladder.
func NextTransformation(kiTotal int) *catalog.Transformation {
	for i := range catalog.Transformations {
		if kiTotal < catalog.Transformations[i].MinKi {
			t := catalog.Transformations[i]
			return &t
		}
	}
	return nil
}

// UnlockedTransformations lists every rung already reached, in ladder order.
func UnlockedTransformations(kiTotal int) []catalog.Transformation {
	var out []catalog.Transformation
	for _, t := range catalog.Transformations {
		if kiTotal >= t.MinKi {
			out = append(out, t)
		}
	}
	return out
}

// Progress is the derived view of where the player stands on the ladder.
// Next is nil at the maximum transformation; Remaining is then 0.
type Progress struct {
	Current   catalog.Transformation
	Next      *catalog.Transformation
	CurrentKi int
	Remaining int
}

func ProgressToNext(kiTotal int) Progress {
	p := Progress{
		Current:   CurrentTransformation(kiTotal),
		Next:      NextTransformation(kiTotal),
		CurrentKi: kiTotal,
	}
	if p.Next != nil {
		p.Remaining = p.Next.MinKi - kiTotal
		if p.Remaining < 0 {
			p.Remaining = 0
		}
	}
	return p
}
