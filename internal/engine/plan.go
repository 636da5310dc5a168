package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

// WorkoutPlan is fully derived from (kiTotal, difficulty, date): generating
// twice with the same inputs yields the same plan.
type WorkoutPlan struct {
	DateISO          string
	TemplateID       string
	Name             string
	EstimatedMinutes int
	Transformation   string
	Notes            []string
	Blocks           []WorkoutBlock
}

type WorkoutBlock struct {
	Name      string
	Exercises []catalog.Exercise
}

// Candidate pools per muscle-group category. Selection takes the highest
// unlocked threshold from each pool.
var (
	pushCandidates         = []string{"pushup_knee", "pushup", "pushup_slow", "pushup_decline"}
	legCandidates          = []string{"squat", "squat_pause", "lunge", "split_squat", "jump_squat"}
	coreCandidates         = []string{"plank", "plank_30", "hollow", "side_plank", "mountain_climbers"}
	tricepsCandidates      = []string{"dips_chair", "pushup"}
	conditioningCandidates = []string{"mountain_climbers", "burpees", "bear_crawl"}
)

// PickBestExercise returns the candidate with the highest MinKi that the ki
// total unlocks, falling back to the lowest-threshold candidate so a plan is
// producible even at zero ki. An empty pool means the candidate list and the
// exercise catalog disagree.
func PickBestExercise(kiTotal int, candidates []string) (catalog.Exercise, error) {
	var pool []catalog.Exercise
	for _, id := range candidates {
		if e := catalog.ExerciseByID(id); e != nil {
			pool = append(pool, *e)
		}
	}
	if len(pool) == 0 {
		return catalog.Exercise{}, fmt.Errorf("no exercise candidates for %v", candidates)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].MinKi < pool[j].MinKi })

	best := pool[0]
	found := false
	for _, e := range pool {
		if kiTotal >= e.MinKi {
			best = e
			found = true
		}
	}
	if !found {
		return pool[0], nil
	}
	return best, nil
}

// pickTemplate chooses the highest unlocked template. For split templates
// the day-of-month parity decides the side (even day prefers A); when the
// preferred sibling is not unlocked the originally selected template stands.
func pickTemplate(kiTotal int, dateISO string) catalog.WorkoutTemplate {
	var unlocked []catalog.WorkoutTemplate
	for _, t := range catalog.Templates {
		if kiTotal >= t.MinKi {
			unlocked = append(unlocked, t)
		}
	}
	if len(unlocked) == 0 {
		return catalog.Templates[0]
	}
	sort.SliceStable(unlocked, func(i, j int) bool { return unlocked[i].MinKi > unlocked[j].MinKi })
	best := unlocked[0]

	if best.Type != catalog.TemplateSplitA && best.Type != catalog.TemplateSplitB {
		return best
	}

	day := 0
	if len(dateISO) >= 2 {
		day, _ = strconv.Atoi(dateISO[len(dateISO)-2:])
	}
	wantA := day%2 == 0
	want := catalog.TemplateSplitB
	if wantA {
		want = catalog.TemplateSplitA
	}

	prefix := best.ID
	if strings.HasSuffix(prefix, "_A") || strings.HasSuffix(prefix, "_B") {
		prefix = prefix[:len(prefix)-2]
	}
	for _, t := range unlocked {
		if strings.HasPrefix(t.ID, prefix) && t.Type == want {
			return t
		}
	}
	return best
}

// scaleExercise adjusts reps or hold time by the difficulty multiplier.
// Sets stay fixed for week-to-week stability; reps floor at 1 and holds at
// 10 seconds.
func scaleExercise(e catalog.Exercise, mult float64) catalog.Exercise {
	out := e
	if out.Reps > 0 {
		out.Reps = int(math.Round(float64(out.Reps) * mult))
		if out.Reps < 1 {
			out.Reps = 1
		}
	}
	if out.TimeSec > 0 {
		out.TimeSec = int(math.Round(float64(out.TimeSec) * mult))
		if out.TimeSec < 10 {
			out.TimeSec = 10
		}
	}
	return out
}

var warmupBlock = WorkoutBlock{
	Name: "Calentamiento (3–5 min)",
	Exercises: []catalog.Exercise{
		{ID: "warm_mobility", Name: "Movilidad general (cuello, hombros, cadera)", Sets: 1, TimeSec: 180, Tags: []string{"warmup"}},
		{ID: "warm_activation", Name: "Activación (sentadilla suave + brazos)", Sets: 1, TimeSec: 120, Tags: []string{"warmup"}},
	},
}

var cooldownBlock = WorkoutBlock{
	Name: "Vuelta a la calma (2–4 min)",
	Exercises: []catalog.Exercise{
		{ID: "cool_breath", Name: "Respiración nasal + caminar suave", Sets: 1, TimeSec: 120, Tags: []string{"cooldown"}},
		{ID: "cool_stretch", Name: "Estiramiento suave (piernas/pecho)", Sets: 1, TimeSec: 120, Tags: []string{"cooldown"}},
	},
}

// GenerateWorkoutPlan builds the day's plan from lifetime ki, the difficulty
// setting, and the date. The finisher block is always appended regardless of
// transformation tier.
func GenerateWorkoutPlan(kiTotal int, difficulty catalog.Difficulty, dateISO string) (*WorkoutPlan, error) {
	tmpl := pickTemplate(kiTotal, dateISO)
	mult := DifficultyMultiplier(difficulty)

	push, err := PickBestExercise(kiTotal, pushCandidates)
	if err != nil {
		return nil, err
	}
	legs, err := PickBestExercise(kiTotal, legCandidates)
	if err != nil {
		return nil, err
	}
	core, err := PickBestExercise(kiTotal, coreCandidates)
	if err != nil {
		return nil, err
	}
	triceps, err := PickBestExercise(kiTotal, tricepsCandidates)
	if err != nil {
		return nil, err
	}
	conditioning, err := PickBestExercise(kiTotal, conditioningCandidates)
	if err != nil {
		return nil, err
	}

	blocks := []WorkoutBlock{warmupBlock}

	switch tmpl.Type {
	case catalog.TemplateSplitA:
		blocks = append(blocks,
			WorkoutBlock{Name: "Bloque A (Empuje)", Exercises: []catalog.Exercise{scaleExercise(push, mult), scaleExercise(triceps, mult)}},
			WorkoutBlock{Name: "Bloque B (Core)", Exercises: []catalog.Exercise{scaleExercise(core, mult)}},
		)
	case catalog.TemplateSplitB:
		blocks = append(blocks,
			WorkoutBlock{Name: "Bloque A (Piernas)", Exercises: []catalog.Exercise{scaleExercise(legs, mult)}},
			WorkoutBlock{Name: "Bloque B (Core + estabilidad)", Exercises: []catalog.Exercise{scaleExercise(core, mult)}},
		)
	default:
		blocks = append(blocks,
			WorkoutBlock{Name: "Bloque A (Fuerza)", Exercises: []catalog.Exercise{scaleExercise(push, mult), scaleExercise(legs, mult)}},
			WorkoutBlock{Name: "Bloque B (Accesorios)", Exercises: []catalog.Exercise{scaleExercise(triceps, mult), scaleExercise(core, mult)}},
		)
	}

	blocks = append(blocks,
		WorkoutBlock{Name: "Finisher (opcional, 3–6 min)", Exercises: []catalog.Exercise{scaleExercise(conditioning, mult)}},
		cooldownBlock,
	)

	return &WorkoutPlan{
		DateISO:          dateISO,
		TemplateID:       tmpl.ID,
		Name:             tmpl.Name,
		EstimatedMinutes: tmpl.EstimatedMinutes,
		Transformation:   CurrentTransformation(kiTotal).Key,
		Notes:            tmpl.Notes,
		Blocks:           blocks,
	}, nil
}
