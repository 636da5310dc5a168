package catalog

// Exercise is a bodyweight prescription. Reps and TimeSec are mutually
// exclusive: rep-based exercises leave TimeSec at 0 and vice versa.
type Exercise struct {
	ID          string
	Name        string
	Sets        int
	Reps        int
	TimeSec     int
	RestSec     int
	MinKi       int
	Tags        []string
	Tips        []string
	Description string
}

// HasReps reports whether the exercise is rep-based (vs. a timed hold).
func (e Exercise) HasReps() bool { return e.Reps > 0 }

// Exercises holds every selectable exercise with its unlock threshold.
var Exercises = []Exercise{
	// Push
	{ID: "pushup_knee", Name: "Flexiones con rodillas", Sets: 3, Reps: 8, RestSec: 60, MinKi: 0, Tags: []string{"push"}},
	{ID: "pushup", Name: "Flexiones", Sets: 3, Reps: 8, RestSec: 60, MinKi: 50, Tags: []string{"push"}},
	{ID: "pushup_slow", Name: "Flexiones lentas (3s bajada)", Sets: 4, Reps: 10, RestSec: 75, MinKi: 300, Tags: []string{"push"}},
	{ID: "pushup_decline", Name: "Flexiones declinadas", Sets: 4, Reps: 10, RestSec: 90, MinKi: 600, Tags: []string{"push"}},
	{ID: "dips_chair", Name: "Fondos en silla/banco", Sets: 3, Reps: 10, RestSec: 75, MinKi: 250, Tags: []string{"push", "triceps"}},

	// Legs
	{ID: "squat", Name: "Sentadillas aire", Sets: 3, Reps: 15, RestSec: 60, MinKi: 0, Tags: []string{"legs"}},
	{ID: "squat_pause", Name: "Sentadilla con pausa (1s abajo)", Sets: 4, Reps: 15, RestSec: 75, MinKi: 100, Tags: []string{"legs"}},
	{ID: "lunge", Name: "Zancadas", Sets: 3, Reps: 10, RestSec: 75, MinKi: 100, Tags: []string{"legs"}},
	{ID: "split_squat", Name: "Split squat (estático)", Sets: 4, Reps: 10, RestSec: 90, MinKi: 600, Tags: []string{"legs"}},
	{ID: "jump_squat", Name: "Sentadillas con salto", Sets: 4, Reps: 12, RestSec: 90, MinKi: 1000, Tags: []string{"legs", "power"}},

	// Core
	{ID: "plank", Name: "Plancha", Sets: 3, TimeSec: 20, RestSec: 45, MinKi: 0, Tags: []string{"core"}},
	{ID: "plank_30", Name: "Plancha", Sets: 3, TimeSec: 30, RestSec: 45, MinKi: 100, Tags: []string{"core"}},
	{ID: "side_plank", Name: "Plancha lateral", Sets: 3, TimeSec: 25, RestSec: 45, MinKi: 600, Tags: []string{"core"}},
	{ID: "hollow", Name: "Hollow hold", Sets: 3, TimeSec: 30, RestSec: 45, MinKi: 300, Tags: []string{"core"}},
	{ID: "mountain_climbers", Name: "Mountain climbers", Sets: 3, TimeSec: 30, RestSec: 45, MinKi: 600, Tags: []string{"conditioning", "core"}},

	// Conditioning
	{ID: "burpees", Name: "Burpees", Sets: 4, Reps: 8, RestSec: 90, MinKi: 1000, Tags: []string{"conditioning"}},
	{ID: "bear_crawl", Name: "Bear crawl (ida y vuelta)", Sets: 4, TimeSec: 25, RestSec: 75, MinKi: 1500, Tags: []string{"conditioning"}},
}

// ExerciseByID returns the exercise with the given id, or nil.
func ExerciseByID(id string) *Exercise {
	for i := range Exercises {
		if Exercises[i].ID == id {
			return &Exercises[i]
		}
	}
	return nil
}
