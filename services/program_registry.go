package services

import "sort"

// ProgramTemplate is one canned training program. Programs live in this
// explicit registry keyed by a stable string, not in seeded DB rows.
type ProgramTemplate struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Cycles      []ProgramCycle `json:"cycles"`
}

type ProgramCycle struct {
	Name  string        `json:"name"`
	Weeks int           `json:"weeks"`
	Plans []ProgramPlan `json:"plans"`
}

type ProgramPlan struct {
	Name      string            `json:"name"`
	Exercises []ProgramExercise `json:"exercises"`
}

// ProgramExercise references its muscle group by name; groups are resolved
// against the catalog (created when missing) at install time.
type ProgramExercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Description string `json:"description,omitempty"`
}

var programRegistry = map[string]ProgramTemplate{
	"beginner_full_body": {
		Key:         "beginner_full_body",
		Name:        "Beginner Full Body",
		Description: "Three weekly full-body sessions around the basic barbell lifts.",
		Cycles: []ProgramCycle{
			{
				Name:  "Full Body Base",
				Weeks: 8,
				Plans: []ProgramPlan{
					{
						Name: "Full Body A",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Bench Press", MuscleGroup: "Chest"},
							{Name: "Barbell Row", MuscleGroup: "Back"},
						},
					},
					{
						Name: "Full Body B",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Overhead Press", MuscleGroup: "Shoulders"},
							{Name: "Deadlift", MuscleGroup: "Back"},
						},
					},
				},
			},
		},
	},
	"push_pull_legs": {
		Key:         "push_pull_legs",
		Name:        "Push / Pull / Legs",
		Description: "Classic six-day split over two alternating cycles.",
		Cycles: []ProgramCycle{
			{
				Name:  "PPL Volume",
				Weeks: 6,
				Plans: []ProgramPlan{
					{
						Name: "Push Day",
						Exercises: []ProgramExercise{
							{Name: "Bench Press", MuscleGroup: "Chest"},
							{Name: "Overhead Press", MuscleGroup: "Shoulders"},
							{Name: "Triceps Pushdown", MuscleGroup: "Arms"},
						},
					},
					{
						Name: "Pull Day",
						Exercises: []ProgramExercise{
							{Name: "Deadlift", MuscleGroup: "Back"},
							{Name: "Pull Up", MuscleGroup: "Back"},
							{Name: "Barbell Curl", MuscleGroup: "Arms"},
						},
					},
					{
						Name: "Leg Day",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Romanian Deadlift", MuscleGroup: "Legs"},
							{Name: "Calf Raise", MuscleGroup: "Legs"},
						},
					},
				},
			},
			{
				Name:  "PPL Intensity",
				Weeks: 6,
				Plans: []ProgramPlan{
					{
						Name: "Heavy Push",
						Exercises: []ProgramExercise{
							{Name: "Bench Press", MuscleGroup: "Chest"},
							{Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
						},
					},
					{
						Name: "Heavy Pull",
						Exercises: []ProgramExercise{
							{Name: "Deadlift", MuscleGroup: "Back"},
							{Name: "Barbell Row", MuscleGroup: "Back"},
						},
					},
					{
						Name: "Heavy Legs",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Front Squat", MuscleGroup: "Legs"},
						},
					},
				},
			},
		},
	},
	"five_by_five": {
		Key:         "five_by_five",
		Name:        "5x5 Strength",
		Description: "Two alternating heavy sessions, five sets of five.",
		Cycles: []ProgramCycle{
			{
				Name:  "5x5 Linear",
				Weeks: 12,
				Plans: []ProgramPlan{
					{
						Name: "Workout A",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Bench Press", MuscleGroup: "Chest"},
							{Name: "Barbell Row", MuscleGroup: "Back"},
						},
					},
					{
						Name: "Workout B",
						Exercises: []ProgramExercise{
							{Name: "Squat", MuscleGroup: "Legs"},
							{Name: "Overhead Press", MuscleGroup: "Shoulders"},
							{Name: "Deadlift", MuscleGroup: "Back"},
						},
					},
				},
			},
		},
	},
}

// Programs lists every available template, ordered by key.
func Programs() []ProgramTemplate {
	keys := make([]string, 0, len(programRegistry))
	for k := range programRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ProgramTemplate, 0, len(keys))
	for _, k := range keys {
		out = append(out, programRegistry[k])
	}
	return out
}

// ProgramByKey looks a template up by its stable key.
func ProgramByKey(key string) (ProgramTemplate, bool) {
	tpl, ok := programRegistry[key]
	return tpl, ok
}
