package catalog

// QuestDefinition is a daily checklist item. Quests with an ActionType
// reward ki through the ledger's once-per-day claim; the main workout quest
// has none because its ki comes from completing the workout itself.
type QuestDefinition struct {
	QuestID     string
	Title       string
	Description string
	RewardKi    int
	ActionType  ActionType // empty when the quest grants no ki directly
}

const (
	QuestMainWorkout    = "main_workout"
	QuestWalkOrMobility = "side_walk_or_mobility"
	QuestSleep          = "discipline_sleep"
	QuestFood           = "discipline_food"
)

var DailyQuests = []QuestDefinition{
	{
		QuestID:     QuestMainWorkout,
		Title:       "Main Quest: Entrenamiento",
		Description: "Completa el entrenamiento del día (modo completo o corto).",
		RewardKi:    0,
	},
	{
		QuestID:     QuestWalkOrMobility,
		Title:       "Side Quest: Movimiento suave",
		Description: "Haz una caminata de 20–30 min o movilidad 8–12 min.",
		RewardKi:    5,
		ActionType:  ActionWalk,
	},
	{
		QuestID:     QuestSleep,
		Title:       "Discipline Quest: Descanso",
		Description: "Dormí bien (autodeclarado).",
		RewardKi:    5,
		ActionType:  ActionSleep,
	},
	{
		QuestID:     QuestFood,
		Title:       "Discipline Quest: Alimentación",
		Description: "Comí decente hoy (autodeclarado).",
		RewardKi:    5,
		ActionType:  ActionFood,
	},
}

// QuestByID returns the daily quest definition, or nil for unknown ids.
func QuestByID(questID string) *QuestDefinition {
	for i := range DailyQuests {
		if DailyQuests[i].QuestID == questID {
			return &DailyQuests[i]
		}
	}
	return nil
}
