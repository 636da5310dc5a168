package catalog

// TemplateType selects the block structure of a workout template.
type TemplateType string

const (
	TemplateFull   TemplateType = "full"
	TemplateSplitA TemplateType = "splitA"
	TemplateSplitB TemplateType = "splitB"
)

// WorkoutTemplate is a structural prescription unlocked by lifetime ki.
// Split templates come in A/B pairs sharing an id prefix; the generator
// alternates sides by day parity.
type WorkoutTemplate struct {
	ID               string
	Name             string
	MinKi            int
	EstimatedMinutes int
	Type             TemplateType
	Notes            []string
}

var Templates = []WorkoutTemplate{
	{ID: "turtle_basic", Name: "Escuela de la Tortuga — Base", MinKi: 0, EstimatedMinutes: 18, Type: TemplateFull, Notes: []string{"Técnica > velocidad", "Deja 1–2 reps en reserva"}},
	{ID: "turtle_kaioken", Name: "Kaioken — Volumen controlado", MinKi: 100, EstimatedMinutes: 22, Type: TemplateFull, Notes: []string{"Respira y controla ritmo", "Descansos completos"}},
	{ID: "turtle_kaioken10", Name: "Kaioken ×10 — Intensidad", MinKi: 300, EstimatedMinutes: 26, Type: TemplateFull, Notes: []string{"Mantén forma estricta", "Si duele (articulación), baja variante"}},
	{ID: "turtle_ssj_A", Name: "Súper Saiyan — Día A (Empuje + core)", MinKi: 600, EstimatedMinutes: 28, Type: TemplateSplitA, Notes: []string{"Sube volumen de push", "Core sólido"}},
	{ID: "turtle_ssj_B", Name: "Súper Saiyan — Día B (Piernas + core)", MinKi: 600, EstimatedMinutes: 28, Type: TemplateSplitB, Notes: []string{"Piernas y estabilidad", "Control de rodillas"}},
	{ID: "turtle_ssj2_A", Name: "SSJ2 — Potencia (A)", MinKi: 1000, EstimatedMinutes: 32, Type: TemplateSplitA, Notes: []string{"Explosividad con control", "No busques fallo"}},
	{ID: "turtle_ssj2_B", Name: "SSJ2 — Potencia (B)", MinKi: 1000, EstimatedMinutes: 32, Type: TemplateSplitB, Notes: []string{"Saltos moderados", "Recuperación completa"}},
	{ID: "turtle_ssj3", Name: "SSJ3 — Resistencia", MinKi: 1500, EstimatedMinutes: 34, Type: TemplateFull, Notes: []string{"Circuitos", "Ritmo constante"}},
	{ID: "turtle_ssj4", Name: "SSJ4 — Fuerza total", MinKi: 2200, EstimatedMinutes: 36, Type: TemplateFull, Notes: []string{"Control corporal", "Calienta bien"}},
	{ID: "turtle_god", Name: "Saiyan Dios — Precisión", MinKi: 3000, EstimatedMinutes: 30, Type: TemplateFull, Notes: []string{"Menos pero mejor", "Reps perfectas"}},
	{ID: "turtle_blue", Name: "Dios SS — Explosivo", MinKi: 4000, EstimatedMinutes: 34, Type: TemplateFull, Notes: []string{"Explosividad + técnica", "Descanso suficiente"}},
	{ID: "turtle_blue_kaioken", Name: "Dios SS + Kaioken — Alternado", MinKi: 5500, EstimatedMinutes: 36, Type: TemplateFull, Notes: []string{"Autoregulación", "Si estás agotado: modo corto"}},
	{ID: "turtle_ui", Name: "Ultra Instinto — Fluidez", MinKi: 7000, EstimatedMinutes: 34, Type: TemplateFull, Notes: []string{"Fluye", "Movimiento limpio"}},
	{ID: "turtle_mui", Name: "UI Dominado — Maestría", MinKi: 9000, EstimatedMinutes: 36, Type: TemplateFull, Notes: []string{"Consistencia", "Detalles y respiración"}},
}

// Capsule-gym sessions log against these template ids.
const (
	CapsuleTemplate30 = "capsule_gym_30"
	CapsuleTemplate60 = "capsule_gym_60"
)
