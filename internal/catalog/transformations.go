package catalog

// Transformation is a rung on the unlock ladder, gated by lifetime ki.
type Transformation struct {
	Key   string
	Name  string
	MinKi int
	Emoji string
}

// Label renders the transformation for display ("💛 Súper Saiyan").
func (t Transformation) Label() string {
	return t.Emoji + " " + t.Name
}

// Transformations is the full ladder, ascending by MinKi. The first entry
// must stay at 0 so every ki total resolves to a transformation.
var Transformations = []Transformation{
	{Key: "normal", Name: "Normal", MinKi: 0, Emoji: "🙂"},
	{Key: "kaioken", Name: "Kaioken", MinKi: 100, Emoji: "🔥"},
	{Key: "kaioken10", Name: "Kaioken ×10", MinKi: 300, Emoji: "🔥🔥"},
	{Key: "ssj", Name: "Súper Saiyan", MinKi: 600, Emoji: "💛"},
	{Key: "ssj2", Name: "Súper Saiyan 2", MinKi: 1000, Emoji: "⚡"},
	{Key: "ssj3", Name: "Súper Saiyan 3", MinKi: 1500, Emoji: "🔥"},
	{Key: "ssj4", Name: "Súper Saiyan 4", MinKi: 2200, Emoji: "🦍"},
	{Key: "god", Name: "Súper Saiyan Dios", MinKi: 3000, Emoji: "🔴"},
	{Key: "blue", Name: "Súper Saiyan Dios SS", MinKi: 4000, Emoji: "🔵"},
	{Key: "blue_kaioken", Name: "Dios SS + Kaioken", MinKi: 5500, Emoji: "🔵🔥"},
	{Key: "ui", Name: "Ultra Instinto", MinKi: 7000, Emoji: "⚪"},
	{Key: "mui", Name: "Ultra Instinto Dominado", MinKi: 9000, Emoji: "⚪✨"},
}
