// Package badges holds the static achievement catalog and the
// evaluator that unlocks badges when a burger is logged.
package badges

type Badge struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

const (
	CodeFirstBite     = "PRIMERA_MORDIDA"
	CodeSaturdayFever = "FIEBRE_SABADO"
	CodeBigSpender    = "MAGNATE"
	CodeFifthBurger   = "CARNIVORO_PRO"
	CodeHarshCritic   = "CRITICO_MICHELIN"
	CodeVeggie        = "VIDA_SANA"
)

// Catalog is the fixed set of badges. VIDA_SANA is displayed in the
// catalog but has no unlock predicate in the evaluator yet.
var Catalog = []Badge{
	{
		Code:        CodeFirstBite,
		Title:       "Primera Mordida",
		Description: "Registraste tu primera hamburguesa.",
		Icon:        "🐣",
		Color:       "yellow",
	},
	{
		Code:        CodeSaturdayFever,
		Title:       "Fiebre de Sábado",
		Description: "Comiste una burger un sábado a la noche.",
		Icon:        "🕺",
		Color:       "purple",
	},
	{
		Code:        CodeBigSpender,
		Title:       "El Magnate",
		Description: "Pagaste más de $15.000 por una burger.",
		Icon:        "💸",
		Color:       "green",
	},
	{
		Code:        CodeFifthBurger,
		Title:       "Carnívoro Pro",
		Description: "Llegaste a las 5 hamburguesas.",
		Icon:        "🦁",
		Color:       "orange",
	},
	{
		Code:        CodeHarshCritic,
		Title:       "Crítico Michelin",
		Description: "Dejaste una reseña de 1 estrella (¡Qué exigente!).",
		Icon:        "🧐",
		Color:       "gray",
	},
	{
		Code:        CodeVeggie,
		Title:       "Traición",
		Description: "Fuiste a un lugar con \"Veggie\" o \"Ensalada\" en el nombre.",
		Icon:        "🥗",
		Color:       "green",
	},
}

// ByCode looks a badge up in the catalog.
func ByCode(code string) (Badge, bool) {
	for _, b := range Catalog {
		if b.Code == code {
			return b, true
		}
	}
	return Badge{}, false
}
