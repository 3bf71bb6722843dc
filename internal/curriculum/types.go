package curriculum

import "github.com/goliatone/go-slug"

// Topic describes one curriculum day: the day number, the human title used
// for interpolation, and a normalized slug used as a stable identifier in
// manifests and history records.
type Topic struct {
	Day   int
	Title string
	Slug  string
}

// NewTopic builds a Topic with its slug derived from the title. Titles that
// cannot be normalized keep an empty slug; callers treat the day number as
// the primary key either way.
func NewTopic(day int, title string) Topic {
	normalized, err := slug.Normalize(title)
	if err != nil {
		normalized = ""
	}
	return Topic{
		Day:   day,
		Title: title,
		Slug:  normalized,
	}
}

// DefaultFirstDay and DefaultLastDay bound the built-in curriculum range.
const (
	DefaultFirstDay = 6
	DefaultLastDay  = 20
)

// defaultTopics is the built-in topic table. Days outside this table fail
// lookups with DayNotFoundError.
var defaultTopics = map[int]string{
	6:  "Forms & Controlled Components",
	7:  "Conditional Rendering Patterns",
	8:  "useEffect Hook - Part 1",
	9:  "useEffect Hook - Part 2",
	10: "Data Fetching Patterns",
	11: "useRef Hook",
	12: "useCallback Hook",
	13: "useMemo Hook",
	14: "Context API - Part 1",
	15: "Context API - Part 2",
	16: "Custom Hooks - Part 1",
	17: "Custom Hooks - Part 2",
	18: "Component Composition",
	19: "Compound Components Pattern",
	20: "Render Props Pattern",
}

// defaultCompanies lists the companies interpolated into every document, in
// the order their subsections appear.
var defaultCompanies = []string{
	"Google",
	"Meta",
	"Amazon",
	"Microsoft",
	"Apple",
	"Netflix",
	"Uber",
	"LinkedIn",
	"Twitter",
	"Airbnb",
}

// DefaultTopics returns a copy of the built-in topic table.
func DefaultTopics() map[int]string {
	copied := make(map[int]string, len(defaultTopics))
	for day, title := range defaultTopics {
		copied[day] = title
	}
	return copied
}

// DefaultCompanies returns a copy of the built-in company list.
func DefaultCompanies() []string {
	return append([]string(nil), defaultCompanies...)
}
