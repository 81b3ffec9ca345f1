package board

// Category identifies one of the six fixed canvas categories.
type Category string

const (
	CategoryContent    Category = "content"
	CategoryAutomation Category = "automation"
	CategoryResearch   Category = "research"
	CategoryData       Category = "data"
	CategoryCoding     Category = "coding"
	CategoryIdeation   Category = "ideation"
)

// Info describes a category for display.
type Info struct {
	ID          Category `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// categories is the closed set of canvas categories, in display order.
var categories = []Info{
	{CategoryContent, "Content Creation", "Text, presentations, reports, communications"},
	{CategoryAutomation, "Task Automation", "Repetitive processes, workflows, scheduling"},
	{CategoryResearch, "Research & Synthesis", "Information retrieval, document analysis"},
	{CategoryData, "Data & Insights", "Analysis, visualization, pattern recognition"},
	{CategoryCoding, "Technical Work", "Spreadsheets, scripts, tools, systems"},
	{CategoryIdeation, "Strategy & Ideation", "Planning, brainstorming, problem-solving"},
}

// All returns the six categories in display order.
func All() []Info {
	return categories
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Title returns the category's display title, or "" for unknown categories.
func (c Category) Title() string {
	for _, info := range categories {
		if info.ID == c {
			return info.Title
		}
	}
	return ""
}

// Lookup resolves a category id string. The second return is false for
// anything outside the closed set.
func Lookup(id string) (Info, bool) {
	for _, info := range categories {
		if string(info.ID) == id {
			return info, true
		}
	}
	return Info{}, false
}
