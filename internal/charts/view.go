package charts

// View names one of the mutually exclusive visualization modes.
type View string

const (
	ViewBar     View = "bar"
	ViewCloud   View = "cloud"
	ViewPie     View = "pie"
	ViewLine    View = "line"
	ViewScatter View = "scatter"
	ViewFunnel  View = "funnel"
	ViewArea    View = "area"
	ViewImages  View = "images"
)

// Views lists all modes in the order the UI presents them.
var Views = []View{
	ViewBar, ViewCloud, ViewPie, ViewLine, ViewScatter, ViewFunnel, ViewArea, ViewImages,
}

// labels for the selector; keys mirror the form values.
var viewLabels = map[View]string{
	ViewBar:     "Bar chart",
	ViewCloud:   "Word cloud",
	ViewPie:     "Pie chart",
	ViewLine:    "Line chart",
	ViewScatter: "Scatter chart",
	ViewFunnel:  "Funnel chart",
	ViewArea:    "Area chart",
	ViewImages:  "Page images",
}

// Label returns the human-readable name of the view.
func (v View) Label() string {
	if s, ok := viewLabels[v]; ok {
		return s
	}
	return string(v)
}

// ParseView maps a form value onto the closed view set. The second return
// is false for the empty string and for anything outside the set.
func ParseView(s string) (View, bool) {
	v := View(s)
	if _, ok := viewLabels[v]; ok {
		return v, true
	}
	return "", false
}
