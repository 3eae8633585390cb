package insight

// Keyword is one weighted theme extracted from a session. Weight is
// normalized against the batch maximum and floored at 0.5 so no keyword
// renders as visually absent.
type Keyword struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

// Overview is the analytics output for one finished session.
type Overview struct {
	Keywords  []Keyword `json:"keywords"`
	Summary   string    `json:"summary"`
	Intensity int       `json:"intensity"`
}

// MoodSample is one point of the dashboard trend chart.
type MoodSample struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}
