package types

// BlogArticle is a single fetched travel-blog article, already reduced to
// plain text by the upstream fetcher.
type BlogArticle struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Text   string `json:"-"`
}

// BlogActivity is an activity mention extracted from blog text.
type BlogActivity struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Duration string `json:"duration,omitempty"`
	Cost     string `json:"cost,omitempty"`
	Context  string `json:"context,omitempty"`
	Source   string `json:"source"`
}

// BlogData is the aggregated blog payload for one destination.
type BlogData struct {
	Destination string         `json:"destination"`
	Activities  []BlogActivity `json:"activities"`
	Tips        []string       `json:"tips"`
	Sources     []string       `json:"sources"`
	Fallback    bool           `json:"fallback,omitempty"`
}
