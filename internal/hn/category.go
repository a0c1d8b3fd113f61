package hn

// Category is one of the six fixed story-listing buckets.
type Category string

// The six listing categories exposed by the origin system.
const (
	CategoryTop  Category = "top"
	CategoryNew  Category = "new"
	CategoryBest Category = "best"
	CategoryAsk  Category = "ask"
	CategoryShow Category = "show"
	CategoryJob  Category = "job"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTop,
	CategoryNew,
	CategoryBest,
	CategoryAsk,
	CategoryShow,
	CategoryJob,
}

// listEndpoints maps categories to Firebase listing endpoint names.
var listEndpoints = map[Category]string{
	CategoryTop:  "topstories",
	CategoryNew:  "newstories",
	CategoryBest: "beststories",
	CategoryAsk:  "askstories",
	CategoryShow: "showstories",
	CategoryJob:  "jobstories",
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	_, ok := listEndpoints[c]
	return ok
}

// endpoint returns the Firebase listing endpoint name for c.
func (c Category) endpoint() string {
	return listEndpoints[c]
}
