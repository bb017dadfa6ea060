package domain

// DocumentKind discriminates the classified shape of one input file.
type DocumentKind int

// Classification outcomes for an input file.
const (
	// KindInvalid marks a file that failed to parse or matched no shape.
	KindInvalid DocumentKind = iota

	// KindGoals marks a file carrying the goal hierarchy.
	KindGoals

	// KindRatings marks a file carrying one reviewer's votes.
	KindRatings
)

// Document is the tagged union produced by classification. Exactly one of
// Goals or Ratings is populated, matching Kind; invalid documents carry
// only their name.
type Document struct {
	Kind    DocumentKind
	Name    string
	Goals   []Goal
	Ratings *RatingsDocument
}

// GoalsDocument wraps a successfully parsed goals file.
func GoalsDocument(name string, goals []Goal) Document {
	return Document{Kind: KindGoals, Name: name, Goals: goals}
}

// RatingsDoc wraps a successfully parsed ratings file.
func RatingsDoc(name string, ratings RatingsDocument) Document {
	return Document{Kind: KindRatings, Name: name, Ratings: &ratings}
}

// InvalidDocument marks a file that matched neither shape.
func InvalidDocument(name string) Document {
	return Document{Kind: KindInvalid, Name: name}
}
