package entity

// Notebook is an ordered collection of paragraph references.
type Notebook struct {
	Id         string
	Name       string
	Paragraphs []string
}
