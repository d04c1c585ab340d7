package eventgen

import (
	"time"

	"watchfloor/internal/domain/operation"
)

const (
	ControversyPoliticalMemoir     = "political_memoir"
	ControversyInvestigativeExpose = "investigative_expose"
	ControversyDystopianFiction    = "dystopian_fiction"
	ControversyLeakedDocuments     = "leaked_documents"
	ControversyAcademicStudy       = "academic_study"
)

var controversyTypes = []string{
	ControversyPoliticalMemoir,
	ControversyInvestigativeExpose,
	ControversyDystopianFiction,
	ControversyLeakedDocuments,
	ControversyAcademicStudy,
}

var bookTitles = map[string][]string{
	ControversyPoliticalMemoir:     {"What I Saw in the Ministry", "Years of Silence"},
	ControversyInvestigativeExpose: {"The Watchers", "Data Harvest"},
	ControversyDystopianFiction:    {"The Quiet Grid", "Glass City"},
	ControversyLeakedDocuments:     {"The Operator Files", "Classified Lives"},
	ControversyAcademicStudy:       {"Surveillance and Consent", "Metrics of Fear"},
}

var bookAuthors = []string{"M. Okafor", "L. Brandt", "S. Varga", "J. Moreau", "R. Castillo"}

func ControversyTypes() []string {
	return append([]string(nil), controversyTypes...)
}

// NewBook draws a pending publication with a uniform controversy type.
func NewBook(week int, r operation.Rand, now time.Time) operation.BookPublication {
	kind, _ := operation.Pick(r, controversyTypes)
	title, _ := operation.Pick(r, bookTitles[kind])
	author, _ := operation.Pick(r, bookAuthors)
	return operation.BookPublication{
		ID:              operation.NewID("book"),
		Title:           title,
		Author:          author,
		ControversyType: kind,
		Week:            week,
		Status:          operation.BookPending,
		CreatedAt:       now,
	}
}
