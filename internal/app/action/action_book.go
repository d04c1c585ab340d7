package action

import (
	"context"
	"fmt"
	"sort"

	"watchfloor/internal/domain/operation"
)

type bookBanActionHandler struct{ BaseHandler }

// Precheck picks the oldest pending publication.
func (h bookBanActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	books, err := uc.Books.List(ctx)
	if err != nil {
		return err
	}
	pending := make([]operation.BookPublication, 0, len(books))
	for _, b := range books {
		if b.Status == operation.BookPending {
			pending = append(pending, b)
		}
	}
	if len(pending) == 0 {
		return unavailable("no pending book publication to ban")
	}
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].Week != pending[j].Week {
			return pending[i].Week < pending[j].Week
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	ac.View.Book = &pending[0]
	return nil
}

func (h bookBanActionHandler) Apply(_ context.Context, _ UseCase, ac *ActionContext) error {
	b := ac.View.Book
	b.Status = operation.BookBanned
	ac.Plan.SaveBook = true
	ac.message(fmt.Sprintf("%q by %s has been pulled from circulation.", b.Title, b.Author))
	return nil
}
