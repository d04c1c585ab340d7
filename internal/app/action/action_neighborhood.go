package action

import (
	"context"
	"strings"
)

type neighborhoodActionHandler struct{ BaseHandler }

func (h neighborhoodActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	name := ac.In.Req.Targets.Neighborhood
	if strings.TrimSpace(name) == "" {
		return unavailable("neighborhood target is required")
	}
	if !knownNeighborhood(ac.View.Neighborhoods, name) {
		return unavailable("neighborhood %s not found", name)
	}
	return nil
}
