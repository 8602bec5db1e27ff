package platform

import (
	"context"
	"fmt"
)

type unknownAdapter struct {
	goos string
}

func (*unknownAdapter) Family() Family { return Unknown }

func (*unknownAdapter) Board(context.Context) Board { return Board{} }

func (a *unknownAdapter) Command(action Action) (Command, error) {
	return Command{}, fmt.Errorf("%s on %s: %w", action, a.goos, ErrUnsupported)
}
