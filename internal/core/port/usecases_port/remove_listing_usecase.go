package usecases_port

import (
	"context"
)

type RemoveListingUseCasePort interface {
	Execute(ctx context.Context, ownerID, listingID, confirmation string) error
}
