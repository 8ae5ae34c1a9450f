package interfaces

import "fiftymais/internal/domain/entities"

// IProposalRenderer turns a quote into a client-facing document.
type IProposalRenderer interface {
	Render(q entities.Quote, vendor entities.Profile) ([]byte, error)
}
