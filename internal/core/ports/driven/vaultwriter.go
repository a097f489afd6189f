package driven

import "github.com/kenkundert/bw-export/internal/core/domain"

// VaultWriter serializes the assembled vault document to its final
// destination.
type VaultWriter interface {
	// Write persists doc, restricts its permission bits to the owner,
	// and returns the path written. It is only called after every
	// account has been assembled without failure, so a written file is
	// never partial.
	Write(doc *domain.VaultDocument) (string, error)
}
