package ports

import "go.trai.ch/grails/internal/core/domain"

// IDEMetadataWriter contributes the scope mapping to IDE integration
// metadata. It is an optional collaborator: the bootstrap only calls it when
// IDE integration is enabled for the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=ide.go -destination=mocks/mock_ide.go -package=mocks
type IDEMetadataWriter interface {
	// Write persists the four-category scope mapping.
	Write(mapping domain.IDEScopeMapping) error
}
