package ports

// FontRegistry receives font files referenced through use statements.
//
//go:generate mockgen -source=font_registry.go -destination=mocks/mock_font_registry.go -package=mocks
type FontRegistry interface {
	// RegisterFontFile registers the font at path.
	RegisterFontFile(path string)
}
