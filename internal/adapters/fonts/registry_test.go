package fonts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modcache/internal/adapters/fonts"
	"go.trai.ch/modcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRegistry_RegisterFontFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Times(2)

	r := fonts.NewRegistry(log)
	r.RegisterFontFile("/fonts/b.ttf")
	r.RegisterFontFile("/fonts/a.otf")
	r.RegisterFontFile("/fonts/b.ttf")

	assert.Equal(t, []string{"/fonts/a.otf", "/fonts/b.ttf"}, r.Files())
}

func TestRegistry_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := fonts.NewRegistry(mocks.NewMockLogger(ctrl))
	assert.Empty(t, r.Files())
}
