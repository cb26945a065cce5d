package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func installed(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCommandPrefersFirstInstalledTool(t *testing.T) {
	assert.Equal(t, []string{"pbcopy"}, Command("darwin", installed("pbcopy")))
	assert.Equal(t, []string{"xclip", "-selection", "clipboard"}, Command("linux", installed("xclip", "xsel")))
	assert.Equal(t, []string{"xsel", "--clipboard", "--input"}, Command("linux", installed("xsel")))
	assert.Equal(t, []string{"wl-copy"}, Command("linux", installed("xclip", "wl-copy")))
}

func TestCommandFallsBackToLinuxTools(t *testing.T) {
	assert.Equal(t, []string{"xclip", "-selection", "clipboard"}, Command("freebsd", installed("xclip")))
}

func TestCommandNoneInstalled(t *testing.T) {
	assert.Nil(t, Command("linux", installed()))
	assert.Nil(t, Command("darwin", installed("xclip")))
}
