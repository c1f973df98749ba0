package tui

import (
	"github.com/MNE-FFF/Femalefoundersfeed/internal/loader"
)

type feedLoadedMsg struct {
	result loader.Result
}

type errMsg struct {
	err error
}

type updateAvailableMsg struct {
	version string
}
