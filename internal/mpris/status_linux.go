//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/announcer/internal/player"
)

func playbackStatus(s player.State) types.PlaybackStatus {
	switch s {
	case player.Playing:
		return types.PlaybackStatusPlaying
	case player.Paused:
		return types.PlaybackStatusPaused
	case player.Stopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}
