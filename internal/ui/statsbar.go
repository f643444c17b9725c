package ui

import (
	"strings"

	"github.com/halcyard/engram/internal/api"
	"github.com/halcyard/engram/internal/i18n"
)

// statsBar renders the top bar with aggregate counts. A nil stats value
// (not loaded yet) renders an empty bar so the layout stays stable.
func statsBar(tr *i18n.Translator, stats *api.Stats, bookmarkCount, width int) string {
	if stats == nil {
		if width > 0 {
			return StatsBarStyle.Width(width).Render("")
		}
		return StatsBarStyle.Render("")
	}

	segments := []string{
		StatsSegmentStyle.Render(tr.T("stats.memories", stats.Memories)),
		StatsSegmentStyle.Render(tr.T("stats.categories", stats.Categories)),
		StatsSegmentStyle.Render(tr.T("stats.bookmarks", bookmarkCount)),
	}
	if stats.Pinned > 0 {
		segments = append(segments, StatsSegmentStyle.Render(tr.T("stats.pinned", stats.Pinned)))
	}
	if stats.StorageMB != "" {
		segments = append(segments, MutedStyle.Render(stats.StorageMB+" MB"))
	}

	row := strings.Join(segments, "")
	if width > 0 {
		return StatsBarStyle.Width(width).Render(row)
	}
	return StatsBarStyle.Render(row)
}
