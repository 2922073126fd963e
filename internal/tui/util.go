package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen split shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapY = headerHeight
	lo.mapW = max(10, lo.contentW-side-1)
	lo.mapH = lo.contentH
	return lo
}
