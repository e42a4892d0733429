package presenter

import "fmt"

// InfoLine formats the toolbar summary for the open image: file name,
// pixel dimensions, size on disk, folder position and how many crops the
// image has produced this session.
func InfoLine(name string, w, h int, size string, pos, total, crops int) string {
	return fmt.Sprintf("%s  |  %d x %d px  |  %s  |  %d of %d  |  Crops saved: %d",
		name, w, h, size, pos, total, crops)
}
