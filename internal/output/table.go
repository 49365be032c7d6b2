package output

// FileEntry represents a path in an aligned listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders a path listing with descriptions aligned at the
// given column. Used by check and plan output.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var result string
	for _, f := range files {
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		spaces := make([]byte, padding)
		for i := range spaces {
			spaces[i] = ' '
		}
		result += f.Path + string(spaces) + f.Description + "\n"
	}
	return result
}

// StatusEntry pairs a deliverable path with its check status.
type StatusEntry struct {
	Path   string
	Status string
}

// RenderStatusList renders deliverable entries with styled, aligned statuses.
func RenderStatusList(entries []StatusEntry, alignColumn int) string {
	files := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		files = append(files, FileEntry{
			Path:        "  " + e.Path,
			Description: StatusStyle(e.Status).Render(e.Status),
		})
	}
	return RenderFileTree(files, alignColumn)
}
