package onboarding

// Visibility says which navigation controls to show for a page.
// ShowNext and ShowDone are never both true.
type Visibility struct {
	ShowPrevious bool
	ShowNext     bool
	ShowDone     bool
}

// VisibilityFor computes control visibility for index within count pages.
// Out of range indexes are clamped.
func VisibilityFor(index, count int) Visibility {
	if count < 1 {
		return Visibility{}
	}
	if index < 0 {
		index = 0
	}
	if index > count-1 {
		index = count - 1
	}

	last := index == count-1
	return Visibility{
		ShowPrevious: index > 0,
		ShowNext:     !last,
		ShowDone:     last,
	}
}
