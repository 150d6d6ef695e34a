package onboarding

import "bankey/internal/domain"

// DefaultPages returns the three stock onboarding slides
func DefaultPages() []domain.Page {
	return []domain.Page{
		{
			ID:    "delorean",
			Image: "delorean",
			Title: "Bankey is faster, easier to use, and has a brand new look and feel that will make you feel like you are back in 1989.",
		},
		{
			ID:    "world",
			Image: "world",
			Title: "Move your money around the world quickly and securely.",
		},
		{
			ID:    "thumbs",
			Image: "thumbs",
			Title: "Learn more at www.bankey.com.",
		},
	}
}
