package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankey/internal/domain"
)

func abc() []domain.Page {
	return []domain.Page{
		{ID: "A", Image: "a", Title: "first"},
		{ID: "B", Image: "b", Title: "second"},
		{ID: "C", Image: "c", Title: "third"},
	}
}

func TestNewRejectsEmptyAndDuplicatePages(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoPages)

	_, err = New([]domain.Page{{ID: "A"}, {ID: "A"}})
	require.ErrorIs(t, err, ErrDuplicatePage)
}

func TestNewStartsOnFirstPage(t *testing.T) {
	p, err := New(abc())
	require.NoError(t, err)

	assert.Equal(t, 0, p.CurrentIndex())
	assert.Equal(t, "A", p.Current().ID)
	assert.Equal(t, 3, p.Count())
	assert.Equal(t, Visibility{ShowNext: true}, p.Visibility())
}

func TestPagesIsACopy(t *testing.T) {
	pages := abc()
	p, err := New(pages)
	require.NoError(t, err)

	pages[0].Title = "mutated"
	got := p.Pages()
	got[1].Title = "mutated"

	assert.Equal(t, "first", p.Pages()[0].Title)
	assert.Equal(t, "second", p.Pages()[1].Title)
}

func TestVisibilityForEveryIndex(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			v := VisibilityFor(i, n)
			assert.Equal(t, i > 0, v.ShowPrevious, "previous n=%d i=%d", n, i)
			assert.Equal(t, i == n-1, v.ShowDone, "done n=%d i=%d", n, i)
			assert.Equal(t, i < n-1, v.ShowNext, "next n=%d i=%d", n, i)
			assert.False(t, v.ShowNext && v.ShowDone, "next and done n=%d i=%d", n, i)
		}
	}
}

func TestVisibilityForSinglePage(t *testing.T) {
	assert.Equal(t, Visibility{ShowDone: true}, VisibilityFor(0, 1))
}

func TestVisibilityForClampsOutOfRange(t *testing.T) {
	assert.Equal(t, VisibilityFor(0, 3), VisibilityFor(-4, 3))
	assert.Equal(t, VisibilityFor(2, 3), VisibilityFor(9, 3))
	assert.Equal(t, Visibility{}, VisibilityFor(0, 0))
}

func TestBoundariesReturnNone(t *testing.T) {
	pages := abc()
	p, err := New(pages)
	require.NoError(t, err)

	_, ok, err := p.PageBefore(pages[0])
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, p.CurrentIndex())

	_, ok, err = p.PageAfter(pages[2])
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, p.CurrentIndex(), "index stays put when there is no neighbor")
}

func TestInteriorNeighbors(t *testing.T) {
	pages := []domain.Page{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}
	p, err := New(pages)
	require.NoError(t, err)

	for i := 1; i < len(pages)-1; i++ {
		before, ok, err := p.PageBefore(pages[i])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pages[i-1], before)
		assert.Equal(t, i-1, p.CurrentIndex())

		after, ok, err := p.PageAfter(pages[i])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pages[i+1], after)
		assert.Equal(t, i+1, p.CurrentIndex())
	}
}

func TestWalkThroughThreePages(t *testing.T) {
	pages := abc()
	p, err := New(pages)
	require.NoError(t, err)

	b, ok, err := p.PageAfter(pages[0])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B", b.ID)
	assert.Equal(t, Visibility{ShowPrevious: true, ShowNext: true}, p.Visibility())

	c, ok, err := p.PageAfter(b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "C", c.ID)

	_, ok, err = p.PageAfter(c)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Visibility{ShowPrevious: true, ShowDone: true}, p.Visibility())
}

func TestNextAndPrevious(t *testing.T) {
	p, err := New(abc())
	require.NoError(t, err)

	_, ok := p.Previous()
	assert.False(t, ok)

	page, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, "B", page.ID)

	page, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, "C", page.ID)

	_, ok = p.Next()
	assert.False(t, ok)
	assert.Equal(t, 2, p.CurrentIndex())

	page, ok = p.Previous()
	require.True(t, ok)
	assert.Equal(t, "B", page.ID)
}

func TestUnknownPageRejectedByDefault(t *testing.T) {
	p, err := New(abc())
	require.NoError(t, err)
	p.Next()

	_, ok, err := p.PageAfter(domain.Page{ID: "Z"})
	require.ErrorIs(t, err, ErrUnknownPage)
	assert.False(t, ok)
	assert.Equal(t, 1, p.CurrentIndex())

	_, _, err = p.PageBefore(domain.Page{ID: "Z"})
	require.ErrorIs(t, err, ErrUnknownPage)
}

func TestUnknownPageFirstPolicyResetsIndex(t *testing.T) {
	p, err := New(abc(), WithUnknownPagePolicy(UnknownPageFirst))
	require.NoError(t, err)
	p.Next()
	p.Next()

	_, ok, err := p.PageBefore(domain.Page{ID: "Z"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, p.CurrentIndex())
}

func TestParseUnknownPagePolicy(t *testing.T) {
	policy, err := ParseUnknownPagePolicy("")
	require.NoError(t, err)
	assert.Equal(t, UnknownPageReject, policy)

	policy, err = ParseUnknownPagePolicy("first")
	require.NoError(t, err)
	assert.Equal(t, UnknownPageFirst, policy)

	_, err = ParseUnknownPagePolicy("wrap")
	require.Error(t, err)
}

func TestChangeHandlerFiresOnMoves(t *testing.T) {
	type change struct {
		index int
		id    string
		v     Visibility
	}
	var changes []change
	p, err := New(abc(), WithChangeHandler(func(i int, page domain.Page, v Visibility) {
		changes = append(changes, change{i, page.ID, v})
	}))
	require.NoError(t, err)

	p.Previous() // no neighbor, no change
	p.Next()
	p.Next()
	p.Next() // at the end, no change

	require.Len(t, changes, 2)
	assert.Equal(t, change{1, "B", Visibility{ShowPrevious: true, ShowNext: true}}, changes[0])
	assert.Equal(t, change{2, "C", Visibility{ShowPrevious: true, ShowDone: true}}, changes[1])
}

func TestFinishDelegatesWithoutStateChange(t *testing.T) {
	var reasons []domain.FinishReason
	p, err := New(abc(), WithFinishHandler(func(r domain.FinishReason) {
		reasons = append(reasons, r)
	}))
	require.NoError(t, err)
	p.Next()

	p.Finish(domain.FinishSkipped)
	p.Finish(domain.FinishDone)

	assert.Equal(t, []domain.FinishReason{domain.FinishSkipped, domain.FinishDone}, reasons)
	assert.Equal(t, 1, p.CurrentIndex())
}

func TestFinishWithoutHandler(t *testing.T) {
	p, err := New(DefaultPages())
	require.NoError(t, err)
	assert.NotPanics(t, func() { p.Finish(domain.FinishDone) })
}

func TestDefaultPages(t *testing.T) {
	pages := DefaultPages()
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"delorean", "world", "thumbs"}, []string{pages[0].ID, pages[1].ID, pages[2].ID})
}
