package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

func TestExhibitionRatings(t *testing.T) {
	items := Exhibitions()
	require.Len(t, items, 20)

	for _, e := range items {
		if len(e.Comments) > 0 {
			assert.Equal(t, domain.MeanRating(e.Comments), e.Rating, e.ID)
		}
	}

	byID := map[string]domain.Exhibition{}
	for _, e := range items {
		byID[e.ID] = e
	}
	e2 := byID["e2"]
	assert.Empty(t, e2.Comments)
	assert.Equal(t, 4.8, e2.Rating, "baseline kept until the first comment")

	require.NoError(t, e2.AddComment(domain.Comment{ID: "c", Rating: 3}))
	assert.Equal(t, 3.0, e2.Rating)
}

func TestExhibitionsAreCopies(t *testing.T) {
	a := Exhibitions()
	a[0].Tags[0] = "changed"
	assert.NotEqual(t, "changed", Exhibitions()[0].Tags[0])
}
