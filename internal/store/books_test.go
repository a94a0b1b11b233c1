package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// TestBookQueryFilter_Empty tests that no parameters produce an empty filter.
func TestBookQueryFilter_Empty(t *testing.T) {
	q := BookQuery{}
	assert.Empty(t, q.Filter())
}

// TestBookQueryFilter_Text tests the case-insensitive title OR authors match.
func TestBookQueryFilter_Text(t *testing.T) {
	q := BookQuery{Text: "foo"}

	filter := q.Filter()
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "text filter must be an $or of two pattern matches")
	require.Len(t, or, 2)

	pattern := bson.M{"$regex": "foo", "$options": "i"}
	assert.Equal(t, bson.M{"title": pattern}, or[0])
	assert.Equal(t, bson.M{"authors": pattern}, or[1])
}

// TestBookQueryFilter_MinAvg tests the inclusive average rating bound.
func TestBookQueryFilter_MinAvg(t *testing.T) {
	q := BookQuery{MinAvg: floatPtr(4.0)}

	filter := q.Filter()
	assert.Equal(t, bson.M{"$gte": 4.0}, filter["average_rating"])
}

// TestBookQueryFilter_YearRange tests inclusive publication year bounds.
func TestBookQueryFilter_YearRange(t *testing.T) {
	tests := []struct {
		name string
		from *int
		to   *int
		want bson.M
	}{
		{"both bounds", intPtr(2000), intPtr(2002), bson.M{"$gte": 2000, "$lte": 2002}},
		{"from only", intPtr(2000), nil, bson.M{"$gte": 2000}},
		{"to only", nil, intPtr(2002), bson.M{"$lte": 2002}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BookQuery{YearFrom: tt.from, YearTo: tt.to}
			assert.Equal(t, tt.want, q.Filter()["original_publication_year"])
		})
	}
}

// TestBookQueryFilter_NoYearRange tests that absent bounds impose no constraint.
func TestBookQueryFilter_NoYearRange(t *testing.T) {
	q := BookQuery{MinAvg: floatPtr(4.0)}

	_, present := q.Filter()["original_publication_year"]
	assert.False(t, present)
}

// TestBookQueryFilter_Combined tests the full scenario filter.
func TestBookQueryFilter_Combined(t *testing.T) {
	q := BookQuery{
		Text:     "foo",
		MinAvg:   floatPtr(4.0),
		YearFrom: intPtr(2000),
		YearTo:   intPtr(2002),
	}

	filter := q.Filter()
	assert.Contains(t, filter, "$or")
	assert.Equal(t, bson.M{"$gte": 4.0}, filter["average_rating"])
	assert.Equal(t, bson.M{"$gte": 2000, "$lte": 2002}, filter["original_publication_year"])
}

// TestBookQuerySortDoc tests sort key to field mapping and direction.
func TestBookQuerySortDoc(t *testing.T) {
	tests := []struct {
		sort      string
		order     string
		field     string
		direction int
	}{
		{SortByAverage, "desc", "average_rating", -1},
		{SortByAverage, "asc", "average_rating", 1},
		{SortByRatingsCount, "desc", "ratings_count", -1},
		{SortByYear, "asc", "original_publication_year", 1},
		{SortByTitle, "asc", "title", 1},
		// Empty and unknown sort keys fall back to average rating.
		{"", "desc", "average_rating", -1},
		{"bogus", "desc", "average_rating", -1},
	}

	for _, tt := range tests {
		q := BookQuery{Sort: tt.sort, Order: tt.order}
		sort := q.SortDoc()
		require.Len(t, sort, 1)
		assert.Equal(t, tt.field, sort[0].Key)
		assert.Equal(t, tt.direction, sort[0].Value)
	}
}

// TestValidSortKey tests the accepted sort key set.
func TestValidSortKey(t *testing.T) {
	for _, key := range []string{SortByAverage, SortByRatingsCount, SortByYear, SortByTitle} {
		assert.True(t, ValidSortKey(key), key)
	}
	assert.False(t, ValidSortKey("price"))
	assert.False(t, ValidSortKey(""))
}
