package repository

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPriceFilter(t *testing.T) {
	min := 100
	max := 300

	tests := []struct {
		name     string
		minPrice *int
		maxPrice *int
		want     bson.M
	}{
		{
			name: "no bounds",
			want: bson.M{},
		},
		{
			name:     "min only",
			minPrice: &min,
			want:     bson.M{"price_per_night": bson.M{"$gte": 100}},
		},
		{
			name:     "max only",
			maxPrice: &max,
			want:     bson.M{"price_per_night": bson.M{"$lte": 300}},
		},
		{
			name:     "both bounds",
			minPrice: &min,
			maxPrice: &max,
			want:     bson.M{"price_per_night": bson.M{"$gte": 100, "$lte": 300}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPriceFilter(tt.minPrice, tt.maxPrice)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildPriceFilter(%v, %v) = %v, want %v", tt.minPrice, tt.maxPrice, got, tt.want)
			}
		})
	}
}
