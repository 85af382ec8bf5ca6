package model

import "encoding/json"

// Room documents are seeded out of band and may carry arbitrary extra
// fields (description, images, ...). Those are preserved through the
// inline map and flattened back into the JSON object on output.
type Room struct {
	ID            string         `bson:"_id,omitempty"`
	RoomTitle     string         `bson:"room_title"`
	PricePerNight int            `bson:"price_per_night"`
	Availability  bool           `bson:"availability"`
	TotalReview   int            `bson:"total_review"`
	Extra         map[string]any `bson:",inline"`
}

func (r Room) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+5)
	for k, v := range r.Extra {
		out[k] = v
	}
	if r.ID != "" {
		out["_id"] = r.ID
	}
	out["room_title"] = r.RoomTitle
	out["price_per_night"] = r.PricePerNight
	out["availability"] = r.Availability
	out["total_review"] = r.TotalReview
	return json.Marshal(out)
}

// UpdateResult mirrors the driver's update counts in the response body.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}
