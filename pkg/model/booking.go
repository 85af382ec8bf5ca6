package model

import "encoding/json"

// Booking keeps the owner key and the date as typed fields; everything
// else a caller sends with the booking (room snapshot fields) is stored
// verbatim through the inline map.
type Booking struct {
	ID           string         `bson:"_id,omitempty"`
	BookingEmail string         `bson:"booking_email"`
	BookingDate  string         `bson:"booking_date"`
	Snapshot     map[string]any `bson:",inline"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Snapshot)+3)
	for k, v := range b.Snapshot {
		out[k] = v
	}
	if b.ID != "" {
		out["_id"] = b.ID
	}
	out["booking_email"] = b.BookingEmail
	out["booking_date"] = b.BookingDate
	return json.Marshal(out)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		b.ID = v
	}
	if v, ok := raw["booking_email"].(string); ok {
		b.BookingEmail = v
	}
	if v, ok := raw["booking_date"].(string); ok {
		b.BookingDate = v
	}
	delete(raw, "_id")
	delete(raw, "booking_email")
	delete(raw, "booking_date")
	b.Snapshot = raw
	return nil
}

// BookingDateUpdate is the body of PUT /update-date/:id.
type BookingDateUpdate struct {
	UpdateDate string `json:"update_date" validate:"required"`
}
