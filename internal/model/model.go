// Package model holds the typed documents stored in MongoDB, the request
// payloads the HTTP layer binds and validates, and the write
// acknowledgements returned to clients.
//
// Documents carry both bson and json tags. The json names are the ones the
// site's frontend has always sent, so existing clients keep working.
package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base is embedded by every stored document.
type Base struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
}

// InsertResult acknowledges a single insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update or upsert.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a delete. DeletedCount is 0 when nothing matched.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// IDRequest binds an ObjectID path parameter named :id.
type IDRequest struct {
	ID string `param:"id" json:"-" validate:"required,objectid"`
}

func (r *IDRequest) Validate() error {
	return validate(r)
}

// ObjectID returns the parsed id. Validate has already guaranteed the
// format, so the error is only reachable when Validate was skipped.
func (r *IDRequest) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(r.ID)
}

// EmptyRequest is used by routes that read nothing from the request.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// extraFields returns the top-level keys of a JSON object that are not in
// known, or nil when none are left.
func extraFields(data []byte, known ...string) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(body, key)
	}
	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}

// withExtra encodes doc as a JSON object with extra merged in. Keys of doc
// win over extra.
func withExtra(doc interface{}, extra map[string]interface{}) ([]byte, error) {
	out, err := json.Marshal(doc)
	if err != nil || len(extra) == 0 {
		return out, err
	}

	var typed map[string]interface{}
	if err := json.Unmarshal(out, &typed); err != nil {
		return nil, err
	}

	merged := make(map[string]interface{}, len(extra)+len(typed))
	for key, value := range extra {
		merged[key] = value
	}
	for key, value := range typed {
		merged[key] = value
	}
	return json.Marshal(merged)
}
