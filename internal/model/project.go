package model

// Project is a portfolio entry. The collection is managed outside this
// service and only read here.
type Project struct {
	Base        `bson:",inline"`
	Title       string `bson:"title,omitempty" json:"title,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
}
