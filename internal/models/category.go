package models

type Category struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Color       string `bson:"color,omitempty" json:"color,omitempty"`
}
