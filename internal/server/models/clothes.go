package models

import "time"

type Clothes struct {
	ID             string
	Name           string
	Color          Color
	Size           Size
	PhotoURL       *string
	CreatedAt      time.Time
	LastModifiedAt time.Time
}
