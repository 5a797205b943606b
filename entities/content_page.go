package entities

// ContentPage holds admin-editable static page content, keyed by
// section name. Data is an opaque JSON document rendered by the client.
type ContentPage struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Section string `gorm:"uniqueIndex;not null" json:"section"`
	Data    string `gorm:"type:text;not null" json:"data"`
}
