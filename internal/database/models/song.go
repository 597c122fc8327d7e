package models

// Song represents an entry in the song library. Catalog maintenance is
// external; the lifecycle services only validate references against it.
type Song struct {
	BaseModel
	Title      string `json:"title" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	Author     string `json:"author" gorm:"size:100"`
	DefaultKey string `json:"default_key" gorm:"size:10"`
	TempoBPM   int    `json:"tempo_bpm"`
	Tags       string `json:"tags" gorm:"size:200"`
}

// TableName returns the table name for Song
func (Song) TableName() string {
	return "songs"
}
