package models

// Question.Category holds the id of a Category as text. It is not enforced as
// a foreign key.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   string `gorm:"type:text;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}
