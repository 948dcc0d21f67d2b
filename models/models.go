package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Name  string `gorm:"size:100;not null"`
	Email string `gorm:"size:150;not null"`
	Posts []Post `gorm:"foreignkey:AuthorID"`
}

type Post struct {
	gorm.Model
	Title    string    `gorm:"size:200;not null"`
	Content  string    `gorm:"type:text"`
	AuthorID uint      `gorm:"index"`
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text   string `gorm:"not null"`
	PostID uint   `gorm:"index"`
}
