package models

import (
	"gorm.io/gorm"
)

type CommunityPost struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	Category    string `gorm:"not null" json:"category"` // success_story, question, tip, ...
	IsAnonymous bool   `gorm:"default:false" json:"isAnonymous"`
	Likes       int    `gorm:"default:0" json:"likes"`
}

type PostReply struct {
	gorm.Model
	PostID      uint   `gorm:"index;not null" json:"postId"`
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Content     string `gorm:"type:text;not null" json:"content"`
	IsAnonymous bool   `gorm:"default:false" json:"isAnonymous"`
	Likes       int    `gorm:"default:0" json:"likes"`
}
