package services

import (
	"github.com/ancientastronautunearthed/fiber-app/models"

	"gorm.io/gorm"
)

type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

type PostInput struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Category    string `json:"category" binding:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type ReplyInput struct {
	Content     string `json:"content" binding:"required"`
	IsAnonymous bool   `json:"isAnonymous"`
}

func (s *CommunityService) CreatePost(userID uint, input PostInput) (*models.CommunityPost, error) {
	post := models.CommunityPost{
		UserID:      userID,
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		IsAnonymous: input.IsAnonymous,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "community_post", "Created community post", PointsCommunityPost)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *CommunityService) ListPosts(limit, offset int) ([]models.CommunityPost, error) {
	if limit <= 0 {
		limit = 20
	}
	var posts []models.CommunityPost
	err := s.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (s *CommunityService) GetPost(postID uint) (*models.CommunityPost, error) {
	var post models.CommunityPost
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *CommunityService) CreateReply(userID, postID uint, input ReplyInput) (*models.PostReply, error) {
	// The reply must target an existing post.
	var post models.CommunityPost
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, err
	}

	reply := models.PostReply{
		PostID:      postID,
		UserID:      userID,
		Content:     input.Content,
		IsAnonymous: input.IsAnonymous,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		return LogActivity(tx, userID, "community_reply", "Replied to community post", PointsPostReply)
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

func (s *CommunityService) ListReplies(postID uint) ([]models.PostReply, error) {
	var replies []models.PostReply
	err := s.db.
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&replies).Error
	return replies, err
}

// LikePost bumps the like counter on a post.
func (s *CommunityService) LikePost(postID uint) error {
	result := s.db.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
