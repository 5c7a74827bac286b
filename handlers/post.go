package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wren/graph"
)

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

type CreateQuoteRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required,min=1"`
}

func CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have to provide content of the post."})
		return
	}

	post, err := engine.CreatePost(c.Request.Context(), c.GetString("userId"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Body has to contain postId and content."})
		return
	}

	post, err := engine.CreateQuote(c.Request.Context(), c.GetString("userId"), req.PostID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func GetPost(c *gin.Context) {
	thread, err := engine.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func GetPostReplies(c *gin.Context) {
	replies, err := engine.GetPostReplies(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replies)
}

func ReplyToPost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have to provide content of the post."})
		return
	}

	reply, err := engine.ReplyToPost(c.Request.Context(), c.GetString("userId"), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

func DeletePost(c *gin.Context) {
	if err := engine.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetHome serves the home timeline. Optional query params: date (RFC 3339)
// as the cursor bound and earlierThan ("false" flips the direction; default
// loads posts earlier than the bound).
func GetHome(c *gin.Context) {
	var opts graph.HomeOptions
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Wrong format of datetime for date."})
			return
		}
		opts.Date = date
		opts.EarlierThan = c.Query("earlierThan") != "false"
	}

	posts, err := engine.GetUserHome(c.Request.Context(), c.GetString("userId"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
