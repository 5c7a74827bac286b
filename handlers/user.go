package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Bio       string `json:"bio"`
}

func GetUser(c *gin.Context) {
	user, err := engine.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func GetAllUsers(c *gin.Context) {
	users, err := engine.GetAllUsers(c.Request.Context(), c.GetString("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateBio replaces the authenticated user's bio.
func UpdateBio(c *gin.Context) {
	var req UpdateBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Couldn't parse bio from the request body."})
		return
	}

	user, err := engine.UpdateUserBio(c.Request.Context(), c.GetString("userId"), req.Bio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser replaces the authenticated user's profile details.
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "firstName and lastName are required."})
		return
	}

	user, err := engine.UpdateUserDetails(c.Request.Context(), c.GetString("userId"), req.FirstName, req.LastName, req.Bio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ToggleFollow follows the target if not yet followed, unfollows otherwise.
// The engine only has the two directed primitives; the toggle lives here.
func ToggleFollow(c *gin.Context) {
	userID := c.GetString("userId")
	targetID := c.Param("id")

	following, err := engine.IsFollowing(c.Request.Context(), userID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	if following {
		err = engine.UnfollowUser(c.Request.Context(), userID, targetID)
	} else {
		err = engine.FollowUser(c.Request.Context(), userID, targetID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func IsFollowing(c *gin.Context) {
	following, err := engine.IsFollowing(c.Request.Context(), c.GetString("userId"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFollowing": following})
}

func GetUserPosts(c *gin.Context) {
	posts, err := engine.GetUserPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func GetUserFollowers(c *gin.Context) {
	followers, err := engine.GetUserFollowers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}
