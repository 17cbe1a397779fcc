package cache

import (
	"context"
	"fmt"
	"time"

	"devconnect/internal/models"
)

const (
	userKeyPrefix    = "user:%d"
	profileKeyPrefix = "profile:owner:%d"
	postKeyPrefix    = "post:%d"
)

const (
	UserTTL    = 5 * time.Minute
	ProfileTTL = 10 * time.Minute
	PostTTL    = 5 * time.Minute
)

func UserKey(userID models.UserID) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func ProfileKey(ownerID models.UserID) string {
	return fmt.Sprintf(profileKeyPrefix, ownerID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID models.UserID) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateProfile(ctx context.Context, ownerID models.UserID) {
	Invalidate(ctx, ProfileKey(ownerID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
